package text

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-drift/uitext/pkg/style"
)

// Segment is one classified child: an [ElementSegment] or a [TextSegment].
type Segment interface {
	// SegmentKey is the child's position among the kept children.
	SegmentKey() int
}

// ElementSegment is a structured child passed through unchanged.
type ElementSegment struct {
	Key  int
	Node Element
}

func (s ElementSegment) SegmentKey() int { return s.Key }

// TextSegment is a string or number child that becomes a native text leaf.
type TextSegment struct {
	Key       int
	Content   string
	Style     style.Style
	Inherited Props
}

func (s TextSegment) SegmentKey() int { return s.Key }

// SegmentChildren classifies children in order.
//
// Nested slices are flattened first, so a single child and a list of
// children are treated alike. Dropped children take no key: keys number the
// kept children from zero.
func SegmentChildren(children []any, flattened style.Style, inherited Props) []Segment {
	segments := make([]Segment, 0, len(children))
	key := 0
	var walk func(items []any)
	walk = func(items []any) {
		for _, child := range items {
			switch c := child.(type) {
			case []any:
				walk(c)
				continue
			case []Element:
				for _, el := range c {
					walk([]any{el})
				}
				continue
			case []string:
				for _, s := range c {
					walk([]any{s})
				}
				continue
			}
			if seg := classify(key, child, flattened, inherited); seg != nil {
				segments = append(segments, seg)
				key++
			}
		}
	}
	walk(children)
	return segments
}

func classify(key int, child any, flattened style.Style, inherited Props) Segment {
	text := func(content string) Segment {
		return TextSegment{Key: key, Content: content, Style: flattened, Inherited: inherited}
	}
	switch c := child.(type) {
	case nil, bool:
		return nil
	case Element:
		return ElementSegment{Key: key, Node: c}
	case string:
		return text(c)
	case int:
		return text(strconv.FormatInt(int64(c), 10))
	case int8:
		return text(strconv.FormatInt(int64(c), 10))
	case int16:
		return text(strconv.FormatInt(int64(c), 10))
	case int32:
		return text(strconv.FormatInt(int64(c), 10))
	case int64:
		return text(strconv.FormatInt(c, 10))
	case uint:
		return text(strconv.FormatUint(uint64(c), 10))
	case uint8:
		return text(strconv.FormatUint(uint64(c), 10))
	case uint16:
		return text(strconv.FormatUint(uint64(c), 10))
	case uint32:
		return text(strconv.FormatUint(uint64(c), 10))
	case uint64:
		return text(strconv.FormatUint(c, 10))
	case float32:
		return text(formatNumber(float64(c), 32))
	case float64:
		return text(formatNumber(c, 64))
	default:
		return nil
	}
}

// formatNumber renders f the way number-to-string conversion does in the
// text layout frameworks hosting this view: shortest round-trip digits, plain
// notation between 1e-6 and 1e21, exponent notation outside it.
func formatNumber(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}
