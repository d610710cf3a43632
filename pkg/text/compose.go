package text

import (
	"strconv"

	"github.com/go-drift/uitext/pkg/style"
)

// Composer turns Views into render trees.
//
// A Composer belongs to one host render loop. Across passes it remembers
// the merged style at each tree position so unchanged inputs yield the
// identical style value; positions absent from a pass are forgotten. It is
// not safe for concurrent use.
type Composer struct {
	Defaults Defaults

	memos   map[string]*style.Memo
	visited map[string]struct{}
	decide  func(Props, AncestorContext) Decision
}

// NewComposer creates a Composer resolving unset props from d.
func NewComposer(d Defaults) *Composer {
	return &Composer{
		Defaults: d,
		memos:    make(map[string]*style.Memo),
		decide:   Decide,
	}
}

// Compose renders v as the root of an independent subtree.
func (c *Composer) Compose(v View) Element {
	return c.ComposeIn(AncestorContext{}, v)
}

// ComposeIn renders v below ancestors described by ctx.
func (c *Composer) ComposeIn(ctx AncestorContext, v View) Element {
	if c.memos == nil {
		c.memos = make(map[string]*style.Memo)
	}
	if c.decide == nil {
		c.decide = Decide
	}
	c.visited = make(map[string]struct{}, len(c.memos))
	out := c.compose(ctx, v, "0")
	for path := range c.memos {
		if _, ok := c.visited[path]; !ok {
			delete(c.memos, path)
		}
	}
	c.visited = nil
	return out
}

func (c *Composer) compose(ctx AncestorContext, v View, path string) Element {
	switch c.decide(v.Props, ctx) {
	case DecisionSelectableRoot:
		merged := c.mergeAt(path, ctx.Style, v.Props.Style)
		childCtx := EstablishWith(ctx, merged, true)
		segments := SegmentChildren(v.Props.Children, merged, v.Props.Inherited())
		return NativeTextView{
			Props:    ToNativeProps(v.Props, merged, c.Defaults),
			Handlers: HandlersOf(v.Props),
			Children: c.resolve(childCtx, segments, path),
		}

	case DecisionPassThroughFragment:
		// The fragment's own leaves use its merged style, but descendants
		// keep observing the root's context.
		merged := c.mergeAt(path, ctx.Style, v.Props.Style)
		segments := SegmentChildren(v.Props.Children, merged, v.Props.Inherited())
		return Fragment{Children: c.resolve(ctx, segments, path)}

	default:
		return PlainText{Props: v.Props}
	}
}

// resolve converts segments to elements, composing nested Views with ctx.
func (c *Composer) resolve(ctx AncestorContext, segments []Segment, path string) []Element {
	out := make([]Element, 0, len(segments))
	for _, seg := range segments {
		switch s := seg.(type) {
		case TextSegment:
			out = append(out, NativeTextChild{
				Key:   s.Key,
				Text:  s.Content,
				Style: s.Style,
				Props: s.Inherited,
			})
		case ElementSegment:
			childPath := path + "/" + strconv.Itoa(s.Key)
			switch node := s.Node.(type) {
			case View:
				out = append(out, c.compose(ctx, node, childPath))
			case *View:
				if node == nil {
					continue
				}
				out = append(out, c.compose(ctx, *node, childPath))
			default:
				out = append(out, s.Node)
			}
		}
	}
	return out
}

func (c *Composer) mergeAt(path string, parent, local style.Style) style.Style {
	c.visited[path] = struct{}{}
	m, ok := c.memos[path]
	if !ok {
		m = &style.Memo{}
		c.memos[path] = m
	}
	return m.Merge(parent, local)
}
