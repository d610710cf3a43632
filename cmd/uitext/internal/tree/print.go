package tree

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/uitext/pkg/platform"
	"github.com/go-drift/uitext/pkg/style"
	"github.com/go-drift/uitext/pkg/text"
)

// Printer writes render trees, one element per line, indented by depth.
// Colors are used only when w is a terminal.
type Printer struct {
	w       io.Writer
	kind    lipgloss.Style
	native  lipgloss.Style
	literal lipgloss.Style
	attr    lipgloss.Style
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		kind:    r.NewStyle().Bold(true),
		native:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		literal: r.NewStyle().Foreground(lipgloss.Color("10")),
		attr:    r.NewStyle().Faint(true),
	}
}

// Print writes el and its descendants.
func (p *Printer) Print(el text.Element) error {
	return p.print(el, 0)
}

func (p *Printer) print(el text.Element, depth int) error {
	indent := strings.Repeat("  ", depth)
	var line string
	var children []text.Element

	switch n := el.(type) {
	case text.NativeTextView:
		line = p.native.Render(n.ElementType()) + " " + p.attr.Render(nativeAttrs(n.Props))
		children = n.Children
	case text.NativeTextChild:
		line = fmt.Sprintf("%s#%d %s %s", p.native.Render(n.ElementType()), n.Key,
			p.literal.Render(strconv.Quote(n.Text)), p.attr.Render("style="+formatStyle(n.Style)))
	case text.Fragment:
		line = p.kind.Render(n.ElementType())
		children = n.Children
	case text.PlainText:
		line = p.kind.Render(n.ElementType()) + " " + p.attr.Render(fmt.Sprintf("selectable=%t children=%d", n.Props.Selectable, len(n.Props.Children)))
	case nil:
		return nil
	default:
		line = p.kind.Render(el.ElementType())
	}

	if _, err := fmt.Fprintln(p.w, indent+line); err != nil {
		return err
	}
	for _, child := range children {
		if err := p.print(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func nativeAttrs(props platform.NativeProps) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ellipsize=%s menu=%s allowFontScaling=%t", props.EllipsizeMode, props.MenuBehavior, props.AllowFontScaling)
	if props.NumberOfLines > 0 {
		fmt.Fprintf(&b, " lines=%d", props.NumberOfLines)
	}
	if len(props.MenuItems) > 0 {
		ids := make([]string, len(props.MenuItems))
		for i, item := range props.MenuItems {
			ids[i] = item.ID
		}
		fmt.Fprintf(&b, " items=[%s]", strings.Join(ids, ","))
	}
	if len(props.HighlightRanges) > 0 {
		ranges := make([]string, len(props.HighlightRanges))
		for i, r := range props.HighlightRanges {
			ranges[i] = fmt.Sprintf("%d-%d", r.Start, r.End)
		}
		fmt.Fprintf(&b, " highlights=[%s]", strings.Join(ranges, ","))
	}
	fmt.Fprintf(&b, " style=%s", formatStyle(props.Style))
	return b.String()
}

func formatStyle(s style.Style) string {
	keys := s.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s:%v", k, s[k])
	}
	return "{" + strings.Join(parts, ",") + "}"
}
