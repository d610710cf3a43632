package text

import (
	"github.com/go-drift/uitext/pkg/platform"
	"github.com/go-drift/uitext/pkg/style"
)

// ToNativeProps maps a root node's props onto the native view's props.
//
// Unset optional props take their values from d. Highlight ranges are
// forwarded in the order given, never sorted or merged, because the native
// view paints overlaps in that priority order. Press handlers have no slot
// on the native side at all.
func ToNativeProps(p Props, merged style.Style, d Defaults) platform.NativeProps {
	p = p.Resolved(d)
	ranges := p.HighlightRanges
	if ranges == nil {
		ranges = []platform.HighlightRange{}
	}
	return platform.NativeProps{
		NumberOfLines:    p.NumberOfLines,
		AllowFontScaling: *p.AllowFontScaling,
		EllipsizeMode:    p.EllipsizeMode,
		// The root is only created for selectable nodes.
		Selectable:      true,
		MenuItems:       p.MenuItems,
		MenuBehavior:    p.MenuBehavior,
		HighlightRanges: ranges,
		Style:           merged,
		View:            p.View,
	}
}

// HandlersOf returns the native event slots of a root node.
func HandlersOf(p Props) platform.EventHandlers {
	return platform.EventHandlers{
		OnMenuAction: p.OnMenuAction,
		OnTextLayout: p.OnTextLayout,
	}
}

// Mount registers every native view in tree with reg, in tree order, and
// returns the targets the registry assigned.
func Mount(reg *platform.TextViewRegistry, tree Element) []int32 {
	var targets []int32
	Walk(tree, func(el Element) bool {
		switch n := el.(type) {
		case NativeTextView:
			targets = append(targets, reg.Mount(n.Props, n.Handlers))
		case *NativeTextView:
			targets = append(targets, reg.Mount(n.Props, n.Handlers))
		}
		return true
	})
	return targets
}
