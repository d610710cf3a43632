package text

import (
	"github.com/go-drift/uitext/pkg/platform"
	"github.com/go-drift/uitext/pkg/style"
)

// Props configures one selectable text node.
type Props struct {
	// Children mixes strings, numbers, Elements, and nested []any slices.
	// Other values (nil, bools, unknown types) are ignored.
	Children []any
	// Style is merged over the style inherited from ancestors.
	Style style.Style

	// NumberOfLines truncates after this many lines (0 = unlimited).
	NumberOfLines int
	// AllowFontScaling defaults to true when nil.
	AllowFontScaling *bool
	// EllipsizeMode defaults to tail when empty.
	EllipsizeMode platform.EllipsizeMode

	// Selectable requests native text selection.
	Selectable bool
	// UITextView opts in to the native selectable view. Both Selectable and
	// UITextView must be set for a node to become a selectable root.
	UITextView bool

	MenuItems []platform.MenuItem
	// MenuBehavior defaults to augment when empty.
	MenuBehavior    platform.MenuBehavior
	HighlightRanges []platform.HighlightRange

	OnTextLayout func(platform.TextLayoutEvent)
	OnMenuAction func(platform.MenuActionEvent)
	// OnPress and OnLongPress are honored by the plain fallback and by
	// leaves, but never attached to the native root: they would shadow its
	// selection gestures.
	OnPress     func()
	OnLongPress func()

	// View carries standard view props forwarded as-is.
	View platform.ViewProps
}

// Inherited returns the props a node hands down to its text leaves: every
// prop except children, style, and the root-only menu, highlight, and
// menu-action settings.
func (p Props) Inherited() Props {
	p.Children = nil
	p.Style = nil
	p.MenuItems = nil
	p.MenuBehavior = ""
	p.HighlightRanges = nil
	p.OnMenuAction = nil
	return p
}

// Bool returns a pointer to b, for optional props such as AllowFontScaling.
func Bool(b bool) *bool {
	return &b
}

// Defaults are the values used for optional props left unset.
type Defaults struct {
	AllowFontScaling bool
	EllipsizeMode    platform.EllipsizeMode
	MenuBehavior     platform.MenuBehavior
}

// StandardDefaults returns the native view's own defaults: font scaling on,
// tail ellipsizing, augmenting the platform menu.
func StandardDefaults() Defaults {
	return Defaults{
		AllowFontScaling: true,
		EllipsizeMode:    platform.EllipsizeTail,
		MenuBehavior:     platform.MenuBehaviorAugment,
	}
}

// Resolved returns p with every optional prop filled from d.
func (p Props) Resolved(d Defaults) Props {
	if p.AllowFontScaling == nil {
		p.AllowFontScaling = Bool(d.AllowFontScaling)
	}
	if p.EllipsizeMode == "" {
		p.EllipsizeMode = d.EllipsizeMode.OrDefault()
	}
	if p.MenuBehavior == "" {
		p.MenuBehavior = d.MenuBehavior.OrDefault()
	}
	return p
}
