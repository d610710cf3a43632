package platform

import (
	"github.com/go-drift/uitext/pkg/style"
)

// ViewType is the native component name of the selectable text view.
const ViewType = "RNUITextView"

// ChildViewType is the native component name of a text leaf inside the view.
const ChildViewType = "RNUITextViewChild"

// MenuItem is one entry of the selection context menu.
//
// IDs should be unique within one menu; duplicates are forwarded as given and
// their handling is up to the native view.
type MenuItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// MenuBehavior controls how MenuItems combine with the platform menu.
type MenuBehavior string

const (
	// MenuBehaviorAugment appends the items to the platform default menu.
	MenuBehaviorAugment MenuBehavior = "augment"
	// MenuBehaviorReplace shows only the supplied items.
	MenuBehaviorReplace MenuBehavior = "replace"
)

// Valid reports whether b is a known behavior. The empty value is valid and
// resolves to MenuBehaviorAugment.
func (b MenuBehavior) Valid() bool {
	switch b {
	case "", MenuBehaviorAugment, MenuBehaviorReplace:
		return true
	}
	return false
}

// OrDefault returns b, or MenuBehaviorAugment when b is empty.
func (b MenuBehavior) OrDefault() MenuBehavior {
	if b == "" {
		return MenuBehaviorAugment
	}
	return b
}

// EllipsizeMode selects where truncated text is elided.
type EllipsizeMode string

const (
	EllipsizeHead   EllipsizeMode = "head"
	EllipsizeMiddle EllipsizeMode = "middle"
	EllipsizeTail   EllipsizeMode = "tail"
	EllipsizeClip   EllipsizeMode = "clip"
)

// Valid reports whether m is a known mode. The empty value is valid and
// resolves to EllipsizeTail.
func (m EllipsizeMode) Valid() bool {
	switch m {
	case "", EllipsizeHead, EllipsizeMiddle, EllipsizeTail, EllipsizeClip:
		return true
	}
	return false
}

// OrDefault returns m, or EllipsizeTail when m is empty.
func (m EllipsizeMode) OrDefault() EllipsizeMode {
	if m == "" {
		return EllipsizeTail
	}
	return m
}

// HighlightRange marks [Start, End) character offsets of the visible text for
// distinct rendering. Ranges may overlap and are never reordered: the first
// range wins where they overlap.
type HighlightRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ViewProps are standard view props forwarded to the native view untouched.
type ViewProps struct {
	TestID             string
	NativeID           string
	AccessibilityLabel string
	// Extra carries any other host view props by their wire name.
	Extra map[string]any
}

// NativeProps is the prop set of one RNUITextView instance.
type NativeProps struct {
	NumberOfLines    int
	AllowFontScaling bool
	EllipsizeMode    EllipsizeMode
	Selectable       bool
	MenuItems        []MenuItem
	MenuBehavior     MenuBehavior
	HighlightRanges  []HighlightRange
	Style            style.Style
	View             ViewProps
}

// Params returns the wire representation sent to the native view.
func (p NativeProps) Params() map[string]any {
	params := make(map[string]any, 9+len(p.View.Extra))
	for k, v := range p.View.Extra {
		params[k] = v
	}
	if p.View.TestID != "" {
		params["testID"] = p.View.TestID
	}
	if p.View.NativeID != "" {
		params["nativeID"] = p.View.NativeID
	}
	if p.View.AccessibilityLabel != "" {
		params["accessibilityLabel"] = p.View.AccessibilityLabel
	}
	if p.NumberOfLines > 0 {
		params["numberOfLines"] = p.NumberOfLines
	}
	params["allowFontScaling"] = p.AllowFontScaling
	params["ellipsizeMode"] = string(p.EllipsizeMode.OrDefault())
	params["selectable"] = p.Selectable
	if p.MenuItems != nil {
		params["menuItems"] = p.MenuItems
	}
	params["menuBehavior"] = string(p.MenuBehavior.OrDefault())
	ranges := p.HighlightRanges
	if ranges == nil {
		ranges = []HighlightRange{}
	}
	params["highlightRanges"] = ranges
	if len(p.Style) > 0 {
		params["style"] = map[string]any(p.Style)
	}
	return params
}

// Encode serializes the wire params with the default codec.
func (p NativeProps) Encode() ([]byte, error) {
	return DefaultCodec.Encode(p.Params())
}
