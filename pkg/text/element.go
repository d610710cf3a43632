package text

import (
	"github.com/go-drift/uitext/pkg/platform"
	"github.com/go-drift/uitext/pkg/style"
)

// Element is a structured node of the host tree. Children that implement
// Element pass through segmentation unchanged.
type Element interface {
	ElementType() string
}

// View is a selectable text node as written by application code.
type View struct {
	Props Props
}

func (View) ElementType() string { return "UITextView" }

// PlainText asks the host to render Props with its ordinary, non-native
// text view. Props are exactly those the node was given.
type PlainText struct {
	Props Props
}

func (PlainText) ElementType() string { return "Text" }

// NativeTextView is the single native selectable view of a subtree.
type NativeTextView struct {
	Props    platform.NativeProps
	Handlers platform.EventHandlers
	Children []Element
}

func (NativeTextView) ElementType() string { return platform.ViewType }

// NativeTextChild is one text leaf of the native view.
type NativeTextChild struct {
	// Key is the leaf's position among its parent's children.
	Key   int
	Text  string
	Style style.Style
	// Props are the inherited props of the node that produced the leaf.
	Props Props
}

func (NativeTextChild) ElementType() string { return platform.ChildViewType }

// Fragment groups children without adding a native view.
type Fragment struct {
	Children []Element
}

func (Fragment) ElementType() string { return "Fragment" }

// Walk visits el and its composed descendants depth-first. Returning false
// from visit skips the node's children.
func Walk(el Element, visit func(Element) bool) {
	if el == nil || !visit(el) {
		return
	}
	var children []Element
	switch n := el.(type) {
	case NativeTextView:
		children = n.Children
	case *NativeTextView:
		children = n.Children
	case Fragment:
		children = n.Children
	case *Fragment:
		children = n.Children
	}
	for _, child := range children {
		Walk(child, visit)
	}
}

// VisibleText concatenates the text leaves under el in order. Highlight
// ranges and menu-action offsets index into this string.
func VisibleText(el Element) string {
	var out []byte
	Walk(el, func(e Element) bool {
		if leaf, ok := e.(NativeTextChild); ok {
			out = append(out, leaf.Text...)
		}
		return true
	})
	return string(out)
}
