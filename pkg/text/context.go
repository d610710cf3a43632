package text

import "github.com/go-drift/uitext/pkg/style"

// AncestorContext is the state a node passes to its descendants: whether a
// selectable root already exists above them, and the style that root merged.
//
// The zero value is the context of an independent subtree. A context is
// never mutated; establishing a child context always produces a new value.
type AncestorContext struct {
	InsideSelectableRoot bool
	Style                style.Style
}

// Establish returns the context a provider hands to its descendants: the
// local style merged over the parent's, and the root flag set when root is
// true (otherwise inherited from parent).
func Establish(parent AncestorContext, local style.Style, root bool) AncestorContext {
	return EstablishWith(parent, style.Merge(parent.Style, local), root)
}

// EstablishWith is Establish for a caller that already merged the style,
// typically through a style.Memo.
func EstablishWith(parent AncestorContext, merged style.Style, root bool) AncestorContext {
	return AncestorContext{
		InsideSelectableRoot: parent.InsideSelectableRoot || root,
		Style:                merged,
	}
}
