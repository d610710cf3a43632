package text

// Decision is how a node renders given its props and ancestors.
type Decision int

const (
	// DecisionPlainFallback renders with the ordinary text view.
	DecisionPlainFallback Decision = iota
	// DecisionSelectableRoot creates the native selectable view.
	DecisionSelectableRoot
	// DecisionPassThroughFragment contributes children to an existing root.
	DecisionPassThroughFragment
)

func (d Decision) String() string {
	switch d {
	case DecisionPlainFallback:
		return "PlainFallback"
	case DecisionSelectableRoot:
		return "SelectableRoot"
	case DecisionPassThroughFragment:
		return "PassThroughFragment"
	default:
		return "Decision(?)"
	}
}

// Decide picks the rendering for a node.
//
// Inside a selectable root the answer is always a fragment: native
// selectable views cannot nest, whatever the node's own flags say. Outside
// one, a node becomes a root only when it asks for both selection and the
// native view; otherwise the cheaper plain text view is used.
func Decide(p Props, ctx AncestorContext) Decision {
	if ctx.InsideSelectableRoot {
		return DecisionPassThroughFragment
	}
	if !p.Selectable || !p.UITextView {
		return DecisionPlainFallback
	}
	return DecisionSelectableRoot
}
