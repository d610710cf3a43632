// Package text composes selectable text trees for the native text view.
//
// A [View] describes a run of text the way application code writes it:
// props plus children that mix strings, numbers, and structured elements
// (including nested Views). Composition turns that description into a tree
// the host renders:
//
//   - [PlainText] when selection is not requested or the platform lacks the
//     native view; the host's ordinary text renderer handles it.
//   - [NativeTextView] for the outermost selectable View. Its children are
//     split into [NativeTextChild] leaves (one per string or number) and
//     pass-through elements.
//   - [Fragment] for Views nested inside a selectable root. Only one native
//     view exists per subtree, so nested Views contribute leaves to the root
//     instead of creating a second view.
//
// Style flows down through an [AncestorContext] passed explicitly to each
// recursive call. The root merges its style onto the inherited one and every
// descendant sees that merged style.
//
// Basic usage:
//
//	gate := text.NewGate(platform.Platform{OS: "ios"}, platform.DefaultAvailability(), text.StandardDefaults())
//	tree := gate.Render(text.Props{
//	    Selectable: true,
//	    UITextView: true,
//	    Style:      style.Style{"fontSize": 16},
//	    Children: []any{
//	        "Hello ",
//	        text.View{Props: text.Props{Style: style.Style{"fontWeight": "bold"}, Children: []any{"world"}}},
//	    },
//	})
package text
