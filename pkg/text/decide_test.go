package text

import (
	"testing"

	"github.com/go-drift/uitext/pkg/style"
)

func TestDecide(t *testing.T) {
	inside := AncestorContext{InsideSelectableRoot: true, Style: style.Style{"color": "red"}}
	tests := []struct {
		name  string
		props Props
		ctx   AncestorContext
		want  Decision
	}{
		{"not selectable", Props{Selectable: false}, AncestorContext{}, DecisionPlainFallback},
		{"selectable without opt-in", Props{Selectable: true}, AncestorContext{}, DecisionPlainFallback},
		{"opt-in without selectable", Props{UITextView: true}, AncestorContext{}, DecisionPlainFallback},
		{"selectable and opt-in", Props{Selectable: true, UITextView: true}, AncestorContext{}, DecisionSelectableRoot},
		{"nested selectable", Props{Selectable: true, UITextView: true}, inside, DecisionPassThroughFragment},
		{"nested plain", Props{}, inside, DecisionPassThroughFragment},
		{"nested opt-in only", Props{UITextView: true}, inside, DecisionPassThroughFragment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.props, tt.ctx); got != tt.want {
				t.Errorf("Decide = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecisionString(t *testing.T) {
	tests := map[Decision]string{
		DecisionPlainFallback:       "PlainFallback",
		DecisionSelectableRoot:      "SelectableRoot",
		DecisionPassThroughFragment: "PassThroughFragment",
		Decision(9):                 "Decision(?)",
	}
	for d, want := range tests {
		if got := d.String(); got != want {
			t.Errorf("Decision(%d).String() = %q, want %q", int(d), got, want)
		}
	}
}

func TestEstablish(t *testing.T) {
	parent := AncestorContext{Style: style.Style{"color": "black", "fontSize": 12}}

	root := Establish(parent, style.Style{"fontSize": 16}, true)
	if !root.InsideSelectableRoot {
		t.Error("establishing a root should set InsideSelectableRoot")
	}
	if want := (style.Style{"color": "black", "fontSize": 16}); !style.Equal(root.Style, want) {
		t.Errorf("Style = %v, want %v", root.Style, want)
	}
	if parent.InsideSelectableRoot || parent.Style["fontSize"] != 12 {
		t.Error("Establish mutated the parent context")
	}

	inherited := Establish(root, nil, false)
	if !inherited.InsideSelectableRoot {
		t.Error("non-root provider should inherit InsideSelectableRoot")
	}
	if !style.Same(inherited.Style, root.Style) {
		t.Error("empty override should keep the parent style")
	}

	outside := Establish(AncestorContext{}, style.Style{"a": 1}, false)
	if outside.InsideSelectableRoot {
		t.Error("non-root provider outside a root should stay outside")
	}
}

func TestEstablishWithKeepsMergedStyle(t *testing.T) {
	merged := style.Style{"color": "red"}
	ctx := EstablishWith(AncestorContext{}, merged, true)
	if !ctx.InsideSelectableRoot || !style.Same(ctx.Style, merged) {
		t.Errorf("EstablishWith = %+v, want root context with the given style", ctx)
	}
	if got := EstablishWith(ctx, nil, false); !got.InsideSelectableRoot {
		t.Error("EstablishWith should inherit InsideSelectableRoot")
	}
}
