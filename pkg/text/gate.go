package text

import "github.com/go-drift/uitext/pkg/platform"

// Gate is the entry point for rendering selectable text. It is the only
// place that knows some platforms lack the native view.
type Gate struct {
	Platform     platform.Platform
	Availability platform.Availability
	Composer     *Composer
}

// NewGate creates a Gate for p.
func NewGate(p platform.Platform, a platform.Availability, d Defaults) *Gate {
	return &Gate{Platform: p, Availability: a, Composer: NewComposer(d)}
}

// Render composes a top-level text node. On platforms without the native
// view the props go to the plain text view unchanged.
func (g *Gate) Render(props Props) Element {
	if !g.Availability.Supports(g.Platform) {
		return PlainText{Props: props}
	}
	if g.Composer == nil {
		g.Composer = NewComposer(StandardDefaults())
	}
	return g.Composer.Compose(View{Props: props})
}
