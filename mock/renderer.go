package mock

import "github.com/fwojciec/fragmen"

var _ fragmen.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of fragmen.Renderer.
type Renderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
