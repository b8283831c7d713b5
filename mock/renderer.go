package mock

import "github.com/fwojciec/caniuse"

var (
	_ caniuse.Renderer  = (*Renderer)(nil)
	_ caniuse.Converter = (*Converter)(nil)
)

// Renderer is a mock implementation of caniuse.Renderer.
type Renderer struct {
	RenderBasicFn func(f *caniuse.Feature) string
}

func (r *Renderer) RenderBasic(f *caniuse.Feature) string {
	return r.RenderBasicFn(f)
}

// Converter is a mock implementation of caniuse.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
