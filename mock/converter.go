package mock

import "github.com/fwojciec/topicdump"

var _ topicdump.Converter = (*Converter)(nil)

// Converter is a mock implementation of topicdump.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
