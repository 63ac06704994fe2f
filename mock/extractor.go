package mock

import "github.com/fwojciec/topicdump"

var _ topicdump.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of topicdump.Extractor.
type Extractor struct {
	ExtractFn func(html string, sourceURL string) (*topicdump.Post, error)
}

func (e *Extractor) Extract(html string, sourceURL string) (*topicdump.Post, error) {
	return e.ExtractFn(html, sourceURL)
}
