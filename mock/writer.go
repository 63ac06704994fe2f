package mock

import (
	"context"

	"github.com/fwojciec/topicdump"
)

var _ topicdump.PostWriter = (*PostWriter)(nil)

// PostWriter is a mock implementation of topicdump.PostWriter.
type PostWriter struct {
	WritePostFn func(ctx context.Context, post *topicdump.Post, filename string) (string, error)
}

func (w *PostWriter) WritePost(ctx context.Context, post *topicdump.Post, filename string) (string, error) {
	return w.WritePostFn(ctx, post, filename)
}
