// Package fs provides file-based output for extracted posts.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/topicdump"
)

// Output file extensions.
const (
	TextExt     = ".txt"
	MarkdownExt = ".md"
)

// Ensure Writer implements topicdump.PostWriter at compile time.
var _ topicdump.PostWriter = (*Writer)(nil)

// Writer writes posts as files in a directory.
type Writer struct {
	dir    string
	ext    string
	format Formatter
	now    func() time.Time
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithFormatter sets the formatter and the extension used for derived
// filenames. Defaults to TextFormatter and TextExt.
func WithFormatter(format Formatter, ext string) WriterOption {
	return func(w *Writer) {
		w.format = format
		w.ext = ext
	}
}

// WithClock sets the function used to stamp the fetch time.
func WithClock(now func() time.Time) WriterOption {
	return func(w *Writer) {
		w.now = now
	}
}

// NewWriter creates a new Writer that resolves relative filenames under dir.
func NewWriter(dir string, opts ...WriterOption) *Writer {
	w := &Writer{
		dir:    dir,
		ext:    TextExt,
		format: TextFormatter,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Path resolves the output path for a post. An empty filename is derived
// from the post title.
func (w *Writer) Path(post *topicdump.Post, filename string) string {
	if filename == "" {
		filename = topicdump.Filename(post.Title, w.ext)
	}
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(w.dir, filename)
}

// WritePost renders the post and writes it to disk. Formatting and
// filesystem failures are returned as EWRITE errors; a partially written
// file is left in place.
func (w *Writer) WritePost(ctx context.Context, post *topicdump.Post, filename string) (string, error) {
	if post == nil {
		return "", topicdump.Errorf(topicdump.EINVALID, "no post to write")
	}

	path := w.Path(post, filename)

	content, err := w.format(post, w.now())
	if err != nil {
		return "", topicdump.Errorf(topicdump.EWRITE, "formatting %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return path, topicdump.Errorf(topicdump.EWRITE, "writing %s: %v", path, err)
	}

	return path, nil
}
