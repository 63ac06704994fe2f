package topicdump

import (
	"context"
	"fmt"
)

// Sentinel values substituted when the page lacks the expected markup.
const (
	UnknownTitle = "unknown title"
	UnknownUser  = "unknown user"
)

// Post is the content extracted from a single topic page.
// A Post is built once per fetch and is not modified afterwards.
type Post struct {
	Title       string
	Content     string // plain text, blank-line runs collapsed
	ContentHTML string // inner HTML of the content element
	Replies     []string
	SourceURL   string
}

// FormatReply renders a reply entry. The index is 1-based.
func FormatReply(index int, author, text string) string {
	return fmt.Sprintf("Reply %d (%s):\n%s", index, author, text)
}

// Extractor turns topic page HTML into a Post.
type Extractor interface {
	// Extract parses html and returns the extracted post. Missing title,
	// content or reply elements are not errors; they degrade to sentinel
	// or empty values.
	Extract(html string, sourceURL string) (*Post, error)
}

// PostWriter persists a Post.
type PostWriter interface {
	// WritePost writes the post to filename, deriving a name from the
	// title when filename is empty. It returns the path written.
	WritePost(ctx context.Context, post *Post, filename string) (string, error)
}
