package fs

import (
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/topicdump"
)

// TimestampLayout is the layout of the fetch time in output headers.
const TimestampLayout = "2006-01-02 15:04:05"

// separator is the rule between header, content and replies.
var separator = strings.Repeat("=", 50)

// Formatter renders a post into file contents.
type Formatter func(post *topicdump.Post, fetchedAt time.Time) (string, error)

// TextFormatter renders posts with FormatText.
func TextFormatter(post *topicdump.Post, fetchedAt time.Time) (string, error) {
	return FormatText(post, fetchedAt), nil
}

// FormatText renders a post as plain text: a header, the content section
// and the replies section, separated by fixed-width rules.
func FormatText(post *topicdump.Post, fetchedAt time.Time) string {
	var b strings.Builder
	b.WriteString("Title: ")
	b.WriteString(post.Title)
	b.WriteString("\nURL: ")
	b.WriteString(post.SourceURL)
	b.WriteString("\nFetched: ")
	b.WriteString(fetchedAt.Format(TimestampLayout))
	b.WriteString("\n")
	b.WriteString(separator)
	b.WriteString("\n\n")

	if post.Content != "" {
		b.WriteString("Content:\n")
		b.WriteString(post.Content)
		b.WriteString("\n\n")
	} else {
		b.WriteString("Content: (unavailable)\n\n")
	}

	b.WriteString(separator)
	b.WriteString("\n")
	if len(post.Replies) > 0 {
		b.WriteString("Replies:\n\n")
		b.WriteString(strings.Join(post.Replies, "\n\n"))
		b.WriteString("\n")
	} else {
		b.WriteString("Replies: (none)\n")
	}

	return b.String()
}

// ContentHash returns the xxhash of the post content as hex.
func ContentHash(post *topicdump.Post) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(post.Content))
}

// MarkdownFormatter returns a Formatter that renders posts as markdown with
// YAML frontmatter. The content HTML is converted with conv; when only plain
// text is available it is written as is.
func MarkdownFormatter(conv topicdump.Converter) Formatter {
	return func(post *topicdump.Post, fetchedAt time.Time) (string, error) {
		content := post.Content
		if post.ContentHTML != "" {
			md, err := conv.Convert(post.ContentHTML)
			if err != nil {
				return "", err
			}
			content = strings.TrimSpace(md)
		}

		var b strings.Builder
		b.WriteString("---\n")
		b.WriteString("source: ")
		b.WriteString(post.SourceURL)
		b.WriteString("\ntitle: ")
		b.WriteString(yamlQuote(post.Title))
		b.WriteString("\nfetched: ")
		b.WriteString(fetchedAt.Format(TimestampLayout))
		b.WriteString("\nhash: ")
		b.WriteString(ContentHash(post))
		b.WriteString("\n---\n\n")

		b.WriteString("# ")
		b.WriteString(post.Title)
		b.WriteString("\n\n")

		if content != "" {
			b.WriteString(content)
		} else {
			b.WriteString("_Content unavailable._")
		}
		b.WriteString("\n\n## Replies\n\n")

		if len(post.Replies) > 0 {
			b.WriteString(strings.Join(post.Replies, "\n\n"))
		} else {
			b.WriteString("_No replies._")
		}
		b.WriteString("\n")

		return b.String(), nil
	}
}

// yamlQuote double-quotes s when it would not survive as a plain scalar.
func yamlQuote(s string) string {
	if s == "" || strings.ContainsAny(s, ":#\"'{}[],&*!|>%@`\n") || strings.TrimSpace(s) != s {
		return fmt.Sprintf("%q", s)
	}
	return s
}
