// Package goquery implements topicdump.Extractor with CSS selector lookups.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/topicdump"
	"golang.org/x/net/html"
)

const memberPathPrefix = "/member/"

// MaxAncestorDepth caps the parent walk from a reply to its container.
const MaxAncestorDepth = 16

// Ensure Extractor implements topicdump.Extractor at compile time.
var _ topicdump.Extractor = (*Extractor)(nil)

// Extractor builds a Post from topic page HTML. Title and content are read
// from the first lookup in their chain that matches; replies are read in
// document order.
type Extractor struct {
	titleLookups   []Lookup
	contentLookups []Lookup
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTitleLookups replaces the title lookup chain.
func WithTitleLookups(lookups ...Lookup) Option {
	return func(e *Extractor) {
		e.titleLookups = lookups
	}
}

// WithContentLookups replaces the content lookup chain.
func WithContentLookups(lookups ...Lookup) Option {
	return func(e *Extractor) {
		e.contentLookups = lookups
	}
}

// WithContentFallback appends a lookup to the end of the content chain.
func WithContentFallback(lookup Lookup) Option {
	return func(e *Extractor) {
		e.contentLookups = append(e.contentLookups, lookup)
	}
}

// NewExtractor creates a new Extractor with the default lookup chains.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		titleLookups:   append([]Lookup(nil), DefaultTitleLookups...),
		contentLookups: append([]Lookup(nil), DefaultContentLookups...),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses html and returns the extracted post.
// Missing elements degrade to sentinel or empty values; Extract does not
// fail on malformed markup.
func (e *Extractor) Extract(rawHTML string, sourceURL string) (*topicdump.Post, error) {
	post := &topicdump.Post{
		Title:     topicdump.UnknownTitle,
		Replies:   []string{},
		SourceURL: sourceURL,
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return post, nil
	}

	if sel, ok := firstMatch(doc, e.titleLookups); ok {
		post.Title = strings.TrimSpace(sel.Text())
	}

	if sel, ok := firstMatch(doc, e.contentLookups); ok {
		post.Content = topicdump.NormalizeText(sel.Text())
		if post.Content != "" {
			// A render failure leaves ContentHTML empty; Content still carries the text.
			if h, err := sel.Html(); err == nil {
				post.ContentHTML = h
			}
		}
	}

	post.Replies = extractReplies(doc)

	return post, nil
}

// extractReplies formats every reply element in document order. The index
// comes from iteration order only; author attribution is resolved
// independently per element.
func extractReplies(doc *goquery.Document) []string {
	replies := []string{}
	doc.Find(ReplySelector).Each(func(i int, sel *goquery.Selection) {
		author := topicdump.UnknownUser
		if container := findContainer(sel.Get(0)); container != nil {
			if name := authorIn(container); name != "" {
				author = name
			}
		}
		text := topicdump.NormalizeText(sel.Text())
		replies = append(replies, topicdump.FormatReply(i+1, author, text))
	})
	return replies
}

// findContainer walks parent pointers from n to the nearest reply container.
// It gives up after MaxAncestorDepth levels.
func findContainer(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	p := n.Parent
	for depth := 0; p != nil && depth < MaxAncestorDepth; depth++ {
		if p.Type == html.ElementNode && p.Data == ContainerTag && hasClass(p, ContainerClass) {
			return p
		}
		p = p.Parent
	}
	return nil
}

// authorIn returns the name from the first member link inside container.
// Avatar links carry no text, so the name falls back to the link target.
func authorIn(container *html.Node) string {
	link := goquery.NewDocumentFromNode(container).Find(AuthorSelector).First()
	if link.Length() == 0 {
		return ""
	}
	if name := strings.TrimSpace(link.Text()); name != "" {
		return name
	}
	href, _ := link.Attr("href")
	name := strings.TrimPrefix(href, memberPathPrefix)
	if i := strings.IndexAny(name, "/?#"); i >= 0 {
		name = name[:i]
	}
	return name
}

// hasClass reports whether the node's class attribute includes className.
func hasClass(n *html.Node, className string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == className {
				return true
			}
		}
	}
	return false
}
