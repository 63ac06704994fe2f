package goquery

import (
	"github.com/PuerkitoBio/goquery"
)

// Lookup is one strategy for locating the element a field is read from.
// It returns an empty selection when the strategy does not apply.
type Lookup func(doc *goquery.Document) *goquery.Selection

// Select returns a Lookup matching the first element for a CSS selector.
func Select(selector string) Lookup {
	return func(doc *goquery.Document) *goquery.Selection {
		return doc.Find(selector).First()
	}
}

// firstMatch runs lookups in order and returns the first non-empty selection.
func firstMatch(doc *goquery.Document, lookups []Lookup) (*goquery.Selection, bool) {
	for _, lookup := range lookups {
		if sel := lookup(doc); sel != nil && sel.Length() > 0 {
			return sel, true
		}
	}
	return nil, false
}

// Default lookup chains. Adding a fallback selector is a one-line edit.
var (
	DefaultTitleLookups = []Lookup{
		Select("h1.topic__title"),
		Select("title"),
	}

	DefaultContentLookups = []Lookup{
		Select("div.topic_content"),
		Select("div.markdown_body"),
	}
)

// Reply markup selectors.
const (
	ReplySelector  = "div.reply_content"
	AuthorSelector = `a[href^="/member/"]`
	ContainerTag   = "div"
	ContainerClass = "cell"
)
