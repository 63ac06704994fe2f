// Package trafilatura provides a content lookup backed by go-trafilatura,
// for pages where none of the topic selectors match.
package trafilatura

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	tdgoquery "github.com/fwojciec/topicdump/goquery"
	"github.com/markusmobius/go-trafilatura"
)

// ContentLookup returns a lookup that runs trafilatura over the whole
// document and selects the main content it finds.
func ContentLookup() tdgoquery.Lookup {
	opts := trafilatura.Options{
		EnableFallback: true,
	}

	return func(doc *goquery.Document) *goquery.Selection {
		// trafilatura prunes the tree it works on, so it gets its own copy.
		rawHTML, err := doc.Html()
		if err != nil || strings.TrimSpace(rawHTML) == "" {
			return nil
		}

		result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
		if err != nil || result == nil || result.ContentNode == nil {
			return nil
		}

		return goquery.NewDocumentFromNode(result.ContentNode).Selection
	}
}
