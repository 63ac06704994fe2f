// Package readability provides a content lookup backed by go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	tdgoquery "github.com/fwojciec/topicdump/goquery"
	"github.com/go-shiori/go-readability"
)

// ContentLookup returns a lookup that runs readability over the whole
// document. pageURL resolves relative links and may be nil.
func ContentLookup(pageURL *url.URL) tdgoquery.Lookup {
	return func(doc *goquery.Document) *goquery.Selection {
		rawHTML, err := doc.Html()
		if err != nil || strings.TrimSpace(rawHTML) == "" {
			return nil
		}

		article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
		if err != nil || article.Node == nil {
			return nil
		}

		return goquery.NewDocumentFromNode(article.Node).Selection
	}
}
