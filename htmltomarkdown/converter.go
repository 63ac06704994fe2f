// Package htmltomarkdown implements topicdump.Converter with html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/topicdump"
)

// DefaultDomain resolves relative links found in topic content.
const DefaultDomain = "https://www.v2ex.com"

// Ensure Converter implements topicdump.Converter at compile time.
var _ topicdump.Converter = (*Converter)(nil)

// Converter converts topic content HTML to Markdown.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// Option configures a Converter.
type Option func(*Converter)

// WithDomain sets the domain relative links are resolved against.
// An empty domain leaves relative links untouched.
func WithDomain(domain string) Option {
	return func(c *Converter) {
		c.domain = domain
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
		domain: DefaultDomain,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", topicdump.Errorf(topicdump.EINVALID, "empty HTML input")
	}

	if c.domain == "" {
		return c.conv.ConvertString(html)
	}
	return c.conv.ConvertString(html, converter.WithDomain(c.domain))
}
