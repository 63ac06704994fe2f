package topicdump

import "context"

// Fetcher retrieves page HTML from URLs.
type Fetcher interface {
	// Fetch issues a single request for the URL and returns the page HTML.
	// Transport failures and non-success statuses return an ENETWORK error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
