package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/fwojciec/topicdump"
)

// DumpCmd fetches one topic and writes it to a file.
type DumpCmd struct {
	URL    string
	Output string
}

// Run executes the dump command. A write failure is reported after the
// summary of what was extracted.
func (c *DumpCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Fetching %s\n", c.URL)

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", topicdump.ErrorMessage(err))
		fmt.Fprintln(deps.Stderr, "Failed to fetch topic")
		return err
	}

	post, err := deps.Extractor.Extract(html, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", topicdump.ErrorMessage(err))
		return err
	}

	path, writeErr := deps.Writer.WritePost(deps.Ctx, post, c.Output)
	if writeErr != nil {
		fmt.Fprintf(deps.Stderr, "error saving: %s\n", topicdump.ErrorMessage(writeErr))
	} else {
		fmt.Fprintf(deps.Stdout, "Saved to %s\n", path)
	}

	fmt.Fprintf(deps.Stdout, "Title: %s\n", post.Title)
	fmt.Fprintf(deps.Stdout, "Content length: %d characters\n", utf8.RuneCountInString(post.Content))
	fmt.Fprintf(deps.Stdout, "Replies: %d\n", len(post.Replies))

	return writeErr
}
