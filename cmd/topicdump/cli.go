package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/topicdump"
)

// Output formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// Content fallbacks.
const (
	FallbackNone        = "none"
	FallbackTrafilatura = "trafilatura"
	FallbackReadability = "readability"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output    string        `short:"o" help:"Output file name (default: derived from the topic title)"`
	Format    string        `short:"f" enum:"text,markdown" default:"text" help:"Output format: text or markdown"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	UserAgent string        `name:"user-agent" help:"User-Agent header (default: desktop Chrome)"`
	Browser   bool          `help:"Render the page in headless Chrome instead of a plain GET"`
	Fallback  string        `enum:"none,trafilatura,readability" default:"none" help:"Content extractor tried when no topic selector matches"`
	Verbose   bool          `short:"v" help:"Log each step to stderr"`
	URL       string        `arg:"" required:"" help:"Topic URL, e.g. https://www.v2ex.com/t/1184608"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   topicdump.Fetcher
	Extractor topicdump.Extractor
	Writer    topicdump.PostWriter
}
