package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/topicdump"
	"github.com/fwojciec/topicdump/fs"
	"github.com/fwojciec/topicdump/goquery"
	"github.com/fwojciec/topicdump/htmltomarkdown"
	tdhttp "github.com/fwojciec/topicdump/http"
	"github.com/fwojciec/topicdump/readability"
	"github.com/fwojciec/topicdump/rod"
	tdslog "github.com/fwojciec/topicdump/slog"
	"github.com/fwojciec/topicdump/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// Application errors have already been reported by the command.
		if topicdump.ErrorCode(err) == topicdump.EINTERNAL {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher replaces the fetcher built from flags. Set before calling Run().
	Fetcher topicdump.Fetcher

	// Dir is the directory relative output filenames resolve under.
	Dir string

	// Now stamps the fetch time in output files.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Dir: ".",
		Now: time.Now,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("topicdump"),
		kong.Description("Save a V2EX topic and its replies to a local file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		fmt.Fprintf(stdout, "\nExample: topicdump %s\n", topicdump.ExampleTopicURL)
		return topicdump.Errorf(topicdump.EINVALID, "no topic URL provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Reject malformed URLs before anything touches the network
	if err := topicdump.ValidateTopicURL(cli.URL); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", topicdump.ErrorMessage(err))
		return err
	}

	// A zero client timeout means no timeout at all
	if cli.Timeout <= 0 {
		err := topicdump.Errorf(topicdump.EINVALID, "timeout must be positive, got %s", cli.Timeout)
		fmt.Fprintf(stderr, "error: %s\n", topicdump.ErrorMessage(err))
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	userAgent := cli.UserAgent
	if userAgent == "" {
		userAgent = tdhttp.DefaultUserAgent
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		if cli.Browser {
			rodFetcher, err := rod.NewFetcher(
				rod.WithFetchTimeout(cli.Timeout),
				rod.WithUserAgent(userAgent),
			)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
				fmt.Fprintf(stderr, "error: %s\n", topicdump.ErrorMessage(err))
				return err
			}
			fetcher = rodFetcher
		} else {
			fetcher = tdhttp.NewFetcher(
				tdhttp.WithTimeout(cli.Timeout),
				tdhttp.WithUserAgent(userAgent),
			)
		}
	}
	defer fetcher.Close()

	var extractorOpts []goquery.Option
	switch cli.Fallback {
	case FallbackTrafilatura:
		extractorOpts = append(extractorOpts, goquery.WithContentFallback(trafilatura.ContentLookup()))
	case FallbackReadability:
		pageURL, _ := url.Parse(cli.URL)
		extractorOpts = append(extractorOpts, goquery.WithContentFallback(readability.ContentLookup(pageURL)))
	}

	writerOpts := []fs.WriterOption{fs.WithClock(m.Now)}
	if cli.Format == FormatMarkdown {
		writerOpts = append(writerOpts, fs.WithFormatter(fs.MarkdownFormatter(htmltomarkdown.NewConverter()), fs.MarkdownExt))
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Fetcher:   tdslog.NewLoggingFetcher(fetcher, logger),
		Extractor: tdslog.NewLoggingExtractor(goquery.NewExtractor(extractorOpts...), logger),
		Writer:    tdslog.NewLoggingWriter(fs.NewWriter(m.Dir, writerOpts...), logger),
	}

	cmd := &DumpCmd{
		URL:    cli.URL,
		Output: cli.Output,
	}

	return cmd.Run(deps)
}

// newLogger returns a text logger on w. Only warnings and errors are shown
// unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
