package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/stletcher/stlot/renderer"
)

// quoteCmd holds the flags for the 'quote' subcommand.
type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "current quote for a ticker" }
func (*quoteCmd) Usage() string {
	return `st quote <ticker>...

  Fetches and displays the current quote for each ticker. Tickers
  listed in the -crypto flag are quoted as cryptocurrencies.
`
}

func (*quoteCmd) SetFlags(*flag.FlagSet) {}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "quote requires at least one ticker")
		return subcommands.ExitUsageError
	}

	cache := newQuoteCache()
	for _, ticker := range f.Args() {
		q, err := cache.Quote(ctx, ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching %s: %v\n", ticker, err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.QuoteMarkdown(q))
	}
	return subcommands.ExitSuccess
}
