package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/stletcher/stlot"
	"github.com/stletcher/stlot/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	sort    string
	reverse bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "per-asset overview with portfolio totals" }
func (*summaryCmd) Usage() string {
	return `st summary [-sort <key>] [-r]

  Displays one row per held asset with current price, daily change,
  cost basis and unrealized gain, followed by portfolio totals.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "ticker", "Sort key (ticker, price, change, gain)")
	f.BoolVar(&c.reverse, "r", false, "Reverse the sort order")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key, err := stlot.ParseSortKey(c.sort)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	p, err := loadPortfolio(ctx, newQuoteCache())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	s, err := p.Summary(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building summary: %v\n", err)
		return subcommands.ExitFailure
	}
	s.Sort(key, c.reverse)

	printMarkdown(renderer.SummaryMarkdown(&s))
	return subcommands.ExitSuccess
}
