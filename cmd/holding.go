package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/stletcher/stlot/renderer"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct{}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "per-lot detail of every held asset" }
func (*holdingCmd) Usage() string {
	return `st holding

  Lists every lot of every asset with its acquisition date, purchase
  price, remaining shares and cost basis.
`
}

func (*holdingCmd) SetFlags(*flag.FlagSet) {}

func (c *holdingCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := loadPortfolio(ctx, newQuoteCache())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HoldingMarkdown(p))
	return subcommands.ExitSuccess
}
