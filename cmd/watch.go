package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/subcommands"

	"github.com/stletcher/stlot"
	"github.com/stletcher/stlot/renderer"
)

// watchCmd holds the flags for the 'watch' subcommand.
type watchCmd struct {
	interval time.Duration
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "live summary, refreshed periodically" }
func (*watchCmd) Usage() string {
	return `st watch [-refresh-interval <duration>]

  Reprints the portfolio summary after each quote refresh, until
  interrupted with Ctrl-C.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.interval, "refresh-interval", 15*time.Second, "Time between quote refreshes")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := loadPortfolio(ctx, newQuoteCache())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	w := stlot.NewWatcher(c.interval, func(s stlot.Summary) {
		printMarkdown(renderer.SummaryMarkdown(&s))
	})
	w.SetActive(p)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		w.Stop()
	}()

	w.Run(ctx)
	return subcommands.ExitSuccess
}
