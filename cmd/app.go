// Package cmd implements the CLI application that displays a lot ledger.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/stletcher/stlot"
	"github.com/stletcher/stlot/alphavantage"
	"github.com/stletcher/stlot/iex"
)

// Commands are all the subcommands of the application. A main package
// registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&holdingCmd{},
	&gainsCmd{},
	&quoteCmd{},
	&watchCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "portfolio.ledger", "Path to the ledger file")
var cryptoTickers = flag.String("crypto", "", "Comma-separated tickers to quote as cryptocurrencies")
var cryptoMarket = flag.String("crypto-market", "USD", "Market currency for cryptocurrency quotes")

// apiKey reads the Alphavantage API key from the environment, loading a .env
// file first if one is present.
func apiKey() string {
	_ = godotenv.Load() // a missing .env file is fine
	return os.Getenv("ALPHAVANTAGE_API_KEY")
}

// kindOf classifies a ticker according to the -crypto flag.
func kindOf(ticker string) stlot.AssetKind {
	for _, t := range strings.Split(*cryptoTickers, ",") {
		if strings.TrimSpace(t) == ticker {
			return stlot.KindCrypto
		}
	}
	return stlot.KindStock
}

// newQuoteCache wires the quote cache to the external providers.
func newQuoteCache() *stlot.QuoteCache {
	return stlot.NewQuoteCache(stlot.MuxQuoter{
		Stocks: iex.NewClient(),
		Crypto: alphavantage.NewClient(apiKey(), *cryptoMarket),
		KindOf: kindOf,
	})
}

// loadPortfolio loads the ledger file, reporting parse warnings on stderr.
func loadPortfolio(ctx context.Context, cache *stlot.QuoteCache) (*stlot.Portfolio, error) {
	p, warnings, err := stlot.LoadLedger(ctx, *ledgerFile, cache)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", *ledgerFile, w)
	}
	return p, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when styling fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
