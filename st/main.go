package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/stletcher/stlot/cmd"
)

// completion describes the CLI for shell completion. Run
// `COMP_INSTALL=1 st` once to install it.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"ledger-file":   predict.Files("*.ledger"),
		"crypto":        predict.Nothing,
		"crypto-market": predict.Nothing,
	},
	Sub: map[string]*complete.Command{
		"summary": {Flags: map[string]complete.Predictor{
			"sort": predict.Set{"ticker", "price", "change", "gain"},
			"r":    predict.Nothing,
		}},
		"holding": {},
		"gains":   {},
		"quote":   {},
		"watch": {Flags: map[string]complete.Predictor{
			"refresh-interval": predict.Nothing,
		}},
		"topic": {Flags: map[string]complete.Predictor{
			"list": predict.Nothing,
		}},
	},
}

func main() {
	completion.Complete("st")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
