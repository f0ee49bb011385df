package renderer

import (
	"fmt"
	"strings"

	"github.com/stletcher/stlot"
)

// SummaryMarkdown renders the portfolio-wide summary as a markdown report:
// one row per asset plus the totals block.
func SummaryMarkdown(s *stlot.Summary) string {
	var b strings.Builder

	if s.Name != "" {
		fmt.Fprintf(&b, "# Portfolio %s\n\n", s.Name)
	} else {
		fmt.Fprintf(&b, "# Portfolio\n\n")
	}

	fmt.Fprintln(&b, "| Asset | Price | Change (%) | Shares | Value | Day Change |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
	for _, a := range s.Assets {
		fmt.Fprintf(&b, "| %s | %s | %s %s | %s | %s | %s |\n",
			a.Ticker,
			a.Price,
			arrow(a.ChangePercent), a.ChangePercent.SignedString(),
			a.Shares,
			a.Value,
			a.Change.SignedString(),
		)
	}

	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "- Daily change: %s\n", s.DailyChange.SignedString())
	fmt.Fprintf(&b, "- Total equity: %s\n", s.Equity)
	fmt.Fprintf(&b, "- Cash: %s\n", s.Cash)
	fmt.Fprintf(&b, "- Portfolio value: %s\n", s.Value)
	fmt.Fprintf(&b, "- Cost basis: %s\n", s.CostBasis)
	fmt.Fprintf(&b, "- Total gain: %s\n", s.Gain.SignedString())
	return b.String()
}
