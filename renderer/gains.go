package renderer

import (
	"fmt"
	"strings"

	"github.com/stletcher/stlot"
)

// GainsMarkdown renders unrealized gains per asset.
func GainsMarkdown(s *stlot.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Unrealized Gains\n\n")
	fmt.Fprintln(&b, "| Asset | Cost Basis | Value | Gain | Gain (%) |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, a := range s.Assets {
		gainPercent := "n/a"
		if a.HasGain {
			gainPercent = a.GainPercent.SignedString()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			a.Ticker, a.CostBasis, a.Value, a.Gain.SignedString(), gainPercent)
	}
	fmt.Fprintf(&b, "\nTotal gain: %s on a cost basis of %s\n",
		s.Gain.SignedString(), s.CostBasis)
	return b.String()
}
