package renderer

import (
	"fmt"
	"strings"

	"github.com/stletcher/stlot"
)

// HoldingMarkdown renders the per-lot detail of every asset in the
// portfolio, including exhausted lots, which are part of the audit history.
func HoldingMarkdown(p *stlot.Portfolio) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Holdings\n\n")
	for _, ticker := range p.Tickers() {
		fmt.Fprintf(&b, "## %s\n\n", ticker)
		fmt.Fprintln(&b, "| Acquired | Shares | Price | Cost Basis | Comment |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|:---|")
		for _, lot := range p.Lots(ticker) {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				lot.Acquired(),
				lot.Quantity(),
				lot.Price(),
				lot.CostBasis(),
				lot.Comment(),
			)
		}
		fmt.Fprintf(&b, "\nTotal: %s shares, cost basis %s\n\n",
			p.Holdings()[ticker], p.CostBasis(ticker))
	}
	fmt.Fprintf(&b, "Cash: %s\n", p.Cash())
	return b.String()
}
