package renderer

import (
	"fmt"
	"strings"

	"github.com/stletcher/stlot"
)

// QuoteMarkdown renders one asset's current quote.
func QuoteMarkdown(q stlot.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", q.Name, q.Symbol)
	fmt.Fprintf(&b, "- Price: %s %s %s\n", q.Price, arrow(q.ChangePercent), q.ChangePercent.SignedString())
	fmt.Fprintf(&b, "- Change: %s\n", q.Change.SignedString())
	fmt.Fprintf(&b, "- Open: %s\n", q.Open)
	fmt.Fprintf(&b, "- Volume: %d\n", q.Volume)
	return b.String()
}
