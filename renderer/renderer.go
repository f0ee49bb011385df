// Package renderer builds markdown reports from portfolio snapshots.
// Reports are plain markdown strings; terminal styling is the caller's
// concern.
package renderer

import "github.com/stletcher/stlot"

// arrow returns the direction marker for a percent change.
func arrow(p stlot.Percent) string {
	switch {
	case p > 0:
		return "▲"
	case p < 0:
		return "▼"
	default:
		return " "
	}
}
