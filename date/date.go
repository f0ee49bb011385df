// Package date provides a day-granularity calendar date used throughout the
// ledger. Transaction dates in a ledger file are written in the short form
// "Jan 05, 2021" and that is the canonical format for both parsing and
// display.
package date

import (
	"fmt"
	"time"
)

// LedgerFormat is the layout used to read dates in ledger files.
// Parsing is permissive about the day of month ("Jan 5, 2021" is accepted).
const LedgerFormat = "Jan 2, 2006"

// writeFormat pads the day of month so columns line up in ledger files.
const writeFormat = "Jan 02, 2006"

// Date represents a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Equal reports whether d and x are the same day.
func (d Date) Equal(x Date) bool { return d == x }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// String formats the date in the ledger format, e.g. "Jan 05, 2021".
func (d Date) String() string { return d.time().Format(writeFormat) }

// Parse parses a Date from its ledger representation.
func Parse(str string) (Date, error) {
	on, err := time.Parse(LedgerFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, writeFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
