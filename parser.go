package stlot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stletcher/stlot/date"
)

// commentMarker starts a comment, either a whole line or the trailing
// description of a transaction.
const commentMarker = "#"

// ParseWarning reports one ledger line that could not be understood or
// applied. Warnings are non-fatal: the line is skipped and parsing continues.
type ParseWarning struct {
	Line   int    // 1-based line number in the ledger file
	Text   string // the offending line, trimmed
	Reason error
}

func (w ParseWarning) String() string {
	return fmt.Sprintf("line %d: %v: %q", w.Line, w.Reason, w.Text)
}

// LoadLedger reads a ledger file and returns the resulting portfolio along
// with any parse warnings. Failing to open the file is fatal: no partial
// portfolio is returned. The cache is consulted during SELL processing, so a
// ledger containing sells will fetch quotes while loading.
func LoadLedger(ctx context.Context, path string, cache *QuoteCache) (*Portfolio, []ParseWarning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open ledger: %w", err)
	}
	defer f.Close()

	p, warnings, err := ParseLedger(ctx, f, cache)
	if err != nil {
		return nil, warnings, err
	}
	p.name = path
	return p, warnings, nil
}

// ParseLedger reads ledger lines from r and applies them, in file order, to a
// fresh portfolio. Malformed lines and transactions that fail to apply are
// reported as warnings and skipped; only a read error aborts the parse.
func ParseLedger(ctx context.Context, r io.Reader, cache *QuoteCache) (*Portfolio, []ParseWarning, error) {
	p := NewPortfolio(cache)
	var warnings []ParseWarning

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())

		tx, ok, err := parseLine(line)
		if err != nil {
			warnings = append(warnings, ParseWarning{Line: n, Text: line, Reason: err})
			continue
		}
		if !ok {
			continue // blank or comment
		}
		if err := p.Apply(ctx, tx); err != nil {
			warnings = append(warnings, ParseWarning{Line: n, Text: line, Reason: err})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("reading ledger: %w", err)
	}
	return p, warnings, nil
}

// parseLine parses a single ledger line:
//
//	<Mon DD, YYYY> | <TYPE> <args...> [# free-text comment]
//
// ok is false for blank lines and whole-line comments. The line must already
// be trimmed.
func parseLine(line string) (tx Transaction, ok bool, err error) {
	if line == "" || strings.HasPrefix(line, commentMarker) {
		return Transaction{}, false, nil
	}

	dateStr, body, found := strings.Cut(line, "|")
	if !found {
		return Transaction{}, false, fmt.Errorf("missing %q separator", "|")
	}

	day, err := date.Parse(strings.TrimSpace(dateStr))
	if err != nil {
		return Transaction{}, false, err
	}

	// Everything after the first '#' in the body is the description.
	body, desc, _ := strings.Cut(body, commentMarker)
	desc = strings.TrimSpace(desc)

	tokens := strings.Fields(body)
	switch len(tokens) {
	case 2:
		kind := TxType(tokens[0])
		if kind != TxDeposit && kind != TxWithdrawal {
			return Transaction{}, false, fmt.Errorf("unrecognized transaction type %q", tokens[0])
		}
		amount, err := parseQuantity(tokens[1])
		if err != nil {
			return Transaction{}, false, fmt.Errorf("bad amount: %w", err)
		}
		return NewCashFlow(day, kind, amount, desc), true, nil

	case 4:
		kind := TxType(tokens[0])
		if kind != TxBuy && kind != TxSell {
			return Transaction{}, false, fmt.Errorf("unrecognized transaction type %q", tokens[0])
		}
		quantity, err := parseQuantity(tokens[1])
		if err != nil {
			return Transaction{}, false, fmt.Errorf("bad quantity: %w", err)
		}
		ticker := tokens[2]
		price, err := parseQuantity(tokens[3])
		if err != nil {
			return Transaction{}, false, fmt.Errorf("bad price: %w", err)
		}
		return NewTrade(day, kind, quantity, ticker, cashAmount(price), desc), true, nil

	default:
		return Transaction{}, false, fmt.Errorf("bad data line: %d tokens", len(tokens))
	}
}

// parseQuantity parses a non-negative decimal number.
func parseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid number %q", s)
	}
	if d.IsNegative() {
		return Quantity{}, fmt.Errorf("negative number %q", s)
	}
	return Q(d), nil
}
