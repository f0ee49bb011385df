package stlot

import (
	"context"
	"sync"
)

// Test helpers shared across the package tests.

func USD(v float64) Money { return M(v, "USD") }

// fakeQuoter is an in-memory Quoter with per-ticker canned quotes and a call
// counter, so tests can assert on cache behavior deterministically.
type fakeQuoter struct {
	mu     sync.Mutex
	quotes map[string]Quote
	err    error // when set, every fetch fails with this error
	calls  map[string]int
}

func newFakeQuoter() *fakeQuoter {
	return &fakeQuoter{
		quotes: make(map[string]Quote),
		calls:  make(map[string]int),
	}
}

// set installs a canned quote for ticker at the given price and daily change.
func (f *fakeQuoter) set(ticker string, price, change float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quotes[ticker] = Quote{
		Symbol:        ticker,
		Name:          ticker + " Inc.",
		Price:         USD(price),
		Change:        USD(change),
		ChangePercent: Percent(change / price * 100),
		Open:          USD(price - change),
		Volume:        1000,
	}
}

func (f *fakeQuoter) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeQuoter) count(ticker string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[ticker]
}

func (f *fakeQuoter) FetchQuote(_ context.Context, ticker string) (Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[ticker]++
	if f.err != nil {
		return Quote{}, f.err
	}
	q, ok := f.quotes[ticker]
	if !ok {
		return Quote{}, ErrQuoteUnavailable
	}
	return q, nil
}
