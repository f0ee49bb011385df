package stlot

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrQuoteUnavailable is reported when the external quote source could not be
// reached or returned unusable data for a ticker. Callers may fall back to a
// stale cached quote if one exists.
var ErrQuoteUnavailable = errors.New("quote unavailable")

// Quote is the most recently fetched market data for one asset.
type Quote struct {
	Symbol        string // canonical symbol as reported by the source
	Name          string // display name
	Price         Money  // last traded price
	Change        Money  // absolute daily change
	ChangePercent Percent
	Open          Money // opening price
	Volume        int64 // traded volume
}

// Quoter fetches current market data for a ticker from an external source.
// Implementations report failures wrapping ErrQuoteUnavailable.
type Quoter interface {
	FetchQuote(ctx context.Context, ticker string) (Quote, error)
}

// QuoterFunc adapts a function to the Quoter interface.
type QuoterFunc func(ctx context.Context, ticker string) (Quote, error)

func (f QuoterFunc) FetchQuote(ctx context.Context, ticker string) (Quote, error) {
	return f(ctx, ticker)
}

// MuxQuoter routes fetches to a kind-specific quoter. KindOf classifies a
// ticker; a nil KindOf treats every ticker as a stock.
type MuxQuoter struct {
	Stocks Quoter
	Crypto Quoter
	KindOf func(ticker string) AssetKind
}

func (m MuxQuoter) FetchQuote(ctx context.Context, ticker string) (Quote, error) {
	kind := KindStock
	if m.KindOf != nil {
		kind = m.KindOf(ticker)
	}
	switch kind {
	case KindCrypto:
		if m.Crypto == nil {
			return Quote{}, fmt.Errorf("no crypto quoter configured for %q: %w", ticker, ErrQuoteUnavailable)
		}
		return m.Crypto.FetchQuote(ctx, ticker)
	default:
		if m.Stocks == nil {
			return Quote{}, fmt.Errorf("no stock quoter configured for %q: %w", ticker, ErrQuoteUnavailable)
		}
		return m.Stocks.FetchQuote(ctx, ticker)
	}
}

// QuoteCache caches the most recently fetched quote per ticker in front of a
// Quoter. Entries are populated lazily on first read and overwritten whole on
// Refresh; once populated, staleness is tolerated until an explicit refresh.
type QuoteCache struct {
	quoter Quoter

	mu     sync.RWMutex
	quotes map[string]Quote
}

// NewQuoteCache creates an empty cache backed by the given quoter.
func NewQuoteCache(quoter Quoter) *QuoteCache {
	return &QuoteCache{
		quoter: quoter,
		quotes: make(map[string]Quote),
	}
}

// Refresh performs a blocking fetch and unconditionally overwrites the cache
// entry for ticker. On failure the previous entry, if any, is left in place.
func (c *QuoteCache) Refresh(ctx context.Context, ticker string) error {
	q, err := c.quoter.FetchQuote(ctx, ticker)
	if err != nil {
		return fmt.Errorf("refreshing %q: %w", ticker, err)
	}
	c.mu.Lock()
	c.quotes[ticker] = q
	c.mu.Unlock()
	return nil
}

// Quote returns the cached quote for ticker, fetching it first if the cache
// has no entry yet.
func (c *QuoteCache) Quote(ctx context.Context, ticker string) (Quote, error) {
	c.mu.RLock()
	q, ok := c.quotes[ticker]
	c.mu.RUnlock()
	if ok {
		return q, nil
	}
	if err := c.Refresh(ctx, ticker); err != nil {
		return Quote{}, err
	}
	c.mu.RLock()
	q = c.quotes[ticker]
	c.mu.RUnlock()
	return q, nil
}

// Cached returns the cached quote for ticker without ever fetching.
func (c *QuoteCache) Cached(ticker string) (Quote, bool) {
	c.mu.RLock()
	q, ok := c.quotes[ticker]
	c.mu.RUnlock()
	return q, ok
}

// Price returns the last traded price for ticker.
func (c *QuoteCache) Price(ctx context.Context, ticker string) (Money, error) {
	q, err := c.Quote(ctx, ticker)
	return q.Price, err
}

// Change returns the absolute daily change for ticker.
func (c *QuoteCache) Change(ctx context.Context, ticker string) (Money, error) {
	q, err := c.Quote(ctx, ticker)
	return q.Change, err
}

// ChangePercent returns the daily percent change for ticker.
func (c *QuoteCache) ChangePercent(ctx context.Context, ticker string) (Percent, error) {
	q, err := c.Quote(ctx, ticker)
	return q.ChangePercent, err
}

// Name returns the display name for ticker.
func (c *QuoteCache) Name(ctx context.Context, ticker string) (string, error) {
	q, err := c.Quote(ctx, ticker)
	return q.Name, err
}

// Symbol returns the canonical symbol for ticker.
func (c *QuoteCache) Symbol(ctx context.Context, ticker string) (string, error) {
	q, err := c.Quote(ctx, ticker)
	return q.Symbol, err
}
