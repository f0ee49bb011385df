package stlot

import "context"

// Asset is a handle over one tracked instrument: its identity plus accessors
// over the quote cache entry for its ticker. Equality and ordering between
// two assets are defined purely by ticker identity, so lots and aggregates
// can be grouped and sorted without touching the cache.
type Asset struct {
	ticker string
	kind   AssetKind
	cache  *QuoteCache
}

// NewAsset creates an asset handle reading quotes from the given cache.
func NewAsset(ticker string, kind AssetKind, cache *QuoteCache) Asset {
	return Asset{ticker: ticker, kind: kind, cache: cache}
}

// Ticker returns the asset identifier.
func (a Asset) Ticker() string { return a.ticker }

// Kind returns the instrument kind.
func (a Asset) Kind() AssetKind { return a.kind }

// Equal reports whether two assets identify the same instrument.
// Tickers are compared case-sensitively.
func (a Asset) Equal(b Asset) bool { return a.ticker == b.ticker }

// Less orders assets by ticker.
func (a Asset) Less(b Asset) bool { return a.ticker < b.ticker }

func (a Asset) String() string { return a.ticker }

// Refresh forces a fetch of fresh market data for the asset.
func (a Asset) Refresh(ctx context.Context) error { return a.cache.Refresh(ctx, a.ticker) }

// Price returns the last traded price, fetching it if not cached yet.
func (a Asset) Price(ctx context.Context) (Money, error) { return a.cache.Price(ctx, a.ticker) }

// Change returns the absolute daily change.
func (a Asset) Change(ctx context.Context) (Money, error) { return a.cache.Change(ctx, a.ticker) }

// ChangePercent returns the daily percent change.
func (a Asset) ChangePercent(ctx context.Context) (Percent, error) {
	return a.cache.ChangePercent(ctx, a.ticker)
}

// Name returns the display name reported by the quote source.
func (a Asset) Name(ctx context.Context) (string, error) { return a.cache.Name(ctx, a.ticker) }

// Symbol returns the canonical symbol reported by the quote source.
func (a Asset) Symbol(ctx context.Context) (string, error) { return a.cache.Symbol(ctx, a.ticker) }
