package stlot

import (
	"context"
	"fmt"
	"sort"
)

// LotAggregate is a derived, read-only per-asset summary combining all of an
// asset's lots with its current quote. It is recomputed on demand and never
// persisted.
type LotAggregate struct {
	Ticker        string
	Shares        Quantity // total shares across lots
	CostBasis     Money    // total acquisition cost of held shares
	Price         Money    // current per-share price
	Change        Money    // today's change scaled by shares held
	ChangePercent Percent  // today's per-share percent change
	Value         Money    // Shares x Price
	Gain          Money    // Value - CostBasis
	GainPercent   Percent  // Gain / CostBasis, meaningless when CostBasis is zero
	HasGain       bool     // false when CostBasis is zero: GainPercent is undefined
}

// Summary is a portfolio-wide snapshot: every asset's aggregate plus totals
// and the cash balance.
type Summary struct {
	Name        string
	Assets      []LotAggregate // sorted by ticker
	Cash        Money
	Equity      Money // sum of asset values
	DailyChange Money
	CostBasis   Money
	Gain        Money
	Value       Money // Equity + Cash
}

// Summarize builds the aggregate for one of the portfolio's tickers, fetching
// its quote if the cache holds no entry yet.
func (p *Portfolio) Summarize(ctx context.Context, ticker string) (LotAggregate, error) {
	matching := p.lots.of(ticker)
	if len(matching) == 0 {
		return LotAggregate{}, fmt.Errorf("no lots for %q", ticker)
	}

	quote, err := p.cache.Quote(ctx, ticker)
	if err != nil {
		return LotAggregate{}, err
	}

	shares := matching.quantity()
	basis := matching.costBasis()
	agg := LotAggregate{
		Ticker:        ticker,
		Shares:        shares,
		CostBasis:     basis,
		Price:         quote.Price,
		Change:        quote.Change.Mul(shares),
		ChangePercent: quote.ChangePercent,
		Value:         quote.Price.Mul(shares),
	}
	agg.Gain = agg.Value.Sub(agg.CostBasis)
	if !basis.IsZero() {
		agg.GainPercent = agg.Gain.Percent(basis)
		agg.HasGain = true
	}
	return agg, nil
}

// Summary builds the portfolio-wide snapshot: one aggregate per ticker plus
// totals and the cash balance.
func (p *Portfolio) Summary(ctx context.Context) (Summary, error) {
	s := Summary{
		Name: p.name,
		Cash: p.cash,
	}
	for _, ticker := range p.Tickers() {
		agg, err := p.Summarize(ctx, ticker)
		if err != nil {
			return Summary{}, err
		}
		s.Assets = append(s.Assets, agg)
		s.Equity = s.Equity.Add(agg.Value)
		s.DailyChange = s.DailyChange.Add(agg.Change)
		s.CostBasis = s.CostBasis.Add(agg.CostBasis)
		s.Gain = s.Gain.Add(agg.Gain)
	}
	s.Value = s.Equity.Add(s.Cash)
	return s, nil
}

// SortKey selects the column per-asset summary rows are ordered by.
type SortKey int

const (
	// ByTicker orders rows alphabetically by ticker.
	ByTicker SortKey = iota
	// ByPrice orders rows by current price.
	ByPrice
	// ByChangePercent orders rows by today's percent change.
	ByChangePercent
	// ByGain orders rows by unrealized gain.
	ByGain
)

// ParseSortKey parses a sort key name (ticker, price, change, gain).
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "ticker":
		return ByTicker, nil
	case "price":
		return ByPrice, nil
	case "change":
		return ByChangePercent, nil
	case "gain":
		return ByGain, nil
	}
	return ByTicker, fmt.Errorf("unknown sort key %q (want ticker, price, change or gain)", s)
}

// Sort orders the summary's asset rows by the given key, optionally reversed.
func (s *Summary) Sort(key SortKey, reverse bool) {
	less := func(i, j int) bool { return s.Assets[i].Ticker < s.Assets[j].Ticker }
	switch key {
	case ByPrice:
		less = func(i, j int) bool { return s.Assets[i].Price.LessThan(s.Assets[j].Price) }
	case ByChangePercent:
		less = func(i, j int) bool { return s.Assets[i].ChangePercent < s.Assets[j].ChangePercent }
	case ByGain:
		less = func(i, j int) bool { return s.Assets[i].Gain.LessThan(s.Assets[j].Gain) }
	}
	if reverse {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(s.Assets, less)
}
