package stlot

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Currency is the currency every ledger amount is denominated in.
const Currency = "USD"

// ErrInsufficientShares is reported when a SELL asks for more shares than are
// currently held across all lots of the asset. The portfolio is left
// untouched.
var ErrInsufficientShares = errors.New("insufficient shares")

// Portfolio is the aggregate root of the lot ledger: the ordered transaction
// history, the set of open lots, and the running cash balance. It owns its
// lots exclusively.
//
// A Portfolio is not internally synchronized; callers sharing one across
// goroutines are responsible for mutual exclusion between mutation and
// aggregation (see Watcher).
type Portfolio struct {
	name         string
	transactions []Transaction
	lots         lots
	cash         Money
	cache        *QuoteCache
}

// NewPortfolio creates an empty portfolio reading quotes from the given cache.
func NewPortfolio(cache *QuoteCache) *Portfolio {
	return &Portfolio{
		cash:  M(0, Currency),
		cache: cache,
	}
}

// Name returns the path the portfolio was loaded from, if any.
func (p *Portfolio) Name() string { return p.name }

// Cash returns the running cash balance: the signed sum of all deposits and
// withdrawals. Trades do not move cash; this ledger tracks cash only from
// explicit deposit and withdrawal events, not from trade settlement.
func (p *Portfolio) Cash() Money { return p.cash }

// History returns the transactions in the order they were read.
func (p *Portfolio) History() []Transaction {
	return append([]Transaction(nil), p.transactions...)
}

// Apply applies one transaction to the portfolio. The transaction is recorded
// in the history only when application succeeds. Only a SELL can fail: with
// ErrInsufficientShares when more shares are sold than held, or with
// ErrQuoteUnavailable when the current price needed by lot selection cannot
// be obtained.
func (p *Portfolio) Apply(ctx context.Context, tx Transaction) error {
	switch tx.What() {
	case TxDeposit:
		p.cash = p.cash.Add(cashAmount(tx.Quantity()))
	case TxWithdrawal:
		p.cash = p.cash.Sub(cashAmount(tx.Quantity()))
	case TxBuy:
		p.lots = append(p.lots, &Lot{
			ticker:   tx.Ticker(),
			acquired: tx.When(),
			price:    tx.Price(),
			quantity: tx.Quantity(),
			comment:  tx.Description(),
		})
	case TxSell:
		if err := p.sell(ctx, tx); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown transaction type %q", tx.What())
	}
	p.transactions = append(p.transactions, tx)
	return nil
}

// sell decrements lots of the sold asset using tax-aware lot selection.
func (p *Portfolio) sell(ctx context.Context, tx Transaction) error {
	matching := p.lots.of(tx.Ticker())
	if matching.quantity().LessThan(tx.Quantity()) {
		return fmt.Errorf("selling %s %s, %s held: %w",
			tx.Quantity(), tx.Ticker(), matching.quantity(), ErrInsufficientShares)
	}
	current, err := p.cache.Price(ctx, tx.Ticker())
	if err != nil {
		return fmt.Errorf("selling %s: %w", tx.Ticker(), err)
	}
	matching.sell(current, tx.Quantity())
	return nil
}

// Holdings returns the total quantity currently held per ticker. Tickers
// whose lots are all empty are still present, with a zero quantity.
func (p *Portfolio) Holdings() map[string]Quantity {
	holdings := make(map[string]Quantity)
	for _, lot := range p.lots {
		holdings[lot.ticker] = holdings[lot.ticker].Add(lot.quantity)
	}
	return holdings
}

// Tickers returns all tickers that ever appeared in a lot, sorted.
func (p *Portfolio) Tickers() []string {
	holdings := p.Holdings()
	tickers := make([]string, 0, len(holdings))
	for t := range holdings {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers
}

// Lots returns a snapshot of the lots of a ticker in creation order,
// including exhausted ones.
func (p *Portfolio) Lots(ticker string) []Lot {
	var snapshot []Lot
	for _, lot := range p.lots.of(ticker) {
		snapshot = append(snapshot, *lot)
	}
	return snapshot
}

// CostBasis returns the acquisition cost of the currently held shares of a
// ticker.
func (p *Portfolio) CostBasis(ticker string) Money {
	return p.lots.of(ticker).costBasis()
}

// Asset returns a handle over one of the portfolio's tickers.
func (p *Portfolio) Asset(ticker string) Asset {
	return NewAsset(ticker, KindStock, p.cache)
}

// RefreshAll refreshes the quote cache entry of every distinct ticker in the
// portfolio. It is blocking. A ticker that fails to refresh keeps its stale
// entry; all failures are reported joined.
func (p *Portfolio) RefreshAll(ctx context.Context) error {
	var errs []error
	for _, ticker := range p.Tickers() {
		if err := p.cache.Refresh(ctx, ticker); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// cashAmount converts a parsed cash quantity into a ledger money amount.
func cashAmount(q Quantity) Money { return M(q.value, Currency) }
