package stlot

import (
	"sort"

	"github.com/stletcher/stlot/date"
)

// Lot is a discrete, datable batch of shares of one asset, tracked separately
// from other batches so that gain and loss can be computed per batch. A lot
// is created by a BUY, shrunk by sells and never re-grown. A lot whose
// quantity reaches zero stays in the ledger to preserve the audit history of
// its acquisition price and date.
type Lot struct {
	ticker   string
	acquired date.Date
	price    Money // per-share acquisition price
	quantity Quantity
	comment  string
}

// Ticker returns the asset this lot belongs to.
func (l *Lot) Ticker() string { return l.ticker }

// Acquired returns the purchase date.
func (l *Lot) Acquired() date.Date { return l.acquired }

// Price returns the per-share acquisition price.
func (l *Lot) Price() Money { return l.price }

// Quantity returns the remaining share count.
func (l *Lot) Quantity() Quantity { return l.quantity }

// Comment returns the free-text comment from the BUY line, if any.
func (l *Lot) Comment() string { return l.comment }

// CostBasis returns the acquisition cost of the remaining shares.
func (l *Lot) CostBasis() Money { return l.price.Mul(l.quantity) }

// Gain returns the unrealized gain of the lot at the given current price.
func (l *Lot) Gain(current Money) Money { return current.Sub(l.price).Mul(l.quantity) }

// remove takes up to want shares out of the lot and returns how many of them
// it could not satisfy. The quantity never goes below zero.
func (l *Lot) remove(want Quantity) (unsatisfied Quantity) {
	taken := want.Min(l.quantity)
	l.quantity = l.quantity.Sub(taken)
	return want.Sub(taken)
}

type lots []*Lot

// of returns all lots of the given ticker, in creation order. Zero-quantity
// lots are included; they contribute nothing to a sale.
func (l lots) of(ticker string) lots {
	var matching lots
	for _, lot := range l {
		if lot.ticker == ticker {
			matching = append(matching, lot)
		}
	}
	return matching
}

// quantity returns the total share count across the lots.
func (l lots) quantity() Quantity {
	total := Q(0)
	for _, lot := range l {
		total = total.Add(lot.quantity)
	}
	return total
}

// costBasis returns the total acquisition cost across the lots.
func (l lots) costBasis() Money {
	var total Money
	for _, lot := range l {
		total = total.Add(lot.CostBasis())
	}
	return total
}

// sell removes quantityToSell shares from the lots, choosing lots so as to
// approximately minimize the immediately realized taxable gain: lots are
// consumed in ascending order of unrealized gain at the current price, so the
// biggest paper losses are realized first. Ties keep creation order.
//
// Availability must have been checked by the caller; shares that cannot be
// satisfied are ignored.
func (l lots) sell(current Money, quantityToSell Quantity) {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Gain(current).LessThan(l[j].Gain(current))
	})

	for _, lot := range l {
		quantityToSell = lot.remove(quantityToSell)
		if quantityToSell.IsZero() {
			return
		}
	}
}
