package stlot

import (
	"fmt"

	"github.com/stletcher/stlot/date"
)

// TxType is a typed string identifying a kind of ledger transaction.
type TxType string

// Transaction types recognized in a ledger file. Keywords are matched
// case-sensitively, exactly as they must be written.
const (
	TxBuy        TxType = "BUY"
	TxSell       TxType = "SELL"
	TxDeposit    TxType = "DEPOSIT"
	TxWithdrawal TxType = "WITHDRAWAL"
)

// IsTrade reports whether the type moves shares of an asset rather than cash.
func (t TxType) IsTrade() bool { return t == TxBuy || t == TxSell }

// Transaction is one immutable record of a ledger file. For BUY and SELL the
// quantity is a share count and ticker and price are set; for DEPOSIT and
// WITHDRAWAL the quantity is a cash amount and ticker and price are unset.
type Transaction struct {
	date        date.Date
	kind        TxType
	quantity    Quantity
	ticker      string
	price       Money
	description string
}

// NewTrade creates a BUY or SELL transaction.
func NewTrade(day date.Date, kind TxType, quantity Quantity, ticker string, price Money, desc string) Transaction {
	if !kind.IsTrade() {
		panic(fmt.Sprintf("transaction type %q is not a trade", kind))
	}
	return Transaction{date: day, kind: kind, quantity: quantity, ticker: ticker, price: price, description: desc}
}

// NewCashFlow creates a DEPOSIT or WITHDRAWAL transaction.
func NewCashFlow(day date.Date, kind TxType, amount Quantity, desc string) Transaction {
	if kind.IsTrade() {
		panic(fmt.Sprintf("transaction type %q is not a cash flow", kind))
	}
	return Transaction{date: day, kind: kind, quantity: amount, description: desc}
}

// When returns the date on which the transaction occurred.
func (t Transaction) When() date.Date { return t.date }

// What returns the type of the transaction.
func (t Transaction) What() TxType { return t.kind }

// Quantity returns the share count for trades, the cash amount otherwise.
func (t Transaction) Quantity() Quantity { return t.quantity }

// Ticker returns the asset identifier, empty for cash transactions.
func (t Transaction) Ticker() string { return t.ticker }

// Price returns the per-share transaction price, zero for cash transactions.
func (t Transaction) Price() Money { return t.price }

// Description returns the free-text comment attached to the transaction.
func (t Transaction) Description() string { return t.description }

func (t Transaction) String() string {
	if t.kind.IsTrade() {
		return fmt.Sprintf("%s | %s %s %s %s", t.date, t.kind, t.quantity, t.ticker, t.price)
	}
	return fmt.Sprintf("%s | %s %s", t.date, t.kind, t.quantity)
}
