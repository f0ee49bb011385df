package stlot

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestLots_SellPrefersLowestGain(t *testing.T) {
	// Two lots of 5 shares, acquired at 10 and at 20, market now at 15.
	// The price=20 lot has gain -25, the price=10 lot +25: a sale of 5 must
	// zero the price=20 lot and leave the price=10 lot untouched.
	quoter := newFakeQuoter()
	quoter.set("ACME", 15, 0)

	ledger := `
Jan 01, 2020 | BUY 5 ACME 10.00
Jan 02, 2020 | BUY 5 ACME 20.00
Jan 03, 2020 | SELL 5 ACME 15.00
`
	p, warnings := parse(t, quoter, ledger)
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}

	lots := p.Lots("ACME")
	if len(lots) != 2 {
		t.Fatalf("Lots(ACME) has %d lots, want 2", len(lots))
	}
	if !lots[0].Quantity().Equal(Q(5)) {
		t.Errorf("price=10 lot quantity = %v, want untouched 5", lots[0].Quantity())
	}
	if !lots[1].Quantity().Equal(Q(0)) {
		t.Errorf("price=20 lot quantity = %v, want 0", lots[1].Quantity())
	}
}

func TestLots_SellSpansLots(t *testing.T) {
	quoter := newFakeQuoter()
	quoter.set("ACME", 15, 0)

	ledger := `
Jan 01, 2020 | BUY 5 ACME 10.00
Jan 02, 2020 | BUY 5 ACME 20.00
Jan 03, 2020 | SELL 7 ACME 15.00
`
	p, _ := parse(t, quoter, ledger)

	lots := p.Lots("ACME")
	// 5 from the losing lot, 2 more from the winning one.
	if !lots[0].Quantity().Equal(Q(3)) {
		t.Errorf("price=10 lot quantity = %v, want 3", lots[0].Quantity())
	}
	if !lots[1].Quantity().Equal(Q(0)) {
		t.Errorf("price=20 lot quantity = %v, want 0", lots[1].Quantity())
	}
	if got := p.Holdings()["ACME"]; !got.Equal(Q(3)) {
		t.Errorf("Holdings()[ACME] = %v, want 3", got)
	}
}

func TestLots_SellTiesKeepCreationOrder(t *testing.T) {
	// Same acquisition price, same gain: the earlier lot is consumed first.
	quoter := newFakeQuoter()
	quoter.set("ACME", 15, 0)

	ledger := `
Jan 01, 2020 | BUY 5 ACME 10.00 # first
Jan 02, 2020 | BUY 5 ACME 10.00 # second
Jan 03, 2020 | SELL 5 ACME 15.00
`
	p, _ := parse(t, quoter, ledger)

	lots := p.Lots("ACME")
	if !lots[0].Quantity().Equal(Q(0)) {
		t.Errorf("first lot quantity = %v, want 0", lots[0].Quantity())
	}
	if !lots[1].Quantity().Equal(Q(5)) {
		t.Errorf("second lot quantity = %v, want 5", lots[1].Quantity())
	}
}

func TestLots_SellAllZeroesEveryLot(t *testing.T) {
	quoter := newFakeQuoter()
	quoter.set("ACME", 15, 0)

	ledger := `
Jan 01, 2020 | BUY 5 ACME 10.00
Jan 02, 2020 | BUY 3 ACME 20.00
Jan 03, 2020 | BUY 2 ACME 30.00
Jan 04, 2020 | SELL 10 ACME 15.00
`
	p, warnings := parse(t, quoter, ledger)
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}

	if got := p.Holdings()["ACME"]; !got.Equal(Q(0)) {
		t.Errorf("Holdings()[ACME] = %v, want 0", got)
	}
	for i, lot := range p.Lots("ACME") {
		if !lot.Quantity().Equal(Q(0)) {
			t.Errorf("lot %d quantity = %v, want 0", i, lot.Quantity())
		}
	}
	// Exhausted lots stay in the ledger for audit.
	if got := len(p.Lots("ACME")); got != 3 {
		t.Errorf("Lots(ACME) has %d lots, want all 3 retained", got)
	}
}

func TestApply_SellInsufficientShares(t *testing.T) {
	quoter := newFakeQuoter()
	quoter.set("ACME", 15, 0)
	cache := NewQuoteCache(quoter)
	ctx := context.Background()

	p, _, err := ParseLedger(ctx, strings.NewReader("Jan 01, 2020 | BUY 5 ACME 10.00\n"), cache)
	if err != nil {
		t.Fatalf("ParseLedger() error = %v", err)
	}

	sell := NewTrade(p.History()[0].When(), TxSell, Q(6), "ACME", USD(15), "")
	if err := p.Apply(ctx, sell); !errors.Is(err, ErrInsufficientShares) {
		t.Fatalf("Apply(sell 6 of 5) error = %v, want ErrInsufficientShares", err)
	}
	if got := p.Holdings()["ACME"]; !got.Equal(Q(5)) {
		t.Errorf("Holdings()[ACME] = %v, want untouched 5", got)
	}
}

func TestApply_SellQuoteUnavailable(t *testing.T) {
	quoter := newFakeQuoter() // no quote installed for ACME
	cache := NewQuoteCache(quoter)
	ctx := context.Background()

	p, _, err := ParseLedger(ctx, strings.NewReader("Jan 01, 2020 | BUY 5 ACME 10.00\n"), cache)
	if err != nil {
		t.Fatalf("ParseLedger() error = %v", err)
	}

	sell := NewTrade(p.History()[0].When(), TxSell, Q(5), "ACME", USD(15), "")
	if err := p.Apply(ctx, sell); !errors.Is(err, ErrQuoteUnavailable) {
		t.Fatalf("Apply(sell) error = %v, want ErrQuoteUnavailable", err)
	}
	if got := p.Holdings()["ACME"]; !got.Equal(Q(5)) {
		t.Errorf("Holdings()[ACME] = %v, want untouched 5", got)
	}
}

func TestLot_CostBasisRoundTrip(t *testing.T) {
	quoter := newFakeQuoter()
	quoter.set("ACME", 15, 0)

	ledger := `
Jan 01, 2020 | BUY 5 ACME 10.00
Jan 02, 2020 | BUY 3 ACME 20.00
`
	p, _ := parse(t, quoter, ledger)

	want := USD(5*10 + 3*20)
	if got := p.CostBasis("ACME"); !got.Equal(want) {
		t.Errorf("CostBasis(ACME) = %v, want %v", got, want)
	}
	// Identical after a no-op refresh.
	if err := p.RefreshAll(context.Background()); err != nil {
		t.Fatalf("RefreshAll() error = %v", err)
	}
	if got := p.CostBasis("ACME"); !got.Equal(want) {
		t.Errorf("CostBasis(ACME) after refresh = %v, want %v", got, want)
	}
}
