package iex

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stletcher/stlot"
)

const nvdaQuote = `{
  "symbol": "NVDA",
  "companyName": "NVIDIA Corporation",
  "latestPrice": 150.00,
  "change": 3.00,
  "changePercent": 0.0204,
  "open": 147.12,
  "avgTotalVolume": 51234567
}`

func TestFetchQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stock/NVDA/quote" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(nvdaQuote))
	}))
	defer server.Close()

	q, err := NewClientAt(server.URL).FetchQuote(context.Background(), "NVDA")
	if err != nil {
		t.Fatalf("FetchQuote() error = %v", err)
	}

	if q.Symbol != "NVDA" {
		t.Errorf("Symbol = %q, want NVDA", q.Symbol)
	}
	if q.Name != "NVIDIA Corporation" {
		t.Errorf("Name = %q, want NVIDIA Corporation", q.Name)
	}
	if !q.Price.Equal(stlot.M(150.0, "USD")) {
		t.Errorf("Price = %v, want $150.00", q.Price)
	}
	if !q.Change.Equal(stlot.M(3.0, "USD")) {
		t.Errorf("Change = %v, want $3.00", q.Change)
	}
	if want := stlot.Percent(2.04); !q.ChangePercent.Equal(want) {
		t.Errorf("ChangePercent = %v, want %v", q.ChangePercent, want)
	}
	if q.Volume != 51234567 {
		t.Errorf("Volume = %d, want 51234567", q.Volume)
	}
}

func TestFetchQuote_UnknownTicker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer server.Close()

	_, err := NewClientAt(server.URL).FetchQuote(context.Background(), "NOPE")
	if !errors.Is(err, stlot.ErrQuoteUnavailable) {
		t.Fatalf("FetchQuote() error = %v, want ErrQuoteUnavailable", err)
	}
}

func TestFetchQuote_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	_, err := NewClientAt(server.URL).FetchQuote(context.Background(), "NVDA")
	if !errors.Is(err, stlot.ErrQuoteUnavailable) {
		t.Fatalf("FetchQuote() error = %v, want ErrQuoteUnavailable", err)
	}
}
