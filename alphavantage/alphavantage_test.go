package alphavantage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stletcher/stlot"
)

const btcDaily = `{
  "Meta Data": {
    "1. Information": "Daily Prices and Volumes for Digital Currency",
    "2. Digital Currency Code": "BTC",
    "3. Digital Currency Name": "Bitcoin",
    "4. Market Code": "USD"
  },
  "Time Series (Digital Currency Daily)": {
    "2021-01-04": {
      "1a. open (USD)": "33000.00",
      "4a. close (USD)": "32000.00",
      "5. volume": "81000.25"
    },
    "2021-01-05": {
      "1a. open (USD)": "32000.00",
      "4a. close (USD)": "34000.00",
      "5. volume": "92000.75"
    }
  }
}`

func TestFetchQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("function") != "DIGITAL_CURRENCY_DAILY" || q.Get("symbol") != "BTC" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(btcDaily))
	}))
	defer server.Close()

	quote, err := NewClientAt(server.URL, "demo", "USD").FetchQuote(context.Background(), "BTC")
	if err != nil {
		t.Fatalf("FetchQuote() error = %v", err)
	}

	if quote.Symbol != "BTC" {
		t.Errorf("Symbol = %q, want BTC", quote.Symbol)
	}
	if quote.Name != "Bitcoin" {
		t.Errorf("Name = %q, want Bitcoin", quote.Name)
	}
	// The latest data point (2021-01-05) is the current price.
	if !quote.Price.Equal(stlot.M(34000.0, "USD")) {
		t.Errorf("Price = %v, want $34,000.00", quote.Price)
	}
	if !quote.Open.Equal(stlot.M(32000.0, "USD")) {
		t.Errorf("Open = %v, want $32,000.00", quote.Open)
	}
	// Change against the previous close: 34000 - 32000.
	if !quote.Change.Equal(stlot.M(2000.0, "USD")) {
		t.Errorf("Change = %v, want $2,000.00", quote.Change)
	}
	if want := stlot.Percent(2000.0 / 34000.0 * 100); !quote.ChangePercent.Equal(want) {
		t.Errorf("ChangePercent = %v, want %v", quote.ChangePercent, want)
	}
	if quote.Volume != 92000 {
		t.Errorf("Volume = %d, want 92000", quote.Volume)
	}
}

func TestFetchQuote_SingleDataPoint(t *testing.T) {
	const oneDay = `{
  "Meta Data": {"2. Digital Currency Code": "ETH", "3. Digital Currency Name": "Ethereum"},
  "Time Series (Digital Currency Daily)": {
    "2021-01-05": {
      "1a. open (USD)": "1000.00",
      "4a. close (USD)": "1100.00",
      "5. volume": "500"
    }
  }
}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(oneDay))
	}))
	defer server.Close()

	quote, err := NewClientAt(server.URL, "demo", "USD").FetchQuote(context.Background(), "ETH")
	if err != nil {
		t.Fatalf("FetchQuote() error = %v", err)
	}
	if !quote.Change.IsZero() {
		t.Errorf("Change = %v, want zero with a single data point", quote.Change)
	}
	if !quote.Price.Equal(stlot.M(1100.0, "USD")) {
		t.Errorf("Price = %v, want $1,100.00", quote.Price)
	}
}

func TestFetchQuote_WrongMarket(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(btcDaily)) // payload is suffixed (USD), client asks for (EUR)
	}))
	defer server.Close()

	_, err := NewClientAt(server.URL, "demo", "EUR").FetchQuote(context.Background(), "BTC")
	if !errors.Is(err, stlot.ErrQuoteUnavailable) {
		t.Fatalf("FetchQuote() error = %v, want ErrQuoteUnavailable", err)
	}
}

func TestFetchQuote_MissingSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Note": "API call frequency exceeded"}`))
	}))
	defer server.Close()

	_, err := NewClientAt(server.URL, "demo", "USD").FetchQuote(context.Background(), "BTC")
	if !errors.Is(err, stlot.ErrQuoteUnavailable) {
		t.Fatalf("FetchQuote() error = %v, want ErrQuoteUnavailable", err)
	}
}
