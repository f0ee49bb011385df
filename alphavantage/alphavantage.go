// Package alphavantage fetches cryptocurrency quotes from an
// Alphavantage-style digital currency daily endpoint.
//
// The daily time series annoyingly keys most of its values by the market
// currency, e.g. "4a. close (USD)". The market is a constructor parameter;
// the most recent data point serves as the current price and the change is
// computed against the previous day's close.
package alphavantage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/stletcher/stlot"
	"github.com/stletcher/stlot/internal/fetch"
)

const defaultBaseURL = "https://www.alphavantage.co"

// Keys into a daily data point. All but volume carry the market suffix.
const (
	keyOpen   = "1a. open"
	keyClose  = "4a. close"
	keyVolume = "5. volume"
)

// Client queries the digital currency daily endpoint. It implements
// stlot.Quoter.
type Client struct {
	apiKey  string
	market  string
	baseURL string
	client  *http.Client
}

// NewClient returns a client quoting against the given market currency
// ("USD" when empty). The series only changes daily, so responses are served
// through a disk cache that expires daily.
func NewClient(apiKey, market string) *Client {
	if market == "" {
		market = stlot.Currency
	}
	return &Client{
		apiKey:  apiKey,
		market:  market,
		baseURL: defaultBaseURL,
		client:  fetch.NewDailyCachingClient(),
	}
}

// NewClientAt returns a client for an alternate endpoint, used in tests.
func NewClientAt(baseURL, apiKey, market string) *Client {
	c := NewClient(apiKey, market)
	c.baseURL = baseURL
	c.client = new(http.Client)
	return c
}

// FetchQuote fetches the daily series for ticker and derives a quote from
// its two most recent data points.
func (c *Client) FetchQuote(ctx context.Context, ticker string) (stlot.Quote, error) {
	addr := fmt.Sprintf("%s/query?function=DIGITAL_CURRENCY_DAILY&symbol=%s&market=%s&apikey=%s",
		c.baseURL, url.QueryEscape(ticker), url.QueryEscape(c.market), url.QueryEscape(c.apiKey))

	var jobj any
	if err := fetch.JSONGet(ctx, c.client, addr, &jobj); err != nil {
		return stlot.Quote{}, fmt.Errorf("%w: %s: %v", stlot.ErrQuoteUnavailable, ticker, err)
	}

	jseries, err := jsonpath.Get(`$["Time Series (Digital Currency Daily)"]`, jobj)
	if err != nil {
		return stlot.Quote{}, fmt.Errorf("%w: %s: no daily series: %v", stlot.ErrQuoteUnavailable, ticker, err)
	}
	series, ok := jseries.(map[string]any)
	if !ok || len(series) == 0 {
		return stlot.Quote{}, fmt.Errorf("%w: %s: empty daily series", stlot.ErrQuoteUnavailable, ticker)
	}

	// The series is keyed by ISO date, so the lexicographic order is the
	// chronological order.
	days := make([]string, 0, len(series))
	for day := range series {
		days = append(days, day)
	}
	sort.Strings(days)

	today, ok := series[days[len(days)-1]].(map[string]any)
	if !ok {
		return stlot.Quote{}, fmt.Errorf("%w: %s: malformed data point", stlot.ErrQuoteUnavailable, ticker)
	}

	price, err := c.field(today, keyClose)
	if err != nil {
		return stlot.Quote{}, fmt.Errorf("%w: %s: %v", stlot.ErrQuoteUnavailable, ticker, err)
	}
	open, err := c.field(today, keyOpen)
	if err != nil {
		return stlot.Quote{}, fmt.Errorf("%w: %s: %v", stlot.ErrQuoteUnavailable, ticker, err)
	}
	volume, err := number(today[keyVolume])
	if err != nil {
		return stlot.Quote{}, fmt.Errorf("%w: %s: %v", stlot.ErrQuoteUnavailable, ticker, err)
	}

	// Daily change against the previous close, when there is one.
	change := decimal.Zero
	if len(days) > 1 {
		yesterday, ok := series[days[len(days)-2]].(map[string]any)
		if !ok {
			return stlot.Quote{}, fmt.Errorf("%w: %s: malformed data point", stlot.ErrQuoteUnavailable, ticker)
		}
		prev, err := c.field(yesterday, keyClose)
		if err != nil {
			return stlot.Quote{}, fmt.Errorf("%w: %s: %v", stlot.ErrQuoteUnavailable, ticker, err)
		}
		change = price.Sub(prev)
	}
	percent := decimal.Zero
	if !price.IsZero() {
		percent = change.Div(price).Mul(decimal.NewFromInt(100))
	}

	name, symbol := c.meta(jobj, ticker)

	return stlot.Quote{
		Symbol:        symbol,
		Name:          name,
		Price:         stlot.M(price, c.market),
		Change:        stlot.M(change, c.market),
		ChangePercent: stlot.Percent(percent.InexactFloat64()),
		Open:          stlot.M(open, c.market),
		Volume:        volume.IntPart(),
	}, nil
}

// field reads a market-suffixed value from a daily data point.
func (c *Client) field(day map[string]any, key string) (decimal.Decimal, error) {
	full := fmt.Sprintf("%s (%s)", key, c.market)
	raw, ok := day[full]
	if !ok {
		return decimal.Zero, fmt.Errorf("missing field %q", full)
	}
	return number(raw)
}

// meta extracts the currency name and code, falling back to the ticker.
func (c *Client) meta(jobj any, ticker string) (name, symbol string) {
	name, symbol = ticker, ticker
	if jval, err := jsonpath.Get(`$["Meta Data"]["3. Digital Currency Name"]`, jobj); err == nil {
		if s, ok := jval.(string); ok && s != "" {
			name = s
		}
	}
	if jval, err := jsonpath.Get(`$["Meta Data"]["2. Digital Currency Code"]`, jobj); err == nil {
		if s, ok := jval.(string); ok && s != "" {
			symbol = s
		}
	}
	return name, symbol
}

// number converts a JSON value to a decimal; this weird API returns numbers
// as strings most of the time.
func number(raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid number %q", v)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Zero, fmt.Errorf("not a number: %v", raw)
	}
}

var _ stlot.Quoter = (*Client)(nil)
