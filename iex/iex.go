// Package iex fetches stock quotes from an IEX-style quote endpoint.
//
// The quote payload is a flat JSON object:
//
//	{
//	  "symbol": "NVDA",
//	  "companyName": "NVIDIA Corporation",
//	  "latestPrice": 150.00,
//	  "change": 3.00,
//	  "changePercent": 0.0204,
//	  "open": 147.12,
//	  "avgTotalVolume": 51234567
//	}
//
// changePercent comes back as a fraction and is scaled to a percent value.
package iex

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/stletcher/stlot"
	"github.com/stletcher/stlot/internal/fetch"
)

const defaultBaseURL = "https://api.iextrading.com/1.0"

// Client queries the quote endpoint. It implements stlot.Quoter.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a client for the public endpoint. Quotes are intraday
// data so no caching transport is used.
func NewClient() *Client {
	return &Client{baseURL: defaultBaseURL, client: new(http.Client)}
}

// NewClientAt returns a client for an alternate endpoint, used in tests.
func NewClientAt(baseURL string) *Client {
	return &Client{baseURL: baseURL, client: new(http.Client)}
}

// FetchQuote fetches the current quote for ticker.
func (c *Client) FetchQuote(ctx context.Context, ticker string) (stlot.Quote, error) {
	addr := fmt.Sprintf("%s/stock/%s/quote", c.baseURL, url.PathEscape(ticker))

	var payload struct {
		Symbol         string          `json:"symbol"`
		CompanyName    string          `json:"companyName"`
		LatestPrice    decimal.Decimal `json:"latestPrice"`
		Change         decimal.Decimal `json:"change"`
		ChangePercent  float64         `json:"changePercent"`
		Open           decimal.Decimal `json:"open"`
		AvgTotalVolume int64           `json:"avgTotalVolume"`
	}
	if err := fetch.JSONGet(ctx, c.client, addr, &payload); err != nil {
		return stlot.Quote{}, fmt.Errorf("%w: %s: %v", stlot.ErrQuoteUnavailable, ticker, err)
	}
	if payload.Symbol == "" {
		return stlot.Quote{}, fmt.Errorf("%w: %s: empty quote", stlot.ErrQuoteUnavailable, ticker)
	}

	return stlot.Quote{
		Symbol:        payload.Symbol,
		Name:          payload.CompanyName,
		Price:         stlot.M(payload.LatestPrice, stlot.Currency),
		Change:        stlot.M(payload.Change, stlot.Currency),
		ChangePercent: stlot.Percent(payload.ChangePercent * 100),
		Open:          stlot.M(payload.Open, stlot.Currency),
		Volume:        payload.AvgTotalVolume,
	}, nil
}

var _ stlot.Quoter = (*Client)(nil)
