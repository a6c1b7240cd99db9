package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

const alphaVantageURL = "https://www.alphavantage.co/query"

// AlphaVantage fetches quotes from the Alpha Vantage GLOBAL_QUOTE endpoint.
type AlphaVantage struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

func NewAlphaVantage(apiKey string) *AlphaVantage {
	return &AlphaVantage{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: alphaVantageURL,
	}
}

type globalQuoteResponse struct {
	GlobalQuote struct {
		Symbol string `json:"01. symbol"`
		Price  string `json:"05. price"`
	} `json:"Global Quote"`
}

func (a *AlphaVantage) Lookup(ctx context.Context, symbol string) (Quote, error) {
	symbol = Normalize(symbol)
	if symbol == "" {
		return Quote{}, ErrUnknownSymbol
	}

	endpoint := fmt.Sprintf("%s?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		a.baseURL, url.QueryEscape(symbol), a.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Quote{}, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to fetch stock data: %w", err)
	}
	defer resp.Body.Close()

	var result globalQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Quote{}, fmt.Errorf("failed to parse stock data: %w", err)
	}

	// Alpha Vantage answers unknown tickers with an empty Global Quote.
	if result.GlobalQuote.Price == "" {
		return Quote{}, ErrUnknownSymbol
	}

	price, err := decimal.NewFromString(result.GlobalQuote.Price)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to parse stock price %q: %w", result.GlobalQuote.Price, err)
	}

	// GLOBAL_QUOTE carries no company name; the symbol doubles as the
	// display name for this provider.
	return Quote{Symbol: symbol, Name: symbol, Price: price}, nil
}
