package quotes

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownSymbol is returned when the provider has no quote for a symbol.
var ErrUnknownSymbol = errors.New("unknown stock symbol")

// Quote is one market observation for a symbol.
type Quote struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

// Provider looks up the current quote for a symbol. Lookups never mutate
// application state and are safe to retry.
type Provider interface {
	Lookup(ctx context.Context, symbol string) (Quote, error)
}

// Normalize upper-cases and trims a raw symbol the way providers expect it.
func Normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
