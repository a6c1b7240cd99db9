package ledger

import "errors"

// Every ledger failure is one of these sentinel values (possibly wrapped),
// so handlers can map each to a status code and message.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidShareCount  = errors.New("shares must be a positive whole number")
	ErrUnknownSymbol      = errors.New("stock does not exist")
	ErrInsufficientFunds  = errors.New("insufficient funds for number of shares")
	ErrInsufficientShares = errors.New("fewer shares owned than requested to be sold")
	ErrNoSuchHolding      = errors.New("no shares of this stock owned")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username and/or password")
)
