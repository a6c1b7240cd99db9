package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock-simulator/ledger"
)

// apology is the single funnel from ledger errors to HTTP responses. Every
// failure a handler cannot express through binding lands here.
func apology(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidInput),
		errors.Is(err, ledger.ErrInvalidShareCount),
		errors.Is(err, ledger.ErrUnknownSymbol),
		errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrInsufficientShares),
		errors.Is(err, ledger.ErrNoSuchHolding):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
}
