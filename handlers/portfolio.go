package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TradeInput carries a buy or sell order. Shares arrive as the raw form
// value; the ledger's share-count parser decides what is acceptable.
type TradeInput struct {
	Symbol string `json:"symbol" form:"symbol" binding:"required"`
	Shares string `json:"shares" form:"shares" binding:"required"`
}

func Index(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	snapshot, err := book.PortfolioSnapshot(c.Request.Context(), userID)
	if err != nil {
		apology(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func Buy(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input TradeInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt, err := book.Buy(c.Request.Context(), userID, input.Symbol, input.Shares)
	if err != nil {
		apology(c, err)
		return
	}

	c.JSON(http.StatusOK, receipt)
}

func Sell(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input TradeInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt, err := book.Sell(c.Request.Context(), userID, input.Symbol, input.Shares)
	if err != nil {
		apology(c, err)
		return
	}

	c.JSON(http.StatusOK, receipt)
}

func History(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	transactions, err := book.History(userID)
	if err != nil {
		apology(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}
