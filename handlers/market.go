package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Quote(c *gin.Context) {
	symbol := c.Param("symbol")

	quote, err := book.Quote(c.Request.Context(), symbol)
	if err != nil {
		apology(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}
