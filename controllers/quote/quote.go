package quoteControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/pricing"
)

type QuoteRequest struct {
	OrderID      string  `json:"orderId"`
	ProductPrice float64 `json:"productPrice"`
}

// POST /api/quotes — one fresh randomized bid per catalog vendor.
func GenerateQuotesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req QuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": pricing.ErrInvalidQuoteArgs.Error()})
			return
		}

		quotes, err := pricing.GenerateQuotes(req.OrderID, req.ProductPrice)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "quotes": quotes})
	}
}
