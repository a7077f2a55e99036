package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mibon4ik/toyota-sub000/models"
	"github.com/mibon4ik/toyota-sub000/store"
)

// The cart itself lives in the browser's local storage; the server only
// re-prices it. QuoteCart is the price authority the checkout page calls
// before submitting an order.

type QuoteItemInput struct {
	PartID   string `json:"partId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type QuoteRequest struct {
	Items []QuoteItemInput `json:"items" binding:"required,min=1,dive"`
}

// POST /api/cart/quote
func QuoteCart(catalog *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req QuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var cart models.Cart
		for _, in := range req.Items {
			part, ok := catalog.GetByID(in.PartID)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Part does not exist: " + in.PartID})
				return
			}
			cart.Items = append(cart.Items, models.CartItem{Part: part, Quantity: in.Quantity})
		}

		c.JSON(http.StatusOK, gin.H{
			"items": cart.Items,
			"count": cart.Count(),
			"total": cart.Total(),
		})
	}
}
