package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/mibon4ik/toyota-sub000/controllers/cart"
	"github.com/mibon4ik/toyota-sub000/store"
)

// SetupCartRoutes registers the cart re-pricing endpoint. The cart itself is
// client-local; there is nothing to store server-side.
func SetupCartRoutes(r *gin.Engine, catalog *store.CatalogStore) {
	r.POST("/api/cart/quote", cartControllers.QuoteCart(catalog))
}
