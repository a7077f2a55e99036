package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/mibon4ik/toyota-sub000/controllers/product"
	"github.com/mibon4ik/toyota-sub000/store"
)

// SetupPartRoutes registers the public catalog endpoints.
func SetupPartRoutes(r *gin.Engine, catalog *store.CatalogStore) {
	parts := r.Group("/api/parts")
	{
		parts.GET("", productcontroller.GetParts(catalog))
		parts.GET("/:id", productcontroller.GetPartByID(catalog))

		// Compatibility lookups used by the "find parts for my car" page
		parts.GET("/match/vin", productcontroller.MatchByVIN(catalog))
		parts.GET("/match/vehicle", productcontroller.MatchByVehicle(catalog))
	}
}
