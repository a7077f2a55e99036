package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mibon4ik/toyota-sub000/store"
)

// MatchByVIN returns parts compatible with the vehicle behind a VIN.
// Query param: vin. A VIN that is not exactly 17 characters yields an empty
// list, not an error, so the storefront can show "nothing found" directly.
func MatchByVIN(catalog *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		vin := c.Query("vin")
		if vin == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "vin query parameter is required"})
			return
		}
		c.JSON(http.StatusOK, catalog.MatchByVIN(vin))
	}
}

// MatchByVehicle returns parts compatible with a make/model pair.
// Query params: make, model. Either one empty yields an empty list.
func MatchByVehicle(catalog *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		carMake := c.Query("make")
		carModel := c.Query("model")
		c.JSON(http.StatusOK, catalog.MatchByMakeModel(carMake, carModel))
	}
}
