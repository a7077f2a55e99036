package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mibon4ik/toyota-sub000/store"
)

// GetParts lists the catalog with optional filters.
// Query params: search (free text, wins over category), category ("all" or
// empty means everything).
func GetParts(catalog *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.DefaultQuery("category", "all")

		if search != "" {
			c.JSON(http.StatusOK, catalog.Search(search))
			return
		}
		c.JSON(http.StatusOK, catalog.ListByCategory(category))
	}
}
