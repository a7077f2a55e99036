package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mibon4ik/toyota-sub000/store"
)

// GetPartByID returns a single catalog part.
// URL param: /api/parts/:id
func GetPartByID(catalog *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Part ID is required"})
			return
		}

		part, ok := catalog.GetByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Part not found"})
			return
		}
		c.JSON(http.StatusOK, part)
	}
}
