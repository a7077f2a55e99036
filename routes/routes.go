package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mibon4ik/toyota-sub000/store"
)

// SetupRoutes registers every endpoint group on the engine.
func SetupRoutes(r *gin.Engine, catalog *store.CatalogStore, users *store.UserStore, orders *store.OrderStore) {
	SetupAuthRoutes(r, users)
	SetupPartRoutes(r, catalog)
	SetupCartRoutes(r, catalog)
	SetupOrderRoutes(r, catalog, orders)
	SetupUserRoutes(r, users)
	SetupAdminRoutes(r, catalog, users, orders)
}
