package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/mibon4ik/toyota-sub000/controllers/admin"
	orderControllers "github.com/mibon4ik/toyota-sub000/controllers/order"
	productcontroller "github.com/mibon4ik/toyota-sub000/controllers/product"
	userControllers "github.com/mibon4ik/toyota-sub000/controllers/user"
	"github.com/mibon4ik/toyota-sub000/middleware"
	"github.com/mibon4ik/toyota-sub000/store"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, catalog *store.CatalogStore, users *store.UserStore, orders *store.OrderStore) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		userAdmin := adminGroup.Group("/users")
		{
			userAdmin.GET("", userControllers.GetAllUsers(users))
			userAdmin.GET("/lookup", adminController.LookupUser(users))
			userAdmin.PUT("/:id", adminController.UpdateUser(users))
			userAdmin.POST("/:id/password", adminController.ResetUserPassword(users))
		}

		// ─────────── Exports ───────────
		adminGroup.GET("/orders/export-excel", orderControllers.ExportOrdersToExcel(orders))
		adminGroup.GET("/parts/export-excel", productcontroller.ExportPartsToExcel(catalog))
	}
}
