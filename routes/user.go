package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/mibon4ik/toyota-sub000/controllers/user"
	"github.com/mibon4ik/toyota-sub000/middleware"
	"github.com/mibon4ik/toyota-sub000/store"
)

func SetupUserRoutes(r *gin.Engine, users *store.UserStore) {
	group := r.Group("/api/users")
	group.Use(middleware.ValidateToken)
	{
		group.GET("/me", userControllers.GetUser(users))
		group.PUT("/me", userControllers.UpdateUser(users))
	}
}
