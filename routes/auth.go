package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mibon4ik/toyota-sub000/auth"
	"github.com/mibon4ik/toyota-sub000/store"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, users *store.UserStore) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(users))
		authGroup.POST("/login", auth.LoginHandler(users))
	}
}
