package routes

import (
	"github.com/Ruby-dev1/AIgnite/internal/handlers"
	"github.com/Ruby-dev1/AIgnite/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(r gin.IRouter) {
	users := r.Group("/users")
	{
		profile := users.Group("/profile")
		profile.Use(middleware.AuthMiddleware())
		{
			profile.GET("", handlers.GetProfile)
			profile.PUT("", handlers.UpdateProfile)
			profile.GET("/progress", handlers.GetProgress)
		}
	}

	// Public, viewer-aware when a token is presented
	r.GET("/leaderboard", middleware.OptionalAuthMiddleware(), handlers.GetLeaderboard)
}
