package routes

import (
	"github.com/Ruby-dev1/AIgnite/internal/handlers"
	"github.com/Ruby-dev1/AIgnite/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterChallengeRoutes(r gin.IRouter) {
	challenges := r.Group("/challenges")
	{
		challenges.GET("", handlers.ListChallenges)
		challenges.POST("/complete", middleware.AuthMiddleware(), handlers.CompleteChallenge)
		challenges.GET("/:id", handlers.GetChallenge)
	}
}
