package middleware

import (
	"time"

	"github.com/Ruby-dev1/AIgnite/internal/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const devOrigin = "http://localhost:3000"

// CORSMiddleware allows the configured frontend plus the local dev server.
func CORSMiddleware() gin.HandlerFunc {
	origins := []string{devOrigin}
	if u := config.AppConfig.FrontendURL; u != "" && u != devOrigin {
		origins = append(origins, u)
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
