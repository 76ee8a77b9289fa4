package handlers

import (
	"net/http"
	"strconv"

	"github.com/Ruby-dev1/AIgnite/internal/services"
	apperrors "github.com/Ruby-dev1/AIgnite/pkg/errors"
	"github.com/gin-gonic/gin"
)

const defaultLeaderboardSize = 10

// GetLeaderboard returns the top users by XP, the viewer's own rank when a
// valid token is presented, and the total population count. A failed read
// returns an error status, never a partial ranking.
func GetLeaderboard(c *gin.Context) {
	limit := defaultLeaderboardSize
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	viewerID := c.GetString("userId")

	view, err := services.GetLeaderboard(limit, viewerID)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leaderboard":     view.Entries,
		"currentUserRank": view.Viewer,
		"totalUsers":      view.TotalUsers,
	})
}
