package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Ruby-dev1/AIgnite/internal/catalog"
	"github.com/Ruby-dev1/AIgnite/internal/database"
	"github.com/Ruby-dev1/AIgnite/internal/services"
	apperrors "github.com/Ruby-dev1/AIgnite/pkg/errors"
	"github.com/Ruby-dev1/AIgnite/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ListChallenges returns the static challenge catalog.
func ListChallenges(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"challenges": catalog.Challenges()})
}

func GetChallenge(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid challenge id"})
		return
	}

	challenge, ok := catalog.ChallengeByID(id)
	if !ok {
		c.JSON(apperrors.ErrUnknownChallenge.Code, gin.H{"error": apperrors.ErrUnknownChallenge.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenge": challenge})
}

type CompleteChallengeInput struct {
	ChallengeID int `json:"challengeId" binding:"required"`
}

// CompleteChallenge applies a completion event for the authenticated user
// and reports XP, level-ups and newly unlocked badges back to the client.
func CompleteChallenge(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input CompleteChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allowed, err := database.CheckRateLimit(userID, "complete", 30, time.Minute)
	if err != nil {
		logger.Warn().Err(err).Msg("Rate limit check failed")
	}
	if !allowed {
		c.JSON(apperrors.ErrRateLimit.Code, gin.H{"error": apperrors.ErrRateLimit.Message})
		return
	}

	result, err := services.CompleteChallenge(userID, input.ChallengeID)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete challenge"})
		return
	}

	message := "Challenge completed"
	if result.AlreadyCompleted {
		message = "Already completed"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          message,
		"progress":         result.Progress,
		"alreadyCompleted": result.AlreadyCompleted,
		"leveledUp":        result.LeveledUp(),
		"levelsGained":     result.LevelsGained,
		"newBadges":        result.NewBadges,
	})
}
