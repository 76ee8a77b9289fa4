package handlers

import (
	"net/http"

	"github.com/Ruby-dev1/AIgnite/internal/database"
	"github.com/Ruby-dev1/AIgnite/internal/models"
	"github.com/Ruby-dev1/AIgnite/internal/services"
	apperrors "github.com/Ruby-dev1/AIgnite/pkg/errors"
	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	userID := c.GetString("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfileInput is the narrow set of fields a user may edit. There is
// deliberately no generic merge: progression fields are owned by the
// completion flow and cannot be written here.
type UpdateProfileInput struct {
	Name                *string  `json:"name"`
	Bio                 *string  `json:"bio"`
	Role                *string  `json:"role"`
	Avatar              *string  `json:"avatar"`
	Skills              []string `json:"skills"`
	Interests           []string `json:"interests"`
	PrimaryCareer       *string  `json:"primaryCareer"`
	OnboardingCompleted *bool    `json:"onboardingCompleted"`
}

func UpdateProfile(c *gin.Context) {
	userID := c.GetString("userId")

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	if input.Skills != nil {
		user.Skills = models.StringList(input.Skills)
	}
	if input.Interests != nil {
		user.Interests = models.StringList(input.Interests)
	}
	if input.PrimaryCareer != nil {
		user.PrimaryCareer = *input.PrimaryCareer
	}
	if input.OnboardingCompleted != nil {
		user.OnboardingCompleted = *input.OnboardingCompleted
	}

	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetProgress returns the authenticated user's progression record together
// with the derived badge showcase. Reads bypass any cache so a completion
// the user just made is always visible here.
func GetProgress(c *gin.Context) {
	userID := c.GetString("userId")

	progress, err := services.GetProgress(userID)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"progress": progress,
		"badges":   services.BadgeShowcase(progress),
	})
}
