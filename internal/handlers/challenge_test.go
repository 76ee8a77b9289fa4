package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performComplete(t *testing.T, userID string, challengeID int) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(map[string]int{"challengeId": challengeID})
	req, _ := http.NewRequest("POST", "/api/challenges/complete", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("userId", userID)

	CompleteChallenge(c)
	return w
}

func TestCompleteChallenge_Success(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, "nora")

	w := performComplete(t, user.ID, 1)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message          string `json:"message"`
		AlreadyCompleted bool   `json:"alreadyCompleted"`
		LeveledUp        bool   `json:"leveledUp"`
		Progress         struct {
			XP    int `json:"xp"`
			Level int `json:"level"`
			MaxXP int `json:"maxXp"`
		} `json:"progress"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Challenge completed", resp.Message)
	assert.False(t, resp.AlreadyCompleted)
	assert.False(t, resp.LeveledUp)
	assert.Equal(t, 100, resp.Progress.XP)
	assert.Equal(t, 1, resp.Progress.Level)
	assert.Equal(t, 1000, resp.Progress.MaxXP)
}

func TestCompleteChallenge_DuplicateRetry(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, "nora")

	first := performComplete(t, user.ID, 2)
	assert.Equal(t, http.StatusOK, first.Code)

	second := performComplete(t, user.ID, 2)
	assert.Equal(t, http.StatusOK, second.Code)

	var resp struct {
		Message          string `json:"message"`
		AlreadyCompleted bool   `json:"alreadyCompleted"`
		Progress         struct {
			XP int `json:"xp"`
		} `json:"progress"`
	}
	assert.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, "Already completed", resp.Message)
	assert.True(t, resp.AlreadyCompleted)
	assert.Equal(t, 150, resp.Progress.XP)
}

func TestCompleteChallenge_UnknownChallenge(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, "nora")

	w := performComplete(t, user.ID, 9999)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Challenge not found")
}

func TestCompleteChallenge_BadgeInResponse(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, "nora")

	performComplete(t, user.ID, 1)
	performComplete(t, user.ID, 2)
	w := performComplete(t, user.ID, 3)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		NewBadges []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"newBadges"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.NewBadges, 1)
	assert.Equal(t, "Code Master", resp.NewBadges[0].Name)
}

func TestListChallenges(t *testing.T) {
	setupTest(t)

	req, _ := http.NewRequest("GET", "/api/challenges", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	ListChallenges(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Challenges []struct {
			ID     int `json:"id"`
			Points int `json:"points"`
		} `json:"challenges"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Challenges, 19)
}

func TestGetChallenge_InvalidID(t *testing.T) {
	setupTest(t)

	req, _ := http.NewRequest("GET", "/api/challenges/abc", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	GetChallenge(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
