package services

import (
	"errors"

	"github.com/Ruby-dev1/AIgnite/internal/catalog"
	"github.com/Ruby-dev1/AIgnite/internal/database"
	"github.com/Ruby-dev1/AIgnite/internal/models"
	apperrors "github.com/Ruby-dev1/AIgnite/pkg/errors"
	"github.com/Ruby-dev1/AIgnite/pkg/logger"
	"gorm.io/gorm"
)

// completionRetries bounds how often a lost optimistic-update race is
// retried before surfacing a conflict to the caller.
const completionRetries = 5

// CompletionResult is what a completion call hands back to the HTTP layer:
// the updated record plus everything the client may want to toast.
type CompletionResult struct {
	Progress         models.Progress `json:"progress"`
	AlreadyCompleted bool            `json:"alreadyCompleted"`
	LevelsGained     int             `json:"levelsGained"`
	NewBadges        []catalog.Badge `json:"newBadges"`
}

// LeveledUp reports whether the completion crossed at least one threshold.
func (r *CompletionResult) LeveledUp() bool {
	return r.LevelsGained > 0
}

// CompleteChallenge applies a challenge completion to the user's progression
// record. Replaying an already-completed challenge is a no-op (safe against
// duplicate client retries). The whole effect commits in a single
// version-gated UPDATE, so it either lands entirely or not at all.
func CompleteChallenge(userID string, challengeID int) (*CompletionResult, error) {
	challenge, ok := catalog.ChallengeByID(challengeID)
	if !ok {
		return nil, apperrors.ErrUnknownChallenge
	}

	var result *CompletionResult
	var err error
	for attempt := 0; attempt < completionRetries; attempt++ {
		result, err = applyCompletion(userID, challenge)
		if !errors.Is(err, apperrors.ErrConcurrencyConflict) {
			break
		}
	}
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		logger.Error().Err(err).Str("user_id", userID).Int("challenge_id", challengeID).
			Msg("Completion failed against storage")
		return nil, apperrors.ErrPersistenceUnavailable
	}

	if !result.AlreadyCompleted {
		// Ranking reads are eventually consistent; just drop the cached view.
		if cacheErr := database.CacheInvalidate("leaderboard:*"); cacheErr != nil {
			logger.Warn().Err(cacheErr).Msg("Failed to invalidate leaderboard cache")
		}
	}
	return result, nil
}

func applyCompletion(userID string, challenge catalog.Challenge) (*CompletionResult, error) {
	var progress models.Progress
	if err := database.DB.First(&progress, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	// Idempotent replay: membership is a one-way latch.
	if progress.CompletedChallengeIDs.Contains(challenge.ID) {
		return &CompletionResult{Progress: progress, AlreadyCompleted: true}, nil
	}

	progress.CompletedChallengeIDs = progress.CompletedChallengeIDs.Add(challenge.ID)
	progress.XP += challenge.Points
	if progress.CategoryXP == nil {
		progress.CategoryXP = models.CategoryXP{}
	}
	progress.CategoryXP[challenge.Category] += challenge.Points

	levelsGained := applyLeveling(&progress)
	newBadges := recomputeUnlocks(&progress)

	// Version-gated write: a concurrent completion for the same user that
	// committed since our read makes RowsAffected 0, and we retry from a
	// fresh read instead of losing its update.
	readVersion := progress.Version
	progress.Version++
	res := database.DB.Model(&models.Progress{}).
		Where("user_id = ? AND version = ?", userID, readVersion).
		Updates(map[string]interface{}{
			"xp":                      progress.XP,
			"level":                   progress.Level,
			"max_xp":                  progress.MaxXP,
			"completed_challenge_ids": progress.CompletedChallengeIDs,
			"category_xp":             progress.CategoryXP,
			"unlocked_badge_ids":      progress.UnlockedBadgeIDs,
			"version":                 progress.Version,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrConcurrencyConflict
	}

	return &CompletionResult{
		Progress:     progress,
		LevelsGained: levelsGained,
		NewBadges:    newBadges,
	}, nil
}

// applyLeveling runs the threshold recurrence until it no longer fires.
// A single completion can span several level-ups, hence the loop. XP is
// cumulative and never reduced; only the watermark moves.
func applyLeveling(p *models.Progress) int {
	gained := 0
	for p.XP >= p.MaxXP {
		p.Level++
		p.MaxXP = p.MaxXP*2 + 100
		gained++
	}
	return gained
}

// GetProgress returns a user's progression record. Reads go straight to the
// database so a user always sees their own just-applied completion.
func GetProgress(userID string) (*models.Progress, error) {
	var progress models.Progress
	if err := database.DB.First(&progress, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &progress, nil
}
