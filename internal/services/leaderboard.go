package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ruby-dev1/AIgnite/internal/database"
	"github.com/Ruby-dev1/AIgnite/internal/models"
	apperrors "github.com/Ruby-dev1/AIgnite/pkg/errors"
	"github.com/Ruby-dev1/AIgnite/pkg/logger"
	"gorm.io/gorm"
)

// Ranking order, used identically by the top list and the absolute-rank
// path: XP descending, then earlier registration wins ties, then user id
// as a final total-order tiebreak.
const rankingOrder = "xp DESC, created_at ASC, user_id ASC"

const leaderboardTTL = 10 * time.Second

// LeaderboardEntry is a read-only ranking projection of one user's
// progression record. Never persisted; recomputed per query.
type LeaderboardEntry struct {
	Rank                int    `json:"rank"`
	UserID              string `json:"userId"`
	Name                string `json:"name"`
	Avatar              string `json:"avatar"`
	Level               int    `json:"level"`
	XP                  int    `json:"xp"`
	CompletedChallenges int    `json:"completedChallenges"`
	IsCurrentUser       bool   `json:"isCurrentUser"`
}

// LeaderboardView is the full response of one ranking query: the top slice,
// the viewer's own entry when resolvable, and the population size. All
// ranks within one view come from the same ordering; the view as a whole
// may lag concurrent completions.
type LeaderboardView struct {
	Entries    []LeaderboardEntry `json:"leaderboard"`
	Viewer     *LeaderboardEntry  `json:"currentUserRank"`
	TotalUsers int64              `json:"totalUsers"`
}

type cachedLeaderboard struct {
	Entries    []LeaderboardEntry `json:"entries"`
	TotalUsers int64              `json:"totalUsers"`
}

// GetLeaderboard returns the top `limit` users by XP with 1-based ranks.
// When viewerID is set, the viewer's entry is marked in the list, or
// absolute-ranked separately if they fall outside the top slice.
func GetLeaderboard(limit int, viewerID string) (*LeaderboardView, error) {
	if limit <= 0 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("leaderboard:top:%d", limit)

	var cached cachedLeaderboard
	if err := database.CacheGet(cacheKey, &cached); err == nil {
		return applyViewer(cached.Entries, cached.TotalUsers, viewerID)
	}

	var records []models.Progress
	if err := database.DB.Preload("User").
		Order(rankingOrder).
		Limit(limit).
		Find(&records).Error; err != nil {
		logger.Error().Err(err).Msg("Leaderboard query failed")
		return nil, apperrors.ErrPersistenceUnavailable
	}

	var total int64
	if err := database.DB.Model(&models.Progress{}).Count(&total).Error; err != nil {
		logger.Error().Err(err).Msg("Leaderboard count failed")
		return nil, apperrors.ErrPersistenceUnavailable
	}

	entries := make([]LeaderboardEntry, 0, len(records))
	for i, rec := range records {
		entries = append(entries, projectEntry(&rec, i+1))
	}

	if err := database.CacheSet(cacheKey, cachedLeaderboard{Entries: entries, TotalUsers: total}, leaderboardTTL); err != nil {
		logger.Warn().Err(err).Msg("Failed to cache leaderboard")
	}

	return applyViewer(entries, total, viewerID)
}

// applyViewer marks the viewer inside the top slice, or resolves their
// absolute rank when they are outside it. Viewer fields are applied after
// the cache so cached entries stay viewer-neutral.
func applyViewer(entries []LeaderboardEntry, total int64, viewerID string) (*LeaderboardView, error) {
	view := &LeaderboardView{
		Entries:    make([]LeaderboardEntry, len(entries)),
		TotalUsers: total,
	}
	copy(view.Entries, entries)

	if viewerID == "" {
		return view, nil
	}

	for i := range view.Entries {
		if view.Entries[i].UserID == viewerID {
			view.Entries[i].IsCurrentUser = true
			viewer := view.Entries[i]
			view.Viewer = &viewer
			return view, nil
		}
	}

	viewer, err := rankedEntry(viewerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// Anonymous or stale token: the list is still valid.
			return view, nil
		}
		return nil, err
	}
	view.Viewer = viewer
	return view, nil
}

// RankOf computes a user's absolute 1-based rank under the same ordering
// the top list uses, so the two paths can never disagree near ties.
func RankOf(userID string) (int, error) {
	entry, err := rankedEntry(userID)
	if err != nil {
		return 0, err
	}
	return entry.Rank, nil
}

func rankedEntry(userID string) (*LeaderboardEntry, error) {
	var progress models.Progress
	if err := database.DB.Preload("User").First(&progress, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("user_id", userID).Msg("Rank lookup failed")
		return nil, apperrors.ErrPersistenceUnavailable
	}

	// rank = 1 + number of records strictly ahead under the ranking order.
	var ahead int64
	err := database.DB.Model(&models.Progress{}).
		Where("xp > ? OR (xp = ? AND created_at < ?) OR (xp = ? AND created_at = ? AND user_id < ?)",
			progress.XP, progress.XP, progress.CreatedAt, progress.XP, progress.CreatedAt, progress.UserID).
		Count(&ahead).Error
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Rank count failed")
		return nil, apperrors.ErrPersistenceUnavailable
	}

	entry := projectEntry(&progress, int(ahead)+1)
	entry.IsCurrentUser = true
	return &entry, nil
}

func projectEntry(p *models.Progress, rank int) LeaderboardEntry {
	return LeaderboardEntry{
		Rank:                rank,
		UserID:              p.UserID,
		Name:                p.User.Name,
		Avatar:              p.User.Avatar,
		Level:               p.Level,
		XP:                  p.XP,
		CompletedChallenges: len(p.CompletedChallengeIDs),
	}
}
