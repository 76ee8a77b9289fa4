package services

import (
	"github.com/Ruby-dev1/AIgnite/internal/catalog"
	"github.com/Ruby-dev1/AIgnite/internal/models"
)

// recomputeUnlocks checks every still-locked badge against the completed
// set and latches the satisfied ones. Returns only the badges unlocked by
// this call, so a badge is reported as new exactly once. Unlocks never
// revert, even if a later catalog revision changed a requirement set.
func recomputeUnlocks(p *models.Progress) []catalog.Badge {
	var newlyUnlocked []catalog.Badge
	for _, badge := range catalog.Badges() {
		if p.UnlockedBadgeIDs.Contains(badge.ID) {
			continue
		}
		if p.CompletedChallengeIDs.ContainsAll(badge.RequiredChallengeIDs) {
			p.UnlockedBadgeIDs = p.UnlockedBadgeIDs.Add(badge.ID)
			newlyUnlocked = append(newlyUnlocked, badge)
		}
	}
	return newlyUnlocked
}

// BadgeStatus is one row of the profile badge showcase.
type BadgeStatus struct {
	catalog.Badge
	Unlocked              bool `json:"unlocked"`
	CompletedRequirements int  `json:"completedRequirements"`
	TotalRequirements     int  `json:"totalRequirements"`
}

// BadgeShowcase reports unlock state and per-badge requirement progress
// for every catalog badge.
func BadgeShowcase(p *models.Progress) []BadgeStatus {
	showcase := make([]BadgeStatus, 0, len(catalog.Badges()))
	for _, badge := range catalog.Badges() {
		completed := 0
		for _, id := range badge.RequiredChallengeIDs {
			if p.CompletedChallengeIDs.Contains(id) {
				completed++
			}
		}
		showcase = append(showcase, BadgeStatus{
			Badge:                 badge,
			Unlocked:              p.UnlockedBadgeIDs.Contains(badge.ID),
			CompletedRequirements: completed,
			TotalRequirements:     len(badge.RequiredChallengeIDs),
		})
	}
	return showcase
}
