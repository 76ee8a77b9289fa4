package models

import (
	"time"
)

// Progress is the progression record: one row per user, created during
// registration and mutated only by the completion flow.
//
// MaxXP is the cumulative-XP watermark for the next level-up. It is stored
// state, not a function of Level: the threshold recurrence (maxXp*2 + 100)
// depends on the prior threshold, and XP is lifetime-cumulative, never
// reset by a level-up.
type Progress struct {
	UserID    string    `gorm:"primaryKey;type:text" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Level int `gorm:"default:1" json:"level"`
	XP    int `gorm:"default:0" json:"xp"`
	MaxXP int `gorm:"column:max_xp;default:1000" json:"maxXp"`

	CompletedChallengeIDs IntSet     `gorm:"type:text" json:"completedChallengeIds"`
	CategoryXP            CategoryXP `gorm:"type:text" json:"categoryXp"`
	UnlockedBadgeIDs      IntSet     `gorm:"type:text" json:"unlockedBadgeIds"`

	// Version guards read-modify-write cycles: every committed completion
	// bumps it, and updates are gated on the value read.
	Version int `gorm:"default:0" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// NewProgress seeds a fresh record for a just-registered user.
func NewProgress(userID string) Progress {
	return Progress{
		UserID:                userID,
		Level:                 1,
		XP:                    0,
		MaxXP:                 1000,
		CompletedChallengeIDs: IntSet{},
		CategoryXP:            CategoryXP{},
		UnlockedBadgeIDs:      IntSet{},
	}
}
