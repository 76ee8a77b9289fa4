package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name   string `json:"name"`
	Email  string `gorm:"uniqueIndex" json:"email"`
	Bio    string `gorm:"default:'Self-driven learner exploring the future of work.'" json:"bio"`
	Role   string `gorm:"default:'High School Senior'" json:"role"`
	Avatar string `json:"avatar"`

	Skills    StringList `gorm:"type:text" json:"skills"`
	Interests StringList `gorm:"type:text" json:"interests"`

	OnboardingCompleted bool   `gorm:"default:false" json:"onboardingCompleted"`
	PrimaryCareer       string `json:"primaryCareer"`

	Password string `json:"-"`
}
