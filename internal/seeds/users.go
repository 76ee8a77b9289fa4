package seeds

import (
	"log"

	"github.com/Ruby-dev1/AIgnite/internal/catalog"
	"github.com/Ruby-dev1/AIgnite/internal/database"
	"github.com/Ruby-dev1/AIgnite/internal/models"
	"github.com/Ruby-dev1/AIgnite/internal/services"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type demoUser struct {
	Name       string
	Email      string
	Bio        string
	Completed  []int
	Onboarding bool
}

// SeedDemoUsers creates a handful of accounts with real progression state so
// a fresh environment has a populated leaderboard. Completions run through
// the same service path as production traffic, so levels, category XP and
// badge unlocks all come out of the real recurrence.
func SeedDemoUsers() {
	log.Println("Seeding demo users...")

	demos := []demoUser{
		{
			Name:      "Aisha Kapoor",
			Email:     "aisha@demo.aignite.dev",
			Bio:       "Future engineer, current debugger of everything.",
			Completed: []int{1, 2, 3, 17, 5},
		},
		{
			Name:      "Marcus Lee",
			Email:     "marcus@demo.aignite.dev",
			Bio:       "Business track, pitch first and ask questions later.",
			Completed: []int{7, 8, 9, 18, 19},
		},
		{
			Name:      "Sofia Reyes",
			Email:     "sofia@demo.aignite.dev",
			Bio:       "Design and arts, chasing the perfect palette.",
			Completed: []int{10, 11, 13, 14},
		},
		{
			Name:      "Tom Okafor",
			Email:     "tom@demo.aignite.dev",
			Bio:       "Just getting started.",
			Completed: []int{4},
		},
	}

	for _, demo := range demos {
		var existing models.User
		if err := database.DB.Where("email = ?", demo.Email).First(&existing).Error; err == nil {
			log.Printf("   Demo user exists: %s", demo.Email)
			continue
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte("AigniteDemo1"), bcrypt.DefaultCost)
		user := models.User{
			ID:                  uuid.New().String(),
			Name:                demo.Name,
			Email:               demo.Email,
			Bio:                 demo.Bio,
			Password:            string(hash),
			OnboardingCompleted: true,
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			progress := models.NewProgress(user.ID)
			return tx.Create(&progress).Error
		})
		if err != nil {
			log.Printf("   Failed to seed %s: %v", demo.Email, err)
			continue
		}

		for _, challengeID := range demo.Completed {
			if _, ok := catalog.ChallengeByID(challengeID); !ok {
				log.Printf("   Skipping unknown challenge %d for %s", challengeID, demo.Email)
				continue
			}
			if _, err := services.CompleteChallenge(user.ID, challengeID); err != nil {
				log.Printf("   Failed completion %d for %s: %v", challengeID, demo.Email, err)
			}
		}

		log.Printf("   Seeded demo user: %s (%d completions)", demo.Email, len(demo.Completed))
	}
}
