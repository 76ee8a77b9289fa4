package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Ruby-dev1/AIgnite/internal/database"
	"github.com/Ruby-dev1/AIgnite/internal/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB initializes an in-memory SQLite DB, one schema per test name
// so tests don't bleed into each other. A single connection serializes
// statements; goroutines still interleave between read and write, which is
// exactly what the optimistic version check has to survive.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Progress{}); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	database.DB = db
	database.Redis = nil
	return db
}

func createTestUser(t *testing.T, name string) models.User {
	t.Helper()

	user := models.User{
		ID:    uuid.New().String(),
		Name:  name,
		Email: fmt.Sprintf("%s@test.dev", uuid.New().String()[:8]),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	progress := models.NewProgress(user.ID)
	if err := database.DB.Create(&progress).Error; err != nil {
		t.Fatalf("Failed to create progress: %v", err)
	}
	return user
}

// createRankedUser seeds a user whose progression is written directly, for
// leaderboard fixtures where exact XP and creation times matter.
func createRankedUser(t *testing.T, name string, xp int, createdAt time.Time) models.User {
	t.Helper()

	user := createTestUser(t, name)
	err := database.DB.Model(&models.Progress{}).
		Where("user_id = ?", user.ID).
		Updates(map[string]interface{}{"xp": xp, "created_at": createdAt}).Error
	if err != nil {
		t.Fatalf("Failed to set xp for %s: %v", name, err)
	}
	return user
}
