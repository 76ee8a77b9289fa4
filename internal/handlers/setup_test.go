package handlers

import (
	"fmt"
	"testing"

	"github.com/Ruby-dev1/AIgnite/internal/config"
	"github.com/Ruby-dev1/AIgnite/internal/database"
	"github.com/Ruby-dev1/AIgnite/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest initializes an in-memory SQLite DB for handler tests, one
// schema per test name so tests stay isolated.
func setupTest(t *testing.T) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		JWTSecret: "test_secret_key_12345",
	}

	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", t.Name())
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
