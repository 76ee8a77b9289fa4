package database

import (
	"time"

	"github.com/Ruby-dev1/AIgnite/internal/config"
	applog "github.com/Ruby-dev1/AIgnite/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

const (
	maxOpenConns    = 25
	maxIdleConns    = 10
	connMaxLifetime = 5 * time.Minute
)

// Connect opens the PostgreSQL pool and stores it in DB. The seeder and the
// server both call this before touching any model.
func Connect() {
	db, err := gorm.Open(postgres.Open(config.AppConfig.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		applog.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		applog.Fatal().Err(err).Msg("Failed to get underlying sql.DB")
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	DB = db
	applog.Info().
		Int("max_open", maxOpenConns).
		Int("max_idle", maxIdleConns).
		Msg("Connected to PostgreSQL")
}
