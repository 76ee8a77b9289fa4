package main

import (
	"log"

	"github.com/Ruby-dev1/AIgnite/internal/config"
	"github.com/Ruby-dev1/AIgnite/internal/database"
	"github.com/Ruby-dev1/AIgnite/internal/models"
	"github.com/Ruby-dev1/AIgnite/internal/seeds"
	"github.com/Ruby-dev1/AIgnite/pkg/logger"
)

func main() {
	config.LoadConfig()
	logger.Init("development")

	database.Connect()
	database.InitRedis()

	if err := database.DB.AutoMigrate(&models.User{}, &models.Progress{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	seeds.SeedDemoUsers()

	log.Println("Seeding complete")
}
