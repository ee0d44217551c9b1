package main

import (
	"os"
	"time"

	"girvi-backend/internal/cache"
	"girvi-backend/internal/database"
	"girvi-backend/internal/logging"
	"girvi-backend/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logging.GetLogger().Warn("no .env file found")
	}

	if os.Getenv("JWT_SECRET") == "" {
		logging.GetLogger().Fatal("JWT_SECRET not set; refusing to issue unsigned tokens")
	}

	database.Connect()

	// Cache for the today-rate lookup; rates change at most once a day
	rateCache := cache.New(64, 5*time.Minute)

	r := router.New(rateCache)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logging.GetLogger().Infof("server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		logging.GetLogger().Fatalf("server failed to start: %v", err)
	}
}
