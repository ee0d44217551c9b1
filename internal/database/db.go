package database

import (
	"os"
	"time"

	"girvi-backend/internal/logging"
	"girvi-backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the MySQL connection from DB_DSN and syncs the schema.
// A missing DSN is fatal; the shop cannot run without its store.
func Connect() {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		logging.GetLogger().Fatal("DB_DSN not set; configure the database connection in .env")
	}

	var err error
	for i := 0; i < 5; i++ {
		DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		})
		if err == nil {
			break
		}
		logging.GetLogger().Warnf("database not ready, retrying in 2s (%d/5)", i+1)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		logging.GetLogger().Fatalf("failed to connect to database after 5 attempts: %v", err)
	}

	logging.GetLogger().Info("connected to MySQL")

	if err := Migrate(DB); err != nil {
		logging.GetLogger().Fatalf("schema migration failed: %v", err)
	}
	logging.GetLogger().Info("database schema synced")
}

// Migrate runs AutoMigrate for every model. Split out so tests can run
// it against their own (sqlite) connection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Firm{},
		&models.Customer{},
		&models.StockCategory{},
		&models.Stock{},
		&models.RawMaterial{},
		&models.DailyRate{},
		&models.Girvi{},
		&models.Sale{},
		&models.Udhar{},
		&models.UdharSettlement{},
		&models.Payment{},
	)
}
