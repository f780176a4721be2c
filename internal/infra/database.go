package infra

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"paceline/internal/models/db_models"
)

// InitDatabase opens Postgres when POSTGRES_URL or DATABASE_URL is set and
// falls back to a local SQLite file for development.
func InitDatabase() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}

	var (
		db  *gorm.DB
		err error
	)
	if dsn != "" {
		// Some hosts hand out postgres:// URLs.
		dsn = strings.Replace(dsn, "postgres://", "postgresql://", 1)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		path := filepath.Join("data", "paceline.db")
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			log.Fatalf("Error creating data directory: %v", mkErr)
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.TrainingPlan{},
		&db_models.PlannedWorkout{},
		&db_models.ActualRun{},
		&db_models.RunSplit{},
		&db_models.RunWeather{},
		&db_models.RunNote{},
	)
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
