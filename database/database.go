package database

import (
	"fmt"
	"log"
	"strings"
	"time"

	"timetrack/config"
	"timetrack/models"
	"timetrack/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func ConnectDatabase(cfg *config.Config) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		cfg.DbHost,
		cfg.DbPort,
		cfg.DbUser,
		cfg.DbPass,
		cfg.DbName,
		cfg.DbSslMode,
		cfg.DbTz,
	)

	// Configure GORM logger based on environment
	gormLogger := logger.Default
	if cfg.Env == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	maxRetries := 5
	retryInterval := time.Second * 10

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		var err error
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormLogger,
		})

		if err == nil {
			sqlDB, err := DB.DB()

			if err == nil {
				err = sqlDB.Ping()
				if err == nil {
					// Set connection pool settings
					sqlDB.SetMaxIdleConns(10)
					sqlDB.SetMaxOpenConns(100)
					sqlDB.SetConnMaxLifetime(time.Hour)

					log.Println("Database connection established.")
					return nil
				}
				log.Printf("x Database ping failed: %v", err)
			} else {
				log.Printf("x Failed to get database instance: %v", err)
			}
		} else {
			log.Printf("x Failed to connect to database: %v", err)
		}

		if attempt < maxRetries {
			log.Printf("Retrying in %s...", retryInterval)
			time.Sleep(retryInterval)
		}

	}

	return fmt.Errorf("failed to connect to database after %d attempts", maxRetries)
}

// MigrateDatabase performs automatic migration of database schemas
func MigrateDatabase() error {
	log.Println("Starting database migration...")

	err := DB.AutoMigrate(
		&models.Store{},
		&models.Yubikey{},
		&models.InventoryItem{},
		&models.InventorySnapshot{},
		&models.Employee{},
		&models.TimeclockEntry{},
		&models.EodReport{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedInitialStores creates the two original locations on an empty
// database so a fresh deployment has something to log into.
func SeedInitialStores() error {
	var count int64
	if err := DB.Model(&models.Store{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding default stores...")

	for _, name := range []string{"Lawrence", "Oakville"} {
		username := strings.ReplaceAll(strings.ToLower(name), " ", "")
		// Default password follows the original convention until the
		// manager rotates it.
		hashed, err := utils.HashPassword(username + "123")
		if err != nil {
			return err
		}

		store := models.Store{
			Name:       name,
			Username:   username,
			Password:   hashed,
			TotalBoxes: 0,
		}
		if err := DB.Create(&store).Error; err != nil {
			return fmt.Errorf("failed to seed store %s: %w", name, err)
		}
		items := models.DefaultInventoryItems(name)
		if err := DB.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to seed inventory for %s: %w", name, err)
		}
	}

	log.Println("Default stores seeded")
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
