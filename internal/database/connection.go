// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/medlavka/storefront/internal/config"
	"github.com/medlavka/storefront/internal/models"
	"github.com/medlavka/storefront/internal/store"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(&models.Book{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createChangeTrigger(db); err != nil {
		return fmt.Errorf("failed to create change trigger: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// createChangeTrigger installs the row trigger that notifies subscribers of
// catalog changes. Only the event type and the row id go into the payload:
// NOTIFY caps payloads well below the size of an inline cover image, so
// listeners refetch the row.
func createChangeTrigger(db *gorm.DB) error {
	fn := fmt.Sprintf(`
CREATE OR REPLACE FUNCTION notify_books_changes() RETURNS trigger AS $$
BEGIN
	IF TG_OP = 'DELETE' THEN
		PERFORM pg_notify('%s', json_build_object('event', TG_OP, 'id', OLD.id)::text);
		RETURN OLD;
	END IF;
	PERFORM pg_notify('%s', json_build_object('event', TG_OP, 'id', NEW.id)::text);
	RETURN NEW;
END;
$$ LANGUAGE plpgsql`, store.NotifyChannel, store.NotifyChannel)

	if err := db.Exec(fn).Error; err != nil {
		return err
	}

	stmts := []string{
		"DROP TRIGGER IF EXISTS books_changes_trigger ON books",
		`CREATE TRIGGER books_changes_trigger
			AFTER INSERT OR UPDATE OR DELETE ON books
			FOR EACH ROW EXECUTE FUNCTION notify_books_changes()`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedInitialData inserts the default catalog on an empty table.
func SeedInitialData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Book{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count books: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding default catalog...")
	for _, book := range models.DefaultBooks() {
		b := book
		if err := db.Create(&b).Error; err != nil {
			return fmt.Errorf("failed to seed book %q: %w", book.ID, err)
		}
	}
	return nil
}
