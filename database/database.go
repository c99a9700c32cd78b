// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"fmt"     // Error wrapping
	"strings" // Log level parsing

	"go-campus-backend/models" // Persisted records

	"github.com/rs/zerolog"          // Structured logging
	"gorm.io/driver/mysql"           // MySQL driver for production
	"gorm.io/driver/sqlite"          // SQLite driver for local runs and tests
	"gorm.io/gorm"                   // GORM ORM
	gormlogger "gorm.io/gorm/logger" // Quiet GORM's own logger
)

// Open connects with the configured dialect. TranslateError turns unique
// index violations into gorm.ErrDuplicatedKey for both drivers.
func Open(driver, dsn string, log zerolog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(driver) {
	case "sqlite":
		dialector = sqlite.Open(dsn) // Open SQLite DB
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil { // If error, return it
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	log.Info().Str("driver", driver).Msg("database connected")
	return db, nil
}

// Migrate creates or updates the tables for every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Connect opens the database and runs migrations
func Connect(driver, dsn string, log zerolog.Logger) (*gorm.DB, error) {
	db, err := Open(driver, dsn, log)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
