package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/patiponrmutl/TutorDesk/config"
	"github.com/patiponrmutl/TutorDesk/logging"
	"github.com/patiponrmutl/TutorDesk/models"
)

// Connect opens the datastore and ensures the schema, exiting the process on
// failure. Nothing can be served without the five tables.
func Connect(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("failed to connect database")
	}
	if err := EnsureSchema(db); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}
	return db
}

// Open returns a gorm handle for the configured driver without touching the
// schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DBPath)
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	level := gormLogger.Warn
	if cfg.LogLevel == "debug" || cfg.LogLevel == "trace" {
		level = gormLogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logging.NewGormLogger(level),
	})
	if err != nil {
		return nil, err
	}

	if cfg.DBDriver != "postgres" {
		// one writer at a time on a single sqlite file
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// EnsureSchema creates any of the five tables that do not exist yet. Existing
// tables are left exactly as they are, so it is safe on every start.
func EnsureSchema(db *gorm.DB) error {
	m := db.Migrator()
	for _, model := range models.All() {
		if m.HasTable(model) {
			continue
		}
		if err := m.CreateTable(model); err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
		log.Info().Str(logging.COMPONENT, "database").Msgf("created table for %T", model)
	}
	return nil
}
