package infra

import (
	"os"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"recyclemart/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	// TranslateError maps the driver's unique-violation onto
	// gorm.ErrDuplicatedKey, which the idempotent create paths rely on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Category{},
		&db_models.Product{},
		&db_models.Booking{},
		&db_models.Wishlist{},
		&db_models.Payment{},
	); err != nil {
		log.Fatal().Err(err).Msg("error migrating database schema")
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("error getting database instance")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("error closing database connection")
	}
}
