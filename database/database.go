package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/techmaster-vietnam/blogos/config"
	"github.com/techmaster-vietnam/blogos/models"
	"github.com/techmaster-vietnam/goerrorkit"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// DSN builds the postgres connection string
func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode)
}

// Open connects to postgres via gorm
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{})
	if err != nil {
		return nil, goerrorkit.NewSystemError(err).WithData(map[string]interface{}{
			"host":     cfg.Host,
			"port":     cfg.Port,
			"user":     cfg.User,
			"database": cfg.Name,
			"sslmode":  cfg.SSLMode,
		})
	}
	return db, nil
}

// Migrate runs gorm AutoMigrate for blogos models
// Dùng cho môi trường dev; production dùng RunMigrations
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Blogger{},
		&models.Category{},
		&models.Label{},
		&models.Blog{},
	)
}

// RunMigrations applies the embedded SQL migrations using golang-migrate
func RunMigrations(db *gorm.DB, dbName string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return goerrorkit.WrapWithMessage(err, "Failed to get underlying sql.DB from GORM")
	}

	driver, err := pgmigrate.WithInstance(sqlDB, &pgmigrate.Config{
		DatabaseName: dbName,
	})
	if err != nil {
		return goerrorkit.WrapWithMessage(err, "Failed to create postgres driver for migrations")
	}

	sourceDriver, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return goerrorkit.WrapWithMessage(err, "Failed to create embedded source driver")
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		return goerrorkit.WrapWithMessage(err, "Failed to create migrate instance")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return goerrorkit.WrapWithMessage(err, "Failed to run migrations").WithData(map[string]interface{}{
			"database": dbName,
		})
	}

	return nil
}
