package database

import (
	"fmt"
	"strings"

	"github.com/yukikurage/task-manager-api/internal/config"
	"github.com/yukikurage/task-manager-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a GORM connection for the configured driver.
func Connect(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// SQLite allows a single writer; serialize access through one connection.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info("database connection established", zap.String("driver", cfg.Driver))
	return db, nil
}

// Dialector builds the GORM dialector for cfg without opening a connection.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	dsn := cfg.DSN
	switch cfg.Driver {
	case "mysql":
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				cfg.User,
				cfg.Password,
				cfg.Host,
				cfg.Port,
				cfg.Name,
			)
		}
		return mysql.Open(dsn), nil
	case "postgres":
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
				cfg.Host,
				cfg.Port,
				cfg.User,
				cfg.Password,
				cfg.Name,
			)
		}
		return postgres.Open(dsn), nil
	case "sqlite":
		if dsn == "" {
			dsn = cfg.Name
		}
		return sqlite.Open(SQLiteDSN(dsn)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// SQLiteDSN makes sure foreign key enforcement is switched on, which SQLite
// leaves off by default.
func SQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running database migrations")
	err := db.AutoMigrate(
		&models.User{},
		&models.TaskStatus{},
		&models.Label{},
		&models.Task{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := AddIndexes(db, log); err != nil {
		return err
	}

	log.Info("database migrations completed")
	return nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
