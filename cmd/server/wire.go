//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"corchet/web-api/internal/config"
	domain "corchet/web-api/internal/domain/message"
	"corchet/web-api/internal/infrastructure/database"
	"corchet/web-api/internal/infrastructure/logger"
	repo "corchet/web-api/internal/infrastructure/repository/message"
	"corchet/web-api/internal/interfaces/httpserver"
)

var messageSet = wire.NewSet(
	repo.NewSqliteRepository,
	wire.Bind(new(domain.Repository), new(*repo.SqliteRepository)),
	domain.NewService,
)

// BuildApplication assembles the website service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		messageSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	gormLevel := gormlogger.Warn
	if cfg.Debug {
		gormLevel = gormlogger.Info
	}
	return database.Config{
		Path:            cfg.DatabasePath,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormLevel,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}
