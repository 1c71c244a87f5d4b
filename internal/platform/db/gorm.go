package db

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open binds GORM to an existing pgx pool. Closing the pool closes the
// returned handle's connections as well.
func Open(pool *pgxpool.Pool, logger zerolog.Logger, level string) (*gorm.DB, error) {
	sqlDB := stdlib.OpenDBFromPool(pool)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: NewGormLogger(logger, ParseLogLevel(level)),
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	return gdb, nil
}
