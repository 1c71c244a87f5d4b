package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or alters the tables for models. It only adds; columns and
// indexes that are no longer declared are left in place.
func Migrate(ctx context.Context, gdb *gorm.DB, models ...interface{}) error {
	if err := gdb.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
