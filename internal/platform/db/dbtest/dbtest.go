// Package dbtest opens a throwaway GORM handle for repository tests. Tests
// are skipped unless CLINIC_TEST_DATABASE_URL points at a PostgreSQL
// database the tests may truncate. Packages share the database, so run them
// with -p 1.
package dbtest

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/clinic/clinic/internal/platform/db"
)

const EnvURL = "CLINIC_TEST_DATABASE_URL"

// Open migrates models and empties their tables. The pool is closed when the
// test finishes.
func Open(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()
	url := os.Getenv(EnvURL)
	if url == "" {
		t.Skipf("%s not set", EnvURL)
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, url, 4, 1)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	gdb, err := db.Open(pool, zerolog.Nop(), "silent")
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	if err := db.Migrate(ctx, gdb, models...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	tables := make([]string, 0, len(models))
	for _, m := range models {
		stmt := &gorm.Statement{DB: gdb}
		if err := stmt.Parse(m); err != nil {
			t.Fatalf("parse model: %v", err)
		}
		tables = append(tables, stmt.Schema.Table)
	}
	if err := gdb.Exec("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return gdb
}
