package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"theatre-booking/internal/models"
)

// Open opens the sqlite store file. The file is created lazily by the driver;
// Ensure takes care of schema and seed data.
func Open(path string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, fmt.Sprintf("file:%s?cache=shared", path))
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	// sqlite allows a single writer; keeping one connection avoids
	// SQLITE_BUSY under concurrent handlers.
	sqldb.SetMaxOpenConns(1)

	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// OpenInMemory returns a store backed by an in-memory sqlite database.
// Used by tests.
func OpenInMemory() (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:?cache=shared")
	if err != nil {
		return nil, err
	}
	sqldb.SetMaxOpenConns(1)
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// Ensure creates the schema when missing and seeds reference data. Safe to
// call on every startup: table creation uses IF NOT EXISTS and seeding is
// keyed on existing rows.
func Ensure(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.User)(nil),
		(*models.Production)(nil),
		(*models.Performance)(nil),
		(*models.Request)(nil),
		(*models.AuthLogEntry)(nil),
	}
	for _, m := range tables {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table for %T: %w", m, err)
		}
	}

	return Seed(ctx, db)
}
