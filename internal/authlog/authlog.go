// Package authlog stores the append-only audit trail of authentication
// actions (register, login, logout) for later forensic review.
package authlog

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"

	"theatre-booking/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// Append records one audit entry. Entries are never updated or deleted.
func (d *DB) Append(ctx context.Context, userID int64, action, ip, userAgent string) error {
	entry := models.AuthLogEntry{
		UserID:    sql.NullInt64{Int64: userID, Valid: userID != 0},
		Action:    action,
		IP:        ip,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}
	_, err := d.Bun.NewInsert().Model(&entry).Exec(ctx)
	return err
}

// Recent returns the newest audit entries, most recent first.
func (d *DB) Recent(ctx context.Context, limit int) ([]models.AuthLogEntry, error) {
	var entries []models.AuthLogEntry
	err := d.Bun.NewSelect().
		Model(&entries).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
