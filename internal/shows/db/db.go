package db

import (
	"context"

	"github.com/uptrace/bun"

	"theatre-booking/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// ListPerformances returns every scheduled performance with its production
// title, ordered by start time ascending.
func (d *DB) ListPerformances(ctx context.Context) ([]models.PerformanceListing, error) {
	var rows []models.PerformanceListing
	err := d.Bun.NewSelect().
		ColumnExpr("performances.id AS id").
		ColumnExpr("productions.title AS title").
		ColumnExpr("performances.starts_at AS starts_at").
		ColumnExpr("performances.hall AS hall").
		Table("performances").
		Join("JOIN productions ON productions.id = performances.production_id").
		OrderExpr("performances.starts_at ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
