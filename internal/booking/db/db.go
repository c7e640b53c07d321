package db

import (
	"context"

	"github.com/uptrace/bun"

	"theatre-booking/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// CreateRequest inserts a new ticket request and populates the generated id
// on the model, so no follow-up select is needed.
func (d *DB) CreateRequest(ctx context.Context, req *models.Request) error {
	_, err := d.Bun.NewInsert().Model(req).Exec(ctx)
	return err
}

func (d *DB) GetRequestByID(ctx context.Context, id int64) (*models.Request, error) {
	var req models.Request
	err := d.Bun.NewSelect().
		Model(&req).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// RequestsByUser returns the user's own requests with show details, newest
// first.
func (d *DB) RequestsByUser(ctx context.Context, userID int64) ([]models.RequestSummary, error) {
	var rows []models.RequestSummary
	err := d.Bun.NewSelect().
		ColumnExpr("r.id AS id").
		ColumnExpr("productions.title AS title").
		ColumnExpr("performances.starts_at AS starts_at").
		ColumnExpr("r.qty AS qty").
		ColumnExpr("r.payment_method AS payment_method").
		ColumnExpr("r.status AS status").
		TableExpr("requests AS r").
		Join("JOIN performances ON performances.id = r.performance_id").
		Join("JOIN productions ON productions.id = performances.production_id").
		Where("r.user_id = ?", userID).
		OrderExpr("r.created_at DESC").
		OrderExpr("r.id DESC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AllRequests returns every request joined with requester and show details,
// newest first. A non-empty statusFilter restricts rows to that exact
// status.
func (d *DB) AllRequests(ctx context.Context, statusFilter string) ([]models.AdminRequestRow, error) {
	q := d.Bun.NewSelect().
		ColumnExpr("r.id AS id").
		ColumnExpr("r.qty AS qty").
		ColumnExpr("r.payment_method AS payment_method").
		ColumnExpr("r.status AS status").
		ColumnExpr("users.full_name AS full_name").
		ColumnExpr("users.email AS email").
		ColumnExpr("productions.title AS title").
		ColumnExpr("performances.starts_at AS starts_at").
		TableExpr("requests AS r").
		Join("JOIN users ON users.id = r.user_id").
		Join("JOIN performances ON performances.id = r.performance_id").
		Join("JOIN productions ON productions.id = performances.production_id")

	if statusFilter != "" {
		q = q.Where("r.status = ?", statusFilter)
	}

	var rows []models.AdminRequestRow
	err := q.
		OrderExpr("r.created_at DESC").
		OrderExpr("r.id DESC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SetStatus updates the request status unconditionally.
func (d *DB) SetStatus(ctx context.Context, requestID int64, status string) error {
	_, err := d.Bun.NewUpdate().
		Model((*models.Request)(nil)).
		Set("status = ?", status).
		Where("id = ?", requestID).
		Exec(ctx)
	return err
}
