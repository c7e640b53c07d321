package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"theatre-booking/internal/logger"
	"theatre-booking/internal/models"
)

// ErrUnknownStatus rejects a status transition to a value outside the
// enumerated set. The target row is left untouched.
var ErrUnknownStatus = errors.New("unknown request status")

type BookingDBLayer interface {
	CreateRequest(ctx context.Context, req *models.Request) error
	GetRequestByID(ctx context.Context, id int64) (*models.Request, error)
	RequestsByUser(ctx context.Context, userID int64) ([]models.RequestSummary, error)
	AllRequests(ctx context.Context, statusFilter string) ([]models.AdminRequestRow, error)
	SetStatus(ctx context.Context, requestID int64, status string) error
}

type Service struct {
	DB     BookingDBLayer
	Logger *logger.Logger
}

func NewService(db BookingDBLayer, log *logger.Logger) *Service {
	return &Service{DB: db, Logger: log}
}

// CreateRequest records a ticket request. New requests always start in
// status "new"; the caller cannot choose the status.
func (s *Service) CreateRequest(ctx context.Context, userID, performanceID int64, qty int, paymentMethod string) (*models.Request, error) {
	req := &models.Request{
		UserID:        userID,
		PerformanceID: performanceID,
		Qty:           qty,
		PaymentMethod: paymentMethod,
		Status:        models.StatusNew,
		CreatedAt:     time.Now(),
	}
	if err := s.DB.CreateRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	s.Logger.LogBooking("create", req.ID, fmt.Sprintf("user %d, performance %d, qty %d", userID, performanceID, qty))
	return req, nil
}

// RequestsForUser returns the user's own requests, newest first.
func (s *Service) RequestsForUser(ctx context.Context, userID int64) ([]models.RequestSummary, error) {
	rows, err := s.DB.RequestsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list requests for user %d: %w", userID, err)
	}
	return rows, nil
}

// ListRequests returns the admin review list, optionally filtered by an
// exact status match. Unknown filter values simply match nothing.
func (s *Service) ListRequests(ctx context.Context, statusFilter string) ([]models.AdminRequestRow, error) {
	rows, err := s.DB.AllRequests(ctx, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return rows, nil
}

// SetStatus transitions a request to the given status. All transitions
// between known statuses are permitted, including reopening a cancelled
// request; values outside the set are rejected with ErrUnknownStatus.
func (s *Service) SetStatus(ctx context.Context, requestID int64, status string) error {
	if !models.ValidStatus(status) {
		return ErrUnknownStatus
	}
	if err := s.DB.SetStatus(ctx, requestID, status); err != nil {
		return fmt.Errorf("set status of request %d: %w", requestID, err)
	}
	s.Logger.LogBooking("set-status", requestID, fmt.Sprintf("status set to %s", status))
	return nil
}
