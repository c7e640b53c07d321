package shows

import (
	"context"
	"fmt"

	"theatre-booking/internal/models"
)

type ShowDBLayer interface {
	ListPerformances(ctx context.Context) ([]models.PerformanceListing, error)
}

type Service struct {
	DB ShowDBLayer
}

func NewService(db ShowDBLayer) *Service {
	return &Service{DB: db}
}

// Schedule returns the performance listing shown on the dashboard.
func (s *Service) Schedule(ctx context.Context) ([]models.PerformanceListing, error) {
	rows, err := s.DB.ListPerformances(ctx)
	if err != nil {
		return nil, fmt.Errorf("list performances: %w", err)
	}
	return rows, nil
}
