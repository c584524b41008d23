package service

import (
	"context"
	"fmt"
	"time"

	"github.com/HilmiTuncay/yemek-siparis/internal/domain"
)

type StatusService struct {
	repo StatusRepository
	now  func() time.Time
}

func NewStatusService(repo StatusRepository) *StatusService {
	return &StatusService{repo: repo, now: time.Now}
}

// GetStatus returns the global order-taking flag; an unset document means open.
func (s *StatusService) GetStatus(ctx context.Context) (domain.SystemStatus, error) {
	status, err := s.repo.GetStatus(ctx)
	if err != nil {
		return domain.SystemStatus{}, fmt.Errorf("failed to load order status: %w", err)
	}
	if status == nil {
		return domain.SystemStatus{IsOpen: true}, nil
	}
	return *status, nil
}

// SetOpen flips order taking on or off, stamping closedAt when closing.
func (s *StatusService) SetOpen(ctx context.Context, isOpen bool) (domain.SystemStatus, error) {
	status := domain.SystemStatus{IsOpen: isOpen}
	if !isOpen {
		status.ClosedAt = s.now().UnixMilli()
	}
	if err := s.repo.SaveStatus(ctx, status); err != nil {
		return domain.SystemStatus{}, fmt.Errorf("failed to save order status: %w", err)
	}
	return status, nil
}
