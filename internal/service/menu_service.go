package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/HilmiTuncay/yemek-siparis/internal/domain"
)

type MenuService struct {
	repo MenuRepository
	now  func() time.Time
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo, now: time.Now}
}

// GetMenu returns the stored menu, seeding and persisting the default catalog
// on first access.
func (s *MenuService) GetMenu(ctx context.Context) (*domain.Menu, error) {
	menu, err := s.repo.GetMenu(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	if menu != nil {
		return menu, nil
	}

	seeded := domain.DefaultMenu()
	seeded.UpdatedAt = s.now().UnixMilli()
	if err := s.repo.SaveMenu(ctx, &seeded); err != nil {
		// Serve the default even if seeding failed; the next access retries.
		log.Printf("Warning: failed to seed default menu: %v", err)
	}
	return &seeded, nil
}

// SaveMenu validates and stores a full replacement catalog, stamping
// updatedAt. Concurrent edits are last-write-wins.
func (s *MenuService) SaveMenu(ctx context.Context, menu *domain.Menu) error {
	if err := menu.Validate(); err != nil {
		return err
	}
	menu.UpdatedAt = s.now().UnixMilli()
	if err := s.repo.SaveMenu(ctx, menu); err != nil {
		return fmt.Errorf("failed to save menu: %w", err)
	}
	return nil
}

// ResetMenu restores the default catalog.
func (s *MenuService) ResetMenu(ctx context.Context) (*domain.Menu, error) {
	menu := domain.DefaultMenu()
	menu.UpdatedAt = s.now().UnixMilli()
	if err := s.repo.SaveMenu(ctx, &menu); err != nil {
		return nil, fmt.Errorf("failed to reset menu: %w", err)
	}
	return &menu, nil
}
