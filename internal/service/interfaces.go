package service

import (
	"context"

	"github.com/HilmiTuncay/yemek-siparis/internal/domain"
	"github.com/HilmiTuncay/yemek-siparis/internal/reporting"
)

type MenuRepository interface {
	GetMenu(ctx context.Context) (*domain.Menu, error)
	SaveMenu(ctx context.Context, menu *domain.Menu) error
}

type OrderRepository interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	AppendOrder(ctx context.Context, order domain.Order) error
	DeleteOrder(ctx context.Context, id string) (bool, error)
	ClearOrders(ctx context.Context) error
}

type StatusRepository interface {
	GetStatus(ctx context.Context) (*domain.SystemStatus, error)
	SaveStatus(ctx context.Context, status domain.SystemStatus) error
}

type SuggestionRepository interface {
	ListSuggestions(ctx context.Context) ([]domain.Suggestion, error)
	SaveSuggestions(ctx context.Context, suggestions []domain.Suggestion) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type OrderServiceInterface interface {
	Submit(ctx context.Context, req OrderRequest) (domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	OrdersByCustomer(ctx context.Context, name string) ([]domain.Order, error)
	CancelOrder(ctx context.Context, id string) (bool, error)
	DeleteOrder(ctx context.Context, id string) (bool, error)
	ClearOrders(ctx context.Context) error
	Summary(ctx context.Context) (reporting.Summary, error)
	PaymentQR(ctx context.Context, restaurantID string) ([]byte, error)
}

type MenuServiceInterface interface {
	GetMenu(ctx context.Context) (*domain.Menu, error)
	SaveMenu(ctx context.Context, menu *domain.Menu) error
	ResetMenu(ctx context.Context) (*domain.Menu, error)
}

type StatusServiceInterface interface {
	GetStatus(ctx context.Context) (domain.SystemStatus, error)
	SetOpen(ctx context.Context, isOpen bool) (domain.SystemStatus, error)
}

type SuggestionServiceInterface interface {
	ListSuggestions(ctx context.Context) ([]domain.Suggestion, error)
	AddSuggestion(ctx context.Context, req SuggestionRequest) (domain.Suggestion, error)
	ToggleVote(ctx context.Context, suggestionID, voterName string) (bool, error)
	DeleteSuggestion(ctx context.Context, id string) (bool, error)
}

var (
	_ OrderServiceInterface      = (*OrderService)(nil)
	_ MenuServiceInterface       = (*MenuService)(nil)
	_ StatusServiceInterface     = (*StatusService)(nil)
	_ SuggestionServiceInterface = (*SuggestionService)(nil)
)
