package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/HilmiTuncay/yemek-siparis/internal/domain"
	"github.com/HilmiTuncay/yemek-siparis/internal/pricing"
	"github.com/HilmiTuncay/yemek-siparis/internal/reporting"
)

var (
	ErrOrdersClosed      = errors.New("orders are currently closed")
	ErrMissingName       = errors.New("customer name is required")
	ErrEmptyCart         = errors.New("order must contain at least one item")
	ErrRestaurantClosed  = errors.New("restaurant is not taking orders")
	ErrUnknownRestaurant = errors.New("restaurant does not exist")
	ErrUnknownProduct    = errors.New("product does not exist")
)

// OrderItemRequest is one requested line item: the product plus the chosen
// portion and modifiers. Prices are never taken from the client.
type OrderItemRequest struct {
	RestaurantID string `json:"restaurantId"`
	ProductID    string `json:"productId"`
	pricing.SelectionRequest
}

type OrderRequest struct {
	CustomerName  string               `json:"customerName"`
	Items         []OrderItemRequest   `json:"items"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
}

type OrderService struct {
	orders    OrderRepository
	menus     MenuRepository
	status    StatusRepository
	publisher OrderPublisher
	now       func() time.Time
}

// NewOrderService wires the order flow. publisher may be nil, in which case
// no events are emitted.
func NewOrderService(orders OrderRepository, menus MenuRepository, status StatusRepository, publisher OrderPublisher) *OrderService {
	return &OrderService{
		orders:    orders,
		menus:     menus,
		status:    status,
		publisher: publisher,
		now:       time.Now,
	}
}

// Submit validates, prices and stores one order. Items are rebuilt from the
// current menu through the selection builder, then accumulated in a cart so a
// product repeated in the request replaces rather than duplicates.
func (s *OrderService) Submit(ctx context.Context, req OrderRequest) (domain.Order, error) {
	status, err := s.status.GetStatus(ctx)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to load order status: %w", err)
	}
	if status != nil && !status.IsOpen {
		return domain.Order{}, ErrOrdersClosed
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return domain.Order{}, ErrMissingName
	}
	if len(req.Items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	menu, err := s.menus.GetMenu(ctx)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to load menu: %w", err)
	}
	if menu == nil {
		seeded := domain.DefaultMenu()
		menu = &seeded
	}

	cart := pricing.NewCart()
	for _, item := range req.Items {
		restaurant := menu.RestaurantByID(item.RestaurantID)
		if restaurant == nil {
			return domain.Order{}, fmt.Errorf("%w: %s", ErrUnknownRestaurant, item.RestaurantID)
		}
		if !restaurant.Open() {
			return domain.Order{}, fmt.Errorf("%w: %s", ErrRestaurantClosed, restaurant.Name)
		}
		product := restaurant.ProductByID(item.ProductID)
		if product == nil {
			return domain.Order{}, fmt.Errorf("%w: %s", ErrUnknownProduct, item.ProductID)
		}
		sel, err := pricing.BuildSelection(menu, restaurant, product, item.SelectionRequest)
		if err != nil {
			return domain.Order{}, err
		}
		cart.Add(sel)
	}

	order := domain.Order{
		ID:            uuid.New().String(),
		CustomerName:  name,
		Items:         cart.Flatten(),
		TotalPrice:    cart.GrandTotal(),
		CreatedAt:     s.now().UnixMilli(),
		PaymentStatus: normalizePayment(req.PaymentStatus),
	}

	if err := s.orders.AppendOrder(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("failed to store order: %w", err)
	}

	s.publish(ctx, "order_created", order)
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListOrders(ctx)
}

// OrdersByCustomer returns the orders whose customer name matches
// case-insensitively after trimming.
func (s *OrderService) OrdersByCustomer(ctx context.Context, name string) ([]domain.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	mine := make([]domain.Order, 0)
	for _, o := range orders {
		if strings.EqualFold(strings.TrimSpace(o.CustomerName), name) {
			mine = append(mine, o)
		}
	}
	return mine, nil
}

// CancelOrder is the customer-facing delete: it is refused while order taking
// is closed. Returns false when the order no longer exists, which is a normal
// outcome once orders expire.
func (s *OrderService) CancelOrder(ctx context.Context, id string) (bool, error) {
	status, err := s.status.GetStatus(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load order status: %w", err)
	}
	if status != nil && !status.IsOpen {
		return false, ErrOrdersClosed
	}
	return s.DeleteOrder(ctx, id)
}

// DeleteOrder removes one order unconditionally (admin flow).
func (s *OrderService) DeleteOrder(ctx context.Context, id string) (bool, error) {
	deleted, err := s.orders.DeleteOrder(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.publish(ctx, "order_deleted", domain.Order{ID: id})
	}
	return deleted, nil
}

func (s *OrderService) ClearOrders(ctx context.Context) error {
	return s.orders.ClearOrders(ctx)
}

// Summary recomputes the reporting views from the full order list.
func (s *OrderService) Summary(ctx context.Context) (reporting.Summary, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return reporting.Summary{}, err
	}
	return reporting.Summarize(orders), nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, order domain.Order) {
	if s.publisher == nil {
		return
	}
	event := domain.OrderEvent{
		Type:         eventType,
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		TotalPrice:   order.TotalPrice,
		Timestamp:    s.now().UnixMilli(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}

func normalizePayment(status domain.PaymentStatus) domain.PaymentStatus {
	switch status {
	case domain.PaymentPaid, domain.PaymentLater, domain.PaymentDoor:
		return status
	case "":
		return domain.PaymentLater
	default:
		// Preserved as-is; the reporter buckets it under "unknown".
		return status
	}
}
