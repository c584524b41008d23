package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/HilmiTuncay/yemek-siparis/internal/domain"
	"github.com/HilmiTuncay/yemek-siparis/internal/reporting"
	"github.com/HilmiTuncay/yemek-siparis/internal/service"
)

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderServiceInterface) Submit(ctx context.Context, req service.OrderRequest) (domain.Order, error) {
	args := m.Called(ctx, req)
	order, _ := args.Get(0).(domain.Order)
	return order, args.Error(1)
}

func (m *OrderServiceInterface) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]domain.Order)
	return orders, args.Error(1)
}

func (m *OrderServiceInterface) OrdersByCustomer(ctx context.Context, name string) ([]domain.Order, error) {
	args := m.Called(ctx, name)
	orders, _ := args.Get(0).([]domain.Order)
	return orders, args.Error(1)
}

func (m *OrderServiceInterface) CancelOrder(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *OrderServiceInterface) DeleteOrder(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *OrderServiceInterface) ClearOrders(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *OrderServiceInterface) Summary(ctx context.Context) (reporting.Summary, error) {
	args := m.Called(ctx)
	summary, _ := args.Get(0).(reporting.Summary)
	return summary, args.Error(1)
}

func (m *OrderServiceInterface) PaymentQR(ctx context.Context, restaurantID string) ([]byte, error) {
	args := m.Called(ctx, restaurantID)
	png, _ := args.Get(0).([]byte)
	return png, args.Error(1)
}

type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t testingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuServiceInterface) GetMenu(ctx context.Context) (*domain.Menu, error) {
	args := m.Called(ctx)
	menu, _ := args.Get(0).(*domain.Menu)
	return menu, args.Error(1)
}

func (m *MenuServiceInterface) SaveMenu(ctx context.Context, menu *domain.Menu) error {
	return m.Called(ctx, menu).Error(0)
}

func (m *MenuServiceInterface) ResetMenu(ctx context.Context) (*domain.Menu, error) {
	args := m.Called(ctx)
	menu, _ := args.Get(0).(*domain.Menu)
	return menu, args.Error(1)
}

type StatusServiceInterface struct {
	mock.Mock
}

func NewStatusServiceInterface(t testingT) *StatusServiceInterface {
	m := &StatusServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StatusServiceInterface) GetStatus(ctx context.Context) (domain.SystemStatus, error) {
	args := m.Called(ctx)
	status, _ := args.Get(0).(domain.SystemStatus)
	return status, args.Error(1)
}

func (m *StatusServiceInterface) SetOpen(ctx context.Context, isOpen bool) (domain.SystemStatus, error) {
	args := m.Called(ctx, isOpen)
	status, _ := args.Get(0).(domain.SystemStatus)
	return status, args.Error(1)
}

type SuggestionServiceInterface struct {
	mock.Mock
}

func NewSuggestionServiceInterface(t testingT) *SuggestionServiceInterface {
	m := &SuggestionServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SuggestionServiceInterface) ListSuggestions(ctx context.Context) ([]domain.Suggestion, error) {
	args := m.Called(ctx)
	suggestions, _ := args.Get(0).([]domain.Suggestion)
	return suggestions, args.Error(1)
}

func (m *SuggestionServiceInterface) AddSuggestion(ctx context.Context, req service.SuggestionRequest) (domain.Suggestion, error) {
	args := m.Called(ctx, req)
	suggestion, _ := args.Get(0).(domain.Suggestion)
	return suggestion, args.Error(1)
}

func (m *SuggestionServiceInterface) ToggleVote(ctx context.Context, suggestionID, voterName string) (bool, error) {
	args := m.Called(ctx, suggestionID, voterName)
	return args.Bool(0), args.Error(1)
}

func (m *SuggestionServiceInterface) DeleteSuggestion(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
