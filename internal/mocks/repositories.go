package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/HilmiTuncay/yemek-siparis/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuRepository) GetMenu(ctx context.Context) (*domain.Menu, error) {
	args := m.Called(ctx)
	menu, _ := args.Get(0).(*domain.Menu)
	return menu, args.Error(1)
}

func (m *MenuRepository) SaveMenu(ctx context.Context, menu *domain.Menu) error {
	return m.Called(ctx, menu).Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]domain.Order)
	return orders, args.Error(1)
}

func (m *OrderRepository) AppendOrder(ctx context.Context, order domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderRepository) DeleteOrder(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepository) ClearOrders(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type StatusRepository struct {
	mock.Mock
}

func NewStatusRepository(t testingT) *StatusRepository {
	m := &StatusRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StatusRepository) GetStatus(ctx context.Context) (*domain.SystemStatus, error) {
	args := m.Called(ctx)
	status, _ := args.Get(0).(*domain.SystemStatus)
	return status, args.Error(1)
}

func (m *StatusRepository) SaveStatus(ctx context.Context, status domain.SystemStatus) error {
	return m.Called(ctx, status).Error(0)
}

type SuggestionRepository struct {
	mock.Mock
}

func NewSuggestionRepository(t testingT) *SuggestionRepository {
	m := &SuggestionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SuggestionRepository) ListSuggestions(ctx context.Context) ([]domain.Suggestion, error) {
	args := m.Called(ctx)
	suggestions, _ := args.Get(0).([]domain.Suggestion)
	return suggestions, args.Error(1)
}

func (m *SuggestionRepository) SaveSuggestions(ctx context.Context, suggestions []domain.Suggestion) error {
	return m.Called(ctx, suggestions).Error(0)
}

type OrderPublisher struct {
	mock.Mock
}

func NewOrderPublisher(t testingT) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}
