package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/HilmiTuncay/yemek-siparis/internal/domain"
)

const (
	menuKey        = "yemek-menu"
	ordersKey      = "yemek-siparisler"
	statusKey      = "yemek-siparis-durumu"
	suggestionsKey = "yemek-oneriler"
)

// DefaultOrderTTL is how long the order document survives after its last
// write. Expired orders are gone on purpose.
const DefaultOrderTTL = 30 * time.Minute

// RedisStore keeps each concern as a single JSON document under one key,
// read and written whole. Concurrent writers are last-write-wins.
type RedisStore struct {
	Client   *redis.Client
	OrderTTL time.Duration
}

func NewRedisStore(client *redis.Client, orderTTL time.Duration) *RedisStore {
	if orderTTL <= 0 {
		orderTTL = DefaultOrderTTL
	}
	return &RedisStore{Client: client, OrderTTL: orderTTL}
}

func (s *RedisStore) GetMenu(ctx context.Context) (*domain.Menu, error) {
	var menu domain.Menu
	found, err := s.getJSON(ctx, menuKey, &menu)
	if err != nil || !found {
		return nil, err
	}
	return &menu, nil
}

func (s *RedisStore) SaveMenu(ctx context.Context, menu *domain.Menu) error {
	return s.setJSON(ctx, menuKey, menu, 0)
}

func (s *RedisStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if _, err := s.getJSON(ctx, ordersKey, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// AppendOrder reads the whole order document, appends, and writes it back
// with a fresh TTL.
func (s *RedisStore) AppendOrder(ctx context.Context, order domain.Order) error {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, order)
	return s.setJSON(ctx, ordersKey, orders, s.OrderTTL)
}

// DeleteOrder removes one order by id. Returns false when no order with that
// id exists, which includes orders that already expired.
func (s *RedisStore) DeleteOrder(ctx context.Context, id string) (bool, error) {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return false, err
	}
	kept := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(orders) {
		return false, nil
	}
	if err := s.setJSON(ctx, ordersKey, kept, s.OrderTTL); err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisStore) ClearOrders(ctx context.Context) error {
	return s.Client.Del(ctx, ordersKey).Err()
}

func (s *RedisStore) GetStatus(ctx context.Context) (*domain.SystemStatus, error) {
	var status domain.SystemStatus
	found, err := s.getJSON(ctx, statusKey, &status)
	if err != nil || !found {
		return nil, err
	}
	return &status, nil
}

func (s *RedisStore) SaveStatus(ctx context.Context, status domain.SystemStatus) error {
	return s.setJSON(ctx, statusKey, status, 0)
}

func (s *RedisStore) ListSuggestions(ctx context.Context) ([]domain.Suggestion, error) {
	var suggestions []domain.Suggestion
	if _, err := s.getJSON(ctx, suggestionsKey, &suggestions); err != nil {
		return nil, err
	}
	if suggestions == nil {
		suggestions = []domain.Suggestion{}
	}
	return suggestions, nil
}

func (s *RedisStore) SaveSuggestions(ctx context.Context, suggestions []domain.Suggestion) error {
	return s.setJSON(ctx, suggestionsKey, suggestions, 0)
}

func (s *RedisStore) getJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	payload, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *RedisStore) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
