package pricing

import (
	"sort"

	"github.com/HilmiTuncay/yemek-siparis/internal/domain"
)

type cartKey struct {
	restaurantID string
	productID    string
}

// Cart holds the in-progress selections for one customer session. There is at
// most one selection per (restaurant, product): adding the same product again
// replaces the previous entry.
type Cart struct {
	entries map[cartKey]domain.OrderItemSelection
}

func NewCart() *Cart {
	return &Cart{entries: make(map[cartKey]domain.OrderItemSelection)}
}

// Add inserts or replaces the selection for the product.
func (c *Cart) Add(sel domain.OrderItemSelection) {
	c.entries[cartKey{sel.RestaurantID, sel.ProductID}] = sel
}

// Remove deletes the entry if present; removing an absent entry is a no-op.
func (c *Cart) Remove(restaurantID, productID string) {
	delete(c.entries, cartKey{restaurantID, productID})
}

// UpdateQuantity recomputes the entry's total from its stored unit components.
// A quantity of zero or less removes the entry.
func (c *Cart) UpdateQuantity(restaurantID, productID string, quantity int) {
	key := cartKey{restaurantID, productID}
	sel, ok := c.entries[key]
	if !ok {
		return
	}
	if quantity <= 0 {
		delete(c.entries, key)
		return
	}
	sel.Quantity = quantity
	sel.ItemTotal = sel.UnitPrice() * quantity
	c.entries[key] = sel
}

// Len returns the number of distinct entries.
func (c *Cart) Len() int {
	return len(c.entries)
}

// GrandTotal sums ItemTotal over all entries.
func (c *Cart) GrandTotal() int {
	total := 0
	for _, sel := range c.entries {
		total += sel.ItemTotal
	}
	return total
}

// Flatten returns all entries in a stable order, keyed by restaurant then
// product id.
func (c *Cart) Flatten() []domain.OrderItemSelection {
	items := make([]domain.OrderItemSelection, 0, len(c.entries))
	for _, sel := range c.entries {
		items = append(items, sel)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].RestaurantID != items[j].RestaurantID {
			return items[i].RestaurantID < items[j].RestaurantID
		}
		return items[i].ProductID < items[j].ProductID
	})
	return items
}
