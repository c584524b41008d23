package reporting

import (
	"sort"
	"strings"

	"github.com/HilmiTuncay/yemek-siparis/internal/domain"
)

// CustomerSummary groups one person's orders. Names are matched
// case-insensitively; Name keeps the first-seen spelling.
type CustomerSummary struct {
	Name    string         `json:"name"`
	Orders  []domain.Order `json:"orders"`
	Total   int            `json:"total"`
	AllPaid bool           `json:"allPaid"`
}

// TallyEntry is one counted row of a restaurant summary, e.g. a dish+portion
// combination or a drink. Count accumulates quantities, not line items.
type TallyEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RestaurantSummary aggregates every line item of every order for one
// restaurant into what the restaurant actually has to prepare.
type RestaurantSummary struct {
	RestaurantID string       `json:"restaurantId"`
	Name         string       `json:"name"`
	Portions     []TallyEntry `json:"portions"`
	Drinks       []TallyEntry `json:"drinks,omitempty"`
	Sauces       []TallyEntry `json:"sauces,omitempty"`
	Extras       []TallyEntry `json:"extras,omitempty"`
	Total        int          `json:"total"`
	TotalItems   int          `json:"totalItems"`
}

// PaymentBucket groups orders by self-reported payment status. Unrecognized
// or absent statuses land in the "unknown" bucket instead of failing.
type PaymentBucket struct {
	Status string   `json:"status"`
	Count  int      `json:"count"`
	Total  int      `json:"total"`
	Names  []string `json:"names"`
}

// Summary is the full report derived from the current order list.
type Summary struct {
	Count       int                 `json:"count"`
	GrandTotal  int                 `json:"grandTotal"`
	Customers   []CustomerSummary   `json:"customers"`
	Restaurants []RestaurantSummary `json:"restaurants"`
	Payments    []PaymentBucket     `json:"payments"`
}

// Summarize recomputes all three views from scratch. It never fails: malformed
// historical data degrades into the unknown bucket or is skipped from the
// affected tally.
func Summarize(orders []domain.Order) Summary {
	s := Summary{
		Count:       len(orders),
		Customers:   GroupByCustomer(orders),
		Restaurants: GroupByRestaurant(orders),
		Payments:    GroupByPayment(orders),
	}
	for _, o := range orders {
		s.GrandTotal += o.TotalPrice
	}
	return s
}

// GroupByCustomer produces per-person groupings in first-seen order.
func GroupByCustomer(orders []domain.Order) []CustomerSummary {
	index := make(map[string]int)
	var out []CustomerSummary

	for _, o := range orders {
		key := strings.ToLower(strings.TrimSpace(o.CustomerName))
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, CustomerSummary{
				Name:    strings.TrimSpace(o.CustomerName),
				AllPaid: true,
			})
		}
		out[i].Orders = append(out[i].Orders, o)
		out[i].Total += o.TotalPrice
		if o.PaymentStatus != domain.PaymentPaid {
			out[i].AllPaid = false
		}
	}
	return out
}

type restaurantAcc struct {
	name       string
	portions   map[string]*TallyEntry
	drinks     map[string]*TallyEntry
	sauces     map[string]*TallyEntry
	extras     map[string]*TallyEntry
	total      int
	totalItems int
}

// GroupByRestaurant iterates every line item across all orders and tallies,
// per restaurant: product+portion combinations, drinks, sauces and extras.
// Every tally accumulates quantity, so a quantity-3 line contributes 3.
func GroupByRestaurant(orders []domain.Order) []RestaurantSummary {
	accs := make(map[string]*restaurantAcc)
	var order []string

	for _, o := range orders {
		for _, item := range o.Items {
			acc, ok := accs[item.RestaurantID]
			if !ok {
				acc = &restaurantAcc{
					name:     item.RestaurantName,
					portions: make(map[string]*TallyEntry),
					drinks:   make(map[string]*TallyEntry),
					sauces:   make(map[string]*TallyEntry),
					extras:   make(map[string]*TallyEntry),
				}
				accs[item.RestaurantID] = acc
				order = append(order, item.RestaurantID)
			}

			portionKey := item.ProductName + "-" + item.PortionName
			tally(acc.portions, portionKey, item.ProductName+" ("+item.PortionName+")", item.Quantity)

			if item.Drink != nil && item.Drink.Name != "" {
				tally(acc.drinks, item.Drink.ID, item.Drink.Name, item.Quantity)
			}
			if item.Sauce != nil && item.Sauce.Name != "" {
				tally(acc.sauces, keyOrName(item.Sauce), item.Sauce.Name, item.Quantity)
			}
			if item.Extra != nil && item.Extra.Name != "" {
				tally(acc.extras, keyOrName(item.Extra), item.Extra.Name, item.Quantity)
			}

			acc.total += item.ItemTotal
			acc.totalItems += item.Quantity
		}
	}

	out := make([]RestaurantSummary, 0, len(order))
	for _, id := range order {
		acc := accs[id]
		out = append(out, RestaurantSummary{
			RestaurantID: id,
			Name:         acc.name,
			Portions:     sortedTallies(acc.portions),
			Drinks:       sortedTallies(acc.drinks),
			Sauces:       sortedTallies(acc.sauces),
			Extras:       sortedTallies(acc.extras),
			Total:        acc.total,
			TotalItems:   acc.totalItems,
		})
	}
	return out
}

// GroupByPayment buckets orders by payment status, keeping distinct customer
// names in insertion order.
func GroupByPayment(orders []domain.Order) []PaymentBucket {
	index := make(map[string]int)
	var out []PaymentBucket

	for _, o := range orders {
		status := string(o.PaymentStatus)
		switch o.PaymentStatus {
		case domain.PaymentPaid, domain.PaymentLater, domain.PaymentDoor:
		default:
			status = "unknown"
		}

		i, ok := index[status]
		if !ok {
			i = len(out)
			index[status] = i
			out = append(out, PaymentBucket{Status: status})
		}
		out[i].Count++
		out[i].Total += o.TotalPrice
		if !containsName(out[i].Names, o.CustomerName) {
			out[i].Names = append(out[i].Names, o.CustomerName)
		}
	}
	return out
}

func tally(entries map[string]*TallyEntry, key, name string, quantity int) {
	entry, ok := entries[key]
	if !ok {
		entry = &TallyEntry{Name: name}
		entries[key] = entry
	}
	entry.Count += quantity
}

func keyOrName(opt *domain.SelectedOption) string {
	if opt.ID != "" {
		return opt.ID
	}
	return opt.Name
}

func sortedTallies(entries map[string]*TallyEntry) []TallyEntry {
	out := make([]TallyEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
