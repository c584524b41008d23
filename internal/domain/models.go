package domain

// DrinkSource selects which drink list applies to a product.
type DrinkSource string

const (
	DrinkSourceProduct    DrinkSource = "product"
	DrinkSourceRestaurant DrinkSource = "restaurant"
	DrinkSourceGlobal     DrinkSource = "global"
)

// DrinkOption is a named drink with a signed price adjustment.
type DrinkOption struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PriceModifier int    `json:"priceModifier"`
}

// PortionOption is a priced serving-size variant of a product.
type PortionOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// SauceOption is a named sauce with a signed price adjustment.
type SauceOption struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PriceModifier int    `json:"priceModifier"`
}

// ExtraOption is a named add-on with a signed price adjustment.
type ExtraOption struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PriceModifier int    `json:"priceModifier"`
}

type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Portions       []PortionOption `json:"portions"`
	DrinkOptions   []DrinkOption   `json:"drinkOptions,omitempty"`
	DefaultDrinkID string          `json:"defaultDrinkId,omitempty"`
	Sauces         []SauceOption   `json:"sauces,omitempty"`
	Extras         []ExtraOption   `json:"extras,omitempty"`
	// Empty means DrinkSourceProduct.
	DrinkSource DrinkSource `json:"drinkSource,omitempty"`
}

type Restaurant struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Products      []Product     `json:"products"`
	IBAN          string        `json:"iban,omitempty"`
	AccountHolder string        `json:"accountHolder,omitempty"`
	Drinks        []DrinkOption `json:"drinks,omitempty"`
	// Nil means open.
	IsOpen *bool `json:"isOpen,omitempty"`
}

// Menu is the whole editable catalog, stored as one document.
type Menu struct {
	Restaurants   []Restaurant  `json:"restaurants"`
	DefaultDrinks []DrinkOption `json:"defaultDrinks,omitempty"`
	UpdatedAt     int64         `json:"updatedAt"`
}

// SelectedOption is a denormalized option snapshot inside a line item.
type SelectedOption struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PriceModifier int    `json:"priceModifier"`
}

// OrderItemSelection is one priced line item, denormalized at order time so
// later menu edits never alter historical orders.
type OrderItemSelection struct {
	RestaurantID   string          `json:"restaurantId"`
	RestaurantName string          `json:"restaurantName"`
	ProductID      string          `json:"productId"`
	ProductName    string          `json:"productName"`
	PortionID      string          `json:"portionId"`
	PortionName    string          `json:"portionName"`
	PortionPrice   int             `json:"portionPrice"`
	Drink          *SelectedOption `json:"drink,omitempty"`
	Sauce          *SelectedOption `json:"sauce,omitempty"`
	Extra          *SelectedOption `json:"extra,omitempty"`
	Quantity       int             `json:"quantity"`
	ItemTotal      int             `json:"itemTotal"`
}

// UnitPrice is the per-unit price of the snapshot: portion price plus all
// selected modifiers.
func (s OrderItemSelection) UnitPrice() int {
	price := s.PortionPrice
	if s.Drink != nil {
		price += s.Drink.PriceModifier
	}
	if s.Sauce != nil {
		price += s.Sauce.PriceModifier
	}
	if s.Extra != nil {
		price += s.Extra.PriceModifier
	}
	return price
}

type PaymentStatus string

const (
	PaymentPaid  PaymentStatus = "paid"
	PaymentLater PaymentStatus = "later"
	PaymentDoor  PaymentStatus = "door"
)

type Order struct {
	ID            string               `json:"id"`
	CustomerName  string               `json:"customerName"`
	Items         []OrderItemSelection `json:"items"`
	TotalPrice    int                  `json:"totalPrice"`
	CreatedAt     int64                `json:"createdAt"`
	PaymentStatus PaymentStatus        `json:"paymentStatus"`
}

// SystemStatus gates whether new orders may be submitted.
type SystemStatus struct {
	IsOpen   bool  `json:"isOpen"`
	ClosedAt int64 `json:"closedAt,omitempty"`
}

// OrderEvent is the message published when an order is created or deleted.
type OrderEvent struct {
	Type         string `json:"type"`
	OrderID      string `json:"order_id"`
	CustomerName string `json:"customer_name"`
	TotalPrice   int    `json:"total_price"`
	Timestamp    int64  `json:"timestamp"`
}

type SuggestionType string

const (
	SuggestionRestaurant SuggestionType = "restaurant"
	SuggestionFood       SuggestionType = "food"
)

type Suggestion struct {
	ID          string         `json:"id"`
	Type        SuggestionType `json:"type"`
	Text        string         `json:"text"`
	SubmittedBy string         `json:"submittedBy"`
	Votes       []string       `json:"votes"`
	CreatedAt   int64          `json:"createdAt"`
}
