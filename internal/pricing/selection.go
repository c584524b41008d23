package pricing

import (
	"errors"

	"github.com/HilmiTuncay/yemek-siparis/internal/domain"
)

var (
	ErrUnknownPortion  = errors.New("portion does not exist for this product")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// SelectionRequest is one user choice: a product variant with its modifiers.
// DrinkID empty means explicitly no drink. SauceID/ExtraID are optional and
// silently ignored when they do not resolve.
type SelectionRequest struct {
	PortionID string `json:"portionId"`
	DrinkID   string `json:"drinkId,omitempty"`
	SauceID   string `json:"sauceId,omitempty"`
	ExtraID   string `json:"extraId,omitempty"`
	Quantity  int    `json:"quantity"`
}

// BuildSelection turns one choice into a priced, self-contained line item.
// The snapshot carries denormalized names so later menu edits never change
// what a historical order says.
//
// unitPrice = portion.price + drink.mod + sauce.mod + extra.mod
// itemTotal = unitPrice * quantity
func BuildSelection(menu *domain.Menu, restaurant *domain.Restaurant, product *domain.Product, req SelectionRequest) (domain.OrderItemSelection, error) {
	if req.Quantity < 1 {
		return domain.OrderItemSelection{}, ErrInvalidQuantity
	}

	portion := product.PortionByID(req.PortionID)
	if portion == nil {
		return domain.OrderItemSelection{}, ErrUnknownPortion
	}

	sel := domain.OrderItemSelection{
		RestaurantID:   restaurant.ID,
		RestaurantName: restaurant.Name,
		ProductID:      product.ID,
		ProductName:    product.Name,
		PortionID:      portion.ID,
		PortionName:    portion.Name,
		PortionPrice:   portion.Price,
		Quantity:       req.Quantity,
	}

	if req.DrinkID != "" {
		drinks := menu.EffectiveDrinks(restaurant, product)
		drink := domain.FindDrink(drinks, req.DrinkID)
		if drink == nil && len(drinks) > 0 {
			// Unresolved drink ids fall back to the first option.
			drink = &drinks[0]
		}
		if drink != nil {
			sel.Drink = &domain.SelectedOption{ID: drink.ID, Name: drink.Name, PriceModifier: drink.PriceModifier}
		}
	}

	if req.SauceID != "" {
		if sauce := product.SauceByID(req.SauceID); sauce != nil {
			sel.Sauce = &domain.SelectedOption{ID: sauce.ID, Name: sauce.Name, PriceModifier: sauce.PriceModifier}
		}
	}

	if req.ExtraID != "" {
		if extra := product.ExtraByID(req.ExtraID); extra != nil {
			sel.Extra = &domain.SelectedOption{ID: extra.ID, Name: extra.Name, PriceModifier: extra.PriceModifier}
		}
	}

	sel.ItemTotal = sel.UnitPrice() * sel.Quantity
	return sel, nil
}
