package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/HilmiTuncay/yemek-siparis/internal/reporting"
)

var ErrNoPaymentInfo = errors.New("restaurant has no payment info")

// PaymentQR encodes the restaurant's IBAN, account holder and currently
// collected total as a QR code PNG, so people can scan instead of retyping
// the IBAN from the order screen.
func (s *OrderService) PaymentQR(ctx context.Context, restaurantID string) ([]byte, error) {
	menu, err := s.menus.GetMenu(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	if menu == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRestaurant, restaurantID)
	}
	restaurant := menu.RestaurantByID(restaurantID)
	if restaurant == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRestaurant, restaurantID)
	}
	if restaurant.IBAN == "" {
		return nil, ErrNoPaymentInfo
	}

	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, summary := range reporting.GroupByRestaurant(orders) {
		if summary.RestaurantID == restaurantID {
			total = summary.Total
			break
		}
	}

	payload := fmt.Sprintf("%s\n%s\n%d TL", restaurant.IBAN, restaurant.AccountHolder, total)
	return qrcode.Encode(payload, qrcode.Medium, 256)
}
