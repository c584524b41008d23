package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/HilmiTuncay/yemek-siparis/internal/domain"
	"github.com/HilmiTuncay/yemek-siparis/internal/mocks"
	"github.com/HilmiTuncay/yemek-siparis/internal/reporting"
	"github.com/HilmiTuncay/yemek-siparis/internal/service"
)

type testDeps struct {
	orders      *mocks.OrderServiceInterface
	menus       *mocks.MenuServiceInterface
	status      *mocks.StatusServiceInterface
	suggestions *mocks.SuggestionServiceInterface
}

func newTestRouter(t *testing.T, adminPassword string) (http.Handler, testDeps) {
	t.Helper()
	deps := testDeps{
		orders:      mocks.NewOrderServiceInterface(t),
		menus:       mocks.NewMenuServiceInterface(t),
		status:      mocks.NewStatusServiceInterface(t),
		suggestions: mocks.NewSuggestionServiceInterface(t),
	}
	handler := &Handler{
		Orders:        deps.orders,
		Menus:         deps.menus,
		Status:        deps.status,
		Suggestions:   deps.suggestions,
		AdminPassword: adminPassword,
	}
	return NewRouter(handler), deps
}

func doRequest(router http.Handler, method, target string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t, "")
	rec := doRequest(router, http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
}

func TestSubmitOrder(t *testing.T) {
	payload := map[string]interface{}{
		"customerName": "Ali",
		"items": []map[string]interface{}{
			{"restaurantId": "pilav-istasyonu", "productId": "tavuklu-pilav", "portionId": "1-porsiyon", "quantity": 2},
		},
		"paymentStatus": "paid",
	}

	t.Run("created", func(t *testing.T) {
		router, deps := newTestRouter(t, "")
		deps.orders.On("Submit", mock.Anything, mock.MatchedBy(func(req service.OrderRequest) bool {
			return req.CustomerName == "Ali" && len(req.Items) == 1
		})).Return(domain.Order{ID: "o1", CustomerName: "Ali", TotalPrice: 240}, nil).Once()

		rec := doRequest(router, http.MethodPost, "/api/orders", payload, nil)
		assert.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		order := body["order"].(map[string]interface{})
		assert.Equal(t, "o1", order["id"])
	})

	t.Run("closed", func(t *testing.T) {
		router, deps := newTestRouter(t, "")
		deps.orders.On("Submit", mock.Anything, mock.Anything).
			Return(domain.Order{}, service.ErrOrdersClosed).Once()

		rec := doRequest(router, http.MethodPost, "/api/orders", payload, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("validation_error", func(t *testing.T) {
		router, deps := newTestRouter(t, "")
		deps.orders.On("Submit", mock.Anything, mock.Anything).
			Return(domain.Order{}, service.ErrEmptyCart).Once()

		rec := doRequest(router, http.MethodPost, "/api/orders", payload, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.NotEmpty(t, body["error"])
	})

	t.Run("malformed_json", func(t *testing.T) {
		router, _ := newTestRouter(t, "")
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte("{")))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListOrders(t *testing.T) {
	router, deps := newTestRouter(t, "")
	deps.orders.On("ListOrders", mock.Anything).Return([]domain.Order{
		{ID: "1", TotalPrice: 100},
		{ID: "2", TotalPrice: 150},
	}, nil).Once()

	rec := doRequest(router, http.MethodGet, "/api/orders", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(250), body["grandTotal"])
	assert.Equal(t, float64(2), body["count"])
}

func TestMyOrders(t *testing.T) {
	t.Run("requires_name", func(t *testing.T) {
		router, _ := newTestRouter(t, "")
		rec := doRequest(router, http.MethodGet, "/api/orders/my", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns_orders_and_total", func(t *testing.T) {
		router, deps := newTestRouter(t, "")
		deps.orders.On("OrdersByCustomer", mock.Anything, "Ali").Return([]domain.Order{
			{ID: "1", CustomerName: "Ali", TotalPrice: 100},
			{ID: "2", CustomerName: "ali", TotalPrice: 50},
		}, nil).Once()

		rec := doRequest(router, http.MethodGet, "/api/orders/my?name=Ali", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(150), body["total"])
	})
}

func TestDeleteOrders(t *testing.T) {
	t.Run("customer_cancel", func(t *testing.T) {
		router, deps := newTestRouter(t, "secret")
		deps.orders.On("CancelOrder", mock.Anything, "o1").Return(true, nil).Once()

		rec := doRequest(router, http.MethodDelete, "/api/orders?id=o1", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("customer_cancel_blocked_when_closed", func(t *testing.T) {
		router, deps := newTestRouter(t, "secret")
		deps.orders.On("CancelOrder", mock.Anything, "o1").Return(false, service.ErrOrdersClosed).Once()

		rec := doRequest(router, http.MethodDelete, "/api/orders?id=o1", nil, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin_delete_bypasses_cancel", func(t *testing.T) {
		router, deps := newTestRouter(t, "secret")
		deps.orders.On("DeleteOrder", mock.Anything, "o1").Return(true, nil).Once()

		rec := doRequest(router, http.MethodDelete, "/api/orders?id=o1", nil,
			map[string]string{"X-Admin-Password": "secret"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not_found", func(t *testing.T) {
		router, deps := newTestRouter(t, "secret")
		deps.orders.On("CancelOrder", mock.Anything, "gone").Return(false, nil).Once()

		rec := doRequest(router, http.MethodDelete, "/api/orders?id=gone", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("clear_all_requires_admin", func(t *testing.T) {
		router, _ := newTestRouter(t, "secret")
		rec := doRequest(router, http.MethodDelete, "/api/orders", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("clear_all_as_admin", func(t *testing.T) {
		router, deps := newTestRouter(t, "secret")
		deps.orders.On("ClearOrders", mock.Anything).Return(nil).Once()

		rec := doRequest(router, http.MethodDelete, "/api/orders", nil,
			map[string]string{"X-Admin-Password": "secret"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestOrderSummary(t *testing.T) {
	router, deps := newTestRouter(t, "")
	deps.orders.On("Summary", mock.Anything).Return(reporting.Summary{
		Count:      2,
		GrandTotal: 250,
	}, nil).Once()

	rec := doRequest(router, http.MethodGet, "/api/orders/summary", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(250), body["grandTotal"])
}

func TestMenuRoutes(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		router, deps := newTestRouter(t, "")
		menu := domain.DefaultMenu()
		deps.menus.On("GetMenu", mock.Anything).Return(&menu, nil).Once()

		rec := doRequest(router, http.MethodGet, "/api/menu", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("put_requires_admin", func(t *testing.T) {
		router, _ := newTestRouter(t, "secret")
		menu := domain.DefaultMenu()
		rec := doRequest(router, http.MethodPut, "/api/menu", menu, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("put_as_admin", func(t *testing.T) {
		router, deps := newTestRouter(t, "secret")
		deps.menus.On("SaveMenu", mock.Anything, mock.Anything).Return(nil).Once()

		menu := domain.DefaultMenu()
		rec := doRequest(router, http.MethodPut, "/api/menu", menu,
			map[string]string{"X-Admin-Password": "secret"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("put_invalid_menu", func(t *testing.T) {
		router, deps := newTestRouter(t, "")
		deps.menus.On("SaveMenu", mock.Anything, mock.Anything).
			Return(domain.ErrInvalidMenu).Once()

		menu := domain.DefaultMenu()
		rec := doRequest(router, http.MethodPut, "/api/menu", menu, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("reset", func(t *testing.T) {
		router, deps := newTestRouter(t, "")
		menu := domain.DefaultMenu()
		deps.menus.On("ResetMenu", mock.Anything).Return(&menu, nil).Once()

		rec := doRequest(router, http.MethodPost, "/api/menu/reset", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestOrderStatusRoutes(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		router, deps := newTestRouter(t, "")
		deps.status.On("GetStatus", mock.Anything).
			Return(domain.SystemStatus{IsOpen: true}, nil).Once()

		rec := doRequest(router, http.MethodGet, "/api/order-status", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["isOpen"])
	})

	t.Run("put_rejects_missing_flag", func(t *testing.T) {
		router, _ := newTestRouter(t, "")
		rec := doRequest(router, http.MethodPut, "/api/order-status", map[string]interface{}{}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("put_closes", func(t *testing.T) {
		router, deps := newTestRouter(t, "")
		deps.status.On("SetOpen", mock.Anything, false).
			Return(domain.SystemStatus{IsOpen: false, ClosedAt: 123}, nil).Once()

		rec := doRequest(router, http.MethodPut, "/api/order-status",
			map[string]interface{}{"isOpen": false}, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["isOpen"])
	})
}

func TestSuggestionRoutes(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		router, deps := newTestRouter(t, "")
		deps.suggestions.On("AddSuggestion", mock.Anything, mock.MatchedBy(func(req service.SuggestionRequest) bool {
			return req.Text == "Lahmacuncu"
		})).Return(domain.Suggestion{ID: "s1", Text: "Lahmacuncu"}, nil).Once()

		rec := doRequest(router, http.MethodPost, "/api/suggestions",
			map[string]interface{}{"type": "restaurant", "text": "Lahmacuncu", "submittedBy": "Ali"}, nil)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("vote_toggles", func(t *testing.T) {
		router, deps := newTestRouter(t, "")
		deps.suggestions.On("ToggleVote", mock.Anything, "s1", "Veli").Return(true, nil).Once()

		rec := doRequest(router, http.MethodPut, "/api/suggestions/s1/vote",
			map[string]interface{}{"voterName": "Veli"}, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("vote_unknown_suggestion", func(t *testing.T) {
		router, deps := newTestRouter(t, "")
		deps.suggestions.On("ToggleVote", mock.Anything, "nope", "Veli").Return(false, nil).Once()

		rec := doRequest(router, http.MethodPut, "/api/suggestions/nope/vote",
			map[string]interface{}{"voterName": "Veli"}, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete_requires_admin", func(t *testing.T) {
		router, _ := newTestRouter(t, "secret")
		rec := doRequest(router, http.MethodDelete, "/api/suggestions/s1", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("delete_as_admin", func(t *testing.T) {
		router, deps := newTestRouter(t, "secret")
		deps.suggestions.On("DeleteSuggestion", mock.Anything, "s1").Return(true, nil).Once()

		rec := doRequest(router, http.MethodDelete, "/api/suggestions/s1", nil,
			map[string]string{"X-Admin-Password": "secret"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPaymentQRRoute(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		router, deps := newTestRouter(t, "")
		deps.orders.On("PaymentQR", mock.Anything, "pilav-istasyonu").
			Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

		rec := doRequest(router, http.MethodGet, "/api/restaurants/pilav-istasyonu/payment-qr", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	})

	t.Run("no_payment_info", func(t *testing.T) {
		router, deps := newTestRouter(t, "")
		deps.orders.On("PaymentQR", mock.Anything, "makarnaci").
			Return(nil, service.ErrNoPaymentInfo).Once()

		rec := doRequest(router, http.MethodGet, "/api/restaurants/makarnaci/payment-qr", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
