package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/HilmiTuncay/yemek-siparis/internal/domain"
	"github.com/HilmiTuncay/yemek-siparis/internal/pricing"
	"github.com/HilmiTuncay/yemek-siparis/internal/service"
)

type Handler struct {
	Orders      service.OrderServiceInterface
	Menus       service.MenuServiceInterface
	Status      service.StatusServiceInterface
	Suggestions service.SuggestionServiceInterface

	// AdminPassword guards mutating admin routes. Empty disables the check.
	AdminPassword string
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu", h.adminOnly(h.updateMenu)).Methods("PUT")
	r.HandleFunc("/api/menu/reset", h.adminOnly(h.resetMenu)).Methods("POST")

	r.HandleFunc("/api/orders", h.submitOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders", h.deleteOrders).Methods("DELETE")
	r.HandleFunc("/api/orders/summary", h.orderSummary).Methods("GET")
	r.HandleFunc("/api/orders/my", h.myOrders).Methods("GET")

	r.HandleFunc("/api/order-status", h.getOrderStatus).Methods("GET")
	r.HandleFunc("/api/order-status", h.adminOnly(h.setOrderStatus)).Methods("PUT")

	r.HandleFunc("/api/suggestions", h.listSuggestions).Methods("GET")
	r.HandleFunc("/api/suggestions", h.createSuggestion).Methods("POST")
	r.HandleFunc("/api/suggestions/{id}/vote", h.voteSuggestion).Methods("PUT")
	r.HandleFunc("/api/suggestions/{id}", h.adminOnly(h.deleteSuggestion)).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{restaurantId}/payment-qr", h.paymentQR).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "yemek-siparis",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Menus.GetMenu(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) updateMenu(w http.ResponseWriter, r *http.Request) {
	var menu domain.Menu
	if err := json.NewDecoder(r.Body).Decode(&menu); err != nil {
		writeError(w, http.StatusBadRequest, "invalid menu payload")
		return
	}
	if menu.Restaurants == nil {
		writeError(w, http.StatusBadRequest, "menu must contain restaurants")
		return
	}
	if err := h.Menus.SaveMenu(r.Context(), &menu); err != nil {
		if errors.Is(err, domain.ErrInvalidMenu) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "menu": &menu})
}

func (h *Handler) resetMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Menus.ResetMenu(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "menu": menu})
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	var req service.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid order payload")
		return
	}

	order, err := h.Orders.Submit(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrdersClosed):
			writeError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrMissingName),
			errors.Is(err, service.ErrEmptyCart),
			errors.Is(err, service.ErrRestaurantClosed),
			errors.Is(err, service.ErrUnknownRestaurant),
			errors.Is(err, service.ErrUnknownProduct),
			errors.Is(err, pricing.ErrUnknownPortion),
			errors.Is(err, pricing.ErrInvalidQuantity):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "order": order})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListOrders(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	grandTotal := 0
	for _, o := range orders {
		grandTotal += o.TotalPrice
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"orders":     orders,
		"grandTotal": grandTotal,
		"count":      len(orders),
	})
}

// deleteOrders handles both the single-order cancel (?id=...) and the admin
// clear-all. Customers may cancel only while orders are open; the admin
// password bypasses that and is required for clear-all.
func (h *Handler) deleteOrders(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		if !h.isAdmin(r) {
			writeError(w, http.StatusUnauthorized, "admin password required")
			return
		}
		if err := h.Orders.ClearOrders(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
		return
	}

	var deleted bool
	var err error
	if h.isAdmin(r) {
		deleted, err = h.Orders.DeleteOrder(r.Context(), id)
	} else {
		deleted, err = h.Orders.CancelOrder(r.Context(), id)
	}
	if err != nil {
		if errors.Is(err, service.ErrOrdersClosed) {
			writeError(w, http.StatusForbidden, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *Handler) orderSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Orders.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) myOrders(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}
	orders, err := h.Orders.OrdersByCustomer(r.Context(), name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	total := 0
	for _, o := range orders {
		total += o.TotalPrice
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"orders": orders, "total": total})
}

func (h *Handler) getOrderStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.Status.GetStatus(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) setOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IsOpen *bool `json:"isOpen"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsOpen == nil {
		writeError(w, http.StatusBadRequest, "isOpen must be a boolean")
		return
	}
	status, err := h.Status.SetOpen(r.Context(), *req.IsOpen)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "isOpen": status.IsOpen})
}

func (h *Handler) listSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.Suggestions.ListSuggestions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"suggestions": suggestions})
}

func (h *Handler) createSuggestion(w http.ResponseWriter, r *http.Request) {
	var req service.SuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid suggestion payload")
		return
	}
	suggestion, err := h.Suggestions.AddSuggestion(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingText),
			errors.Is(err, service.ErrMissingName),
			errors.Is(err, service.ErrInvalidSuggestionType):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "suggestion": suggestion})
}

func (h *Handler) voteSuggestion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VoterName string `json:"voterName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid vote payload")
		return
	}
	found, err := h.Suggestions.ToggleVote(r.Context(), mux.Vars(r)["id"], req.VoterName)
	if err != nil {
		if errors.Is(err, service.ErrMissingName) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "suggestion not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *Handler) deleteSuggestion(w http.ResponseWriter, r *http.Request) {
	found, err := h.Suggestions.DeleteSuggestion(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "suggestion not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *Handler) paymentQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.Orders.PaymentQR(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownRestaurant):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNoPaymentInfo):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
