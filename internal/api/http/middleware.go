package httpapi

import "net/http"

const adminHeader = "X-Admin-Password"

// isAdmin checks the shared admin password header. With no password
// configured every caller counts as admin, which keeps local development
// friction-free.
func (h *Handler) isAdmin(r *http.Request) bool {
	return h.AdminPassword == "" || r.Header.Get(adminHeader) == h.AdminPassword
}

// adminOnly rejects the request unless the caller is admin.
func (h *Handler) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.isAdmin(r) {
			writeError(w, http.StatusUnauthorized, "admin password required")
			return
		}
		next(w, r)
	}
}
