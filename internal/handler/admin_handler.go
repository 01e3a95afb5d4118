package handler

import (
	"encoding/json"
	"net/http"

	"github.com/share2solve/backend/pkg/auth"
)

// AdminHandler verifies the shared admin secret for dashboard login.
type AdminHandler struct {
	admin *auth.Admin
}

// NewAdminHandler creates an AdminHandler with the given verifier.
func NewAdminHandler(admin *auth.Admin) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// loginRequest is the expected JSON body for POST /api/admin/login.
type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/admin/login. It only checks the credential;
// there is no session state to create.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request body"})
		return
	}

	if !h.admin.Verify(req.Password) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Invalid password"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Authentication successful"})
}
