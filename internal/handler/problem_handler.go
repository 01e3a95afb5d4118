package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/share2solve/backend/internal/model"
	"github.com/share2solve/backend/internal/repository"
	"github.com/share2solve/backend/internal/service"
	"github.com/share2solve/backend/internal/validate"
	"github.com/share2solve/backend/pkg/auth"
)

// ProblemHandler handles the public problem endpoints and the admin-gated
// status/delete operations. The admin credential arrives in each mutating
// request body and is verified per call.
type ProblemHandler struct {
	problemService service.ProblemService
	admin          *auth.Admin
}

// NewProblemHandler creates a ProblemHandler with the given service and
// admin verifier.
func NewProblemHandler(problemService service.ProblemService, admin *auth.Admin) *ProblemHandler {
	return &ProblemHandler{problemService: problemService, admin: admin}
}

// createRequest is the expected JSON body for POST /api/problems.
type createRequest struct {
	Email     string     `json:"email"`
	Problem   string     `json:"problem"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// List handles GET /api/problems.
// Query params: search, status (pending/resolved), sortBy
// (newest/oldest/email/status), limit. Non-numeric limits fall back to the
// service default.
func (h *ProblemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := model.ProblemListOptions{
		Search: q.Get("search"),
		Status: q.Get("status"),
		SortBy: q.Get("sortBy"),
	}
	if l := q.Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil {
			opts.Limit = n
		}
	}

	problems, err := h.problemService.List(r.Context(), opts)
	if err != nil {
		slog.Error("list problems failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to fetch problems"})
		return
	}

	// Return [] not null for empty lists
	if problems == nil {
		problems = []*model.Problem{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(problems)
}

// Create handles POST /api/problems.
// email and problem are required; problem must be 10..5000 chars after
// trimming; timestamp is optional and defaults to the server clock.
func (h *ProblemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request body"})
		return
	}

	p, err := h.problemService.Submit(r.Context(), req.Email, req.Problem, req.Timestamp)
	if err != nil {
		var ve *validate.Error
		if errors.As(err, &ve) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": ve.Message})
			return
		}
		slog.Error("create problem failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to create problem"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// updateStatusRequest is the expected JSON body for PATCH /api/problems/{id}.
type updateStatusRequest struct {
	Status        string `json:"status"`
	AdminPassword string `json:"adminPassword"`
}

// UpdateStatus handles PATCH /api/problems/{id} (admin only).
func (h *ProblemHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request body"})
		return
	}

	if !h.admin.Verify(req.AdminPassword) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
		return
	}

	p, err := h.problemService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		var ve *validate.Error
		switch {
		case errors.As(err, &ve):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": ve.Message})
		case errors.Is(err, repository.ErrNotFound):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Problem not found"})
		default:
			slog.Error("update problem status failed", "id", id, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to update problem"})
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// deleteRequest is the expected JSON body for DELETE /api/problems/{id}.
type deleteRequest struct {
	AdminPassword string `json:"adminPassword"`
}

// deleteResponse returns the deleted record so clients can offer undo.
type deleteResponse struct {
	Message string         `json:"message"`
	Problem *model.Problem `json:"problem"`
}

// Delete handles DELETE /api/problems/{id} (admin only).
func (h *ProblemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request body"})
		return
	}

	if !h.admin.Verify(req.AdminPassword) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
		return
	}

	p, err := h.problemService.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Problem not found"})
			return
		}
		slog.Error("delete problem failed", "id", id, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to delete problem"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(deleteResponse{Message: "Problem deleted", Problem: p})
}
