package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/share2solve/backend/internal/model"
)

func TestClient_Problems_SendsFilters(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]*model.Problem{{ID: "1", Email: "a@b.com"}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	problems, err := c.Problems(context.Background(), ListFilters{
		Search: "vpn", Status: "pending", SortBy: "email", Limit: 25,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(problems) != 1 || problems[0].ID != "1" {
		t.Errorf("unexpected problems: %+v", problems)
	}
	for _, want := range []string{"search=vpn", "status=pending", "sortBy=email", "limit=25"} {
		if !containsParam(gotQuery, want) {
			t.Errorf("expected %q in query %q", want, gotQuery)
		}
	}
}

func containsParam(query, param string) bool {
	for _, p := range strings.Split(query, "&") {
		if p == param {
			return true
		}
	}
	return false
}

func TestClient_Submit_PostsBody(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(&model.Problem{ID: "new-id", Status: model.StatusPending})
	}))
	defer srv.Close()

	c := New(srv.URL)
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	created, err := c.Submit(context.Background(), "a@b.com", "the vpn is broken", ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "new-id" {
		t.Errorf("unexpected created record: %+v", created)
	}
	if got["email"] != "a@b.com" || got["problem"] != "the vpn is broken" {
		t.Errorf("unexpected request body: %v", got)
	}
	if got["timestamp"] != "2024-03-01T12:00:00Z" {
		t.Errorf("expected RFC3339 timestamp, got %v", got["timestamp"])
	}
}

func TestClient_Submit_OmitsZeroTimestamp(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(&model.Problem{ID: "x"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Submit(context.Background(), "a@b.com", "the vpn is broken", time.Time{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, present := got["timestamp"]; present {
		t.Error("expected timestamp to be omitted when zero")
	}
}

func TestClient_VerifyAdmin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] == "good" {
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Invalid password"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.VerifyAdmin(context.Background(), "good"); err != nil {
		t.Errorf("expected success, got %v", err)
	}

	err := c.VerifyAdmin(context.Background(), "bad")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 APIError, got %v", err)
	}
	if apiErr != nil && apiErr.Message != "Invalid password" {
		t.Errorf("expected decoded server message, got %q", apiErr.Message)
	}
}

func TestClient_UpdateStatus_ThreadsCredential(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/problems/id-1" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(&model.Problem{ID: "id-1", Status: got["status"]})
	}))
	defer srv.Close()

	c := New(srv.URL)
	updated, err := c.UpdateStatus(context.Background(), "id-1", "resolved", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != "resolved" {
		t.Errorf("unexpected updated record: %+v", updated)
	}
	if got["adminPassword"] != "hunter2" {
		t.Errorf("expected credential in body, got %v", got)
	}
}

func TestClient_Delete_ReturnsPriorContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Problem deleted",
			"problem": &model.Problem{ID: "id-1", Email: "a@b.com", Problem: "gone now"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	deleted, err := c.Delete(context.Background(), "id-1", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted == nil || deleted.Email != "a@b.com" {
		t.Errorf("expected prior content, got %+v", deleted)
	}
}

func TestClient_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Problem not found"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Delete(context.Background(), "missing", "hunter2")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 APIError, got %v", err)
	}
}
