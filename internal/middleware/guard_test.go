package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/voltpoint/voltpoint/internal/auth"
	"github.com/voltpoint/voltpoint/internal/model"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// requestAs builds a request carrying the given identity, or none when nil.
func requestAs(t *testing.T, identity *model.Identity) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/api/veicoli", nil)
	if identity != nil {
		r = r.WithContext(auth.ContextWithIdentity(r.Context(), identity))
	}
	return r
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		identity   *model.Identity
		wantStatus int
	}{
		{"no session", nil, http.StatusUnauthorized},
		{"user session", &model.Identity{ID: "u1", Role: model.RoleUser}, http.StatusOK},
		{"admin session", &model.Identity{ID: "a1", Role: model.RoleAdmin}, http.StatusOK},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			RequireAuth()(okHandler()).ServeHTTP(w, requestAs(t, tt.identity))
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		identity   *model.Identity
		wantStatus int
	}{
		{"no session", nil, http.StatusUnauthorized},
		{"user session", &model.Identity{ID: "u1", Role: model.RoleUser}, http.StatusForbidden},
		{"admin session", &model.Identity{ID: "a1", Role: model.RoleAdmin}, http.StatusOK},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			RequireAdmin()(okHandler()).ServeHTTP(w, requestAs(t, tt.identity))
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		identity   *model.Identity
		wantStatus int
	}{
		{"no session", nil, http.StatusUnauthorized},
		{"admin session", &model.Identity{ID: "a1", Role: model.RoleAdmin}, http.StatusForbidden},
		{"user session", &model.Identity{ID: "u1", Role: model.RoleUser}, http.StatusOK},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			RequireUser()(okHandler()).ServeHTTP(w, requestAs(t, tt.identity))
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestGuardError_Body(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	RequireAdmin()(okHandler()).ServeHTTP(w, requestAs(t, nil))

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %s, want application/json", ct)
	}

	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body.Code != "UNAUTHORIZED" {
		t.Errorf("code = %s, want UNAUTHORIZED", body.Code)
	}
	if body.Error == "" {
		t.Error("error message should not be empty")
	}
}
