package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"expense_tracker/internal/service"
)

func TestHealth(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   int
		status string
	}{
		{"up", nil, http.StatusOK, statusOK},
		{"down", errors.New("database is closed"), http.StatusServiceUnavailable, statusUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: &mockAuth{}, Health: &mockHealth{err: tc.err}})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			if w.Code != tc.code {
				t.Fatalf("status=%d want %d", w.Code, tc.code)
			}
			if got := decodeBody(t, w.Body.Bytes())["status"]; got != tc.status {
				t.Fatalf("status field=%q want %q", got, tc.status)
			}
		})
	}
}

func TestSwaggerRoute(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}, Health: &mockHealth{}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}
