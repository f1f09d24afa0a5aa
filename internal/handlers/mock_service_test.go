package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type mockAuth struct {
	registerID  int
	registerErr error
	loginID     int
	loginErr    error

	lastRegister service.RegisterInput
	lastEmail    string
	lastPassword string
}

func (m *mockAuth) Register(_ context.Context, in service.RegisterInput) (int, error) {
	m.lastRegister = in
	return m.registerID, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, email, password string) (int, error) {
	m.lastEmail, m.lastPassword = email, password
	return m.loginID, m.loginErr
}

type mockHealth struct{ err error }

func (m *mockHealth) Ping(context.Context) error { return m.err }

func newTestRouter(s *service.Service, opts ...Option) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, opts...)
	return h.InitRoutes()
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}
