package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"budgy/internal/api/controllers"
	"budgy/internal/config"
	mem "budgy/pkg/memcache"
	"budgy/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, requireToken bool) (*gin.Engine, *utils.TokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer := utils.NewTokenIssuer("router-secret", time.Hour)
	params := RouterParams{
		Config: &config.Config{
			Server: config.ServerConfig{Mode: "test"},
			Auth: config.AuthConfig{
				RequireToken:     requireToken,
				LoginMaxAttempts: 1,
				LoginWindow:      time.Minute,
			},
		},
		Log:           zap.NewNop(),
		Issuer:        issuer,
		LoginAttempts: mem.NewLoginAttempts(),
		Users:         controllers.NewUserController(nil, issuer, zap.NewNop()),
		Categories:    controllers.NewCategoryController(nil),
		Expenses:      controllers.NewExpenseController(nil, nil),
		Incomes:       controllers.NewIncomeController(nil, nil),
		Savings:       controllers.NewSavingsController(nil, nil),
		Alerts:        controllers.NewAlertController(nil),
		Reports:       controllers.NewReportController(nil, nil),
	}

	var r *gin.Engine
	require.NotPanics(t, func() { r = ProvideRouter(params) })
	return r, issuer
}

func serve(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	return serveBody(r, method, path, token, `{}`)
}

func serveBody(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_SecuredRoutesNeedToken(t *testing.T) {
	r, issuer := newTestRouter(t, true)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/users/" + uuid.NewString() + "/summary"},
		{http.MethodGet, "/api/expense-categories"},
		{http.MethodGet, "/api/expenses/user/" + uuid.NewString() + "/total"},
		{http.MethodGet, "/api/incomes/user/" + uuid.NewString() + "/period"},
		{http.MethodGet, "/api/savings/priority/HIGH"},
		{http.MethodPatch, "/api/alerts/" + uuid.NewString() + "/read"},
		{http.MethodGet, "/api/users/" + uuid.NewString() + "/export"},
	}
	for _, p := range paths {
		w := serve(r, p.method, p.path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}

	token, err := issuer.CreateToken(uuid.New(), "USER")
	require.NoError(t, err)
	w := serve(r, http.MethodGet, "/api/users/not-a-uuid", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, http.MethodGet, "/api/users", token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(r, http.MethodGet, "/api/trace-id", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}

func TestRouter_PublicRoutes(t *testing.T) {
	r, _ := newTestRouter(t, true)

	w := serve(r, http.MethodPost, "/api/users", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serveBody(r, http.MethodPost, "/api/users/login", "", "not json")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serveBody(r, http.MethodPost, "/api/users/login", "", "not json")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRouter_OpenWhenTokensDisabled(t *testing.T) {
	r, _ := newTestRouter(t, false)

	w := serve(r, http.MethodDelete, "/api/expenses/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
