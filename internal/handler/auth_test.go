package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketverse/booking/internal/config"
	"github.com/ticketverse/booking/internal/database"
	"github.com/ticketverse/booking/internal/repository"
	"github.com/ticketverse/booking/internal/session"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *sql.DB) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Config{
		JWTSecret:      "test-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
		BcryptCost:     4,
	}
	return NewAuthHandler(cfg, repository.NewUserRepo(db), repository.NewTokenRepo(db), session.NewManager()), db
}

func postJSON(t *testing.T, handler echo.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestRegisterLoginRefresh(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := postJSON(t, h.Register, "/v1/auth/register", `{"name":"Ada","email":"Ada@Example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var reg authResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))
	assert.Equal(t, "ada@example.com", reg.User.Email)
	assert.NotEmpty(t, reg.Access.Token)
	assert.NotEmpty(t, reg.Refresh.Token)

	rec = postJSON(t, h.Login, "/v1/auth/login", `{"email":"ada@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var login authResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.Equal(t, reg.User.ID, login.User.ID)

	rec = postJSON(t, h.Refresh, "/v1/auth/refresh", `{"refresh_token":"`+login.Refresh.Token+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Rotation: the consumed refresh token is dead.
	rec = postJSON(t, h.Refresh, "/v1/auth/refresh", `{"refresh_token":"`+login.Refresh.Token+`"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := postJSON(t, h.Register, "/v1/auth/register", `{"name":"Ada","email":"ada@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.Register, "/v1/auth/register", `{"name":"Ada Again","email":"ADA@example.com","password":"other"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := postJSON(t, h.Register, "/v1/auth/register", `{"name":"Ada","email":"ada@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.Login, "/v1/auth/login", `{"email":"ada@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postJSON(t, h.Login, "/v1/auth/login", `{"email":"nobody@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterMissingFields(t *testing.T) {
	h, _ := newAuthHandler(t)
	rec := postJSON(t, h.Register, "/v1/auth/register", `{"email":"ada@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
