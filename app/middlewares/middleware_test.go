package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Rakhulsr/go-catalog/app/db/testdb"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/Rakhulsr/go-catalog/app/utils/sessions"
	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodOverride(t *testing.T) {
	var seen string
	handler := MethodOverrideMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Method
	}))

	req := httptest.NewRequest(http.MethodPost, "/admin/products/1", strings.NewReader("_method=delete"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, http.MethodDelete, seen)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/x?_method=DELETE", nil))
	assert.Equal(t, http.MethodDelete, seen)

	req = httptest.NewRequest(http.MethodPost, "/admin/products/add", strings.NewReader("--b--"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=b")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, http.MethodPost, seen)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?_method=DELETE", nil))
	assert.Equal(t, http.MethodGet, seen)
}

func TestSettingsMiddleware(t *testing.T) {
	db := testdb.Open(t)
	repo := repositories.NewSettingRepository(db)
	require.NoError(t, repo.Create(context.Background(), &models.Setting{Key: "site_name", Value: "متجري"}))

	var settings models.SettingsMap
	handler := SettingsMiddleware(repo)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		settings = SettingsFromContext(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "متجري", settings.Get("site_name", ""))
	assert.Equal(t, "fallback", settings.Get("missing", "fallback"))
}

func TestAdminGate(t *testing.T) {
	store := sessions.NewAdminSessionStore(false, securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32))
	var admin *sessions.AdminSession
	gated := AdminGate(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin = sessions.AdminSessionFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	gated.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "/admin/login"))
	assert.Nil(t, admin)

	login := httptest.NewRecorder()
	require.NoError(t, store.Login(login, httptest.NewRequest(http.MethodPost, "/admin/login", nil), "admin"))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range login.Result().Cookies() {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	gated.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, admin)
	assert.Equal(t, "admin", admin.Username)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), admin.ExpiresAt(), time.Minute)
}
