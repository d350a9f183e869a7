package sessions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(now *time.Time) *AdminSessionStore {
	return NewAdminSessionStore(false, securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32)).
		WithClock(func() time.Time { return *now })
}

func loginCookies(t *testing.T, store *AdminSessionStore) []*http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, store.Login(rec, httptest.NewRequest(http.MethodPost, "/admin/login", nil), "admin"))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func requestWith(cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func TestIsExpiredBoundary(t *testing.T) {
	const day = int64(86_400_000)
	assert.False(t, IsExpired(0, day-1))
	assert.False(t, IsExpired(0, day))
	assert.True(t, IsExpired(0, day+1))
}

func TestCurrentWithoutCookieIsUnauthenticated(t *testing.T) {
	now := time.Now()
	store := newTestStore(&now)
	assert.Nil(t, store.Current(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin", nil)))
}

func TestSessionYoungerThanDayIsAuthenticated(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := newTestStore(&now)
	cookies := loginCookies(t, store)

	now = now.Add(23 * time.Hour)
	session := store.Current(httptest.NewRecorder(), requestWith(cookies))
	require.NotNil(t, session)
	assert.Equal(t, "admin", session.Username)
	assert.Equal(t, time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC), session.ExpiresAt().UTC())
}

func TestSessionOlderThanDayIsClearedAndUnauthenticated(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := newTestStore(&now)
	cookies := loginCookies(t, store)

	now = now.Add(24*time.Hour + time.Millisecond)
	rec := httptest.NewRecorder()
	assert.Nil(t, store.Current(rec, requestWith(cookies)))

	cleared := rec.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.True(t, cleared[0].MaxAge < 0)
}

func TestLogoutClearsSession(t *testing.T) {
	now := time.Now()
	store := newTestStore(&now)
	cookies := loginCookies(t, store)

	rec := httptest.NewRecorder()
	require.NoError(t, store.Logout(rec, requestWith(cookies)))
	assert.Nil(t, store.Current(httptest.NewRecorder(), requestWith(rec.Result().Cookies())))
}

func TestContextRoundTrip(t *testing.T) {
	assert.Nil(t, AdminSessionFromContext(context.Background()))
	s := &AdminSession{Username: "admin"}
	assert.Same(t, s, AdminSessionFromContext(WithAdminSession(context.Background(), s)))
}
