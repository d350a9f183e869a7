package sessions

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "catalog-admin"

	loggedInSessionKey = "admin_logged_in"
	loggedAtSessionKey = "admin_session"

	// TTL is checked when the session is read, not enforced by the cookie.
	TTL = 24 * time.Hour
)

// AdminSession is the authenticated admin state handed to handlers through the request context.
type AdminSession struct {
	Username   string
	LoggedInAt time.Time
}

func (s AdminSession) ExpiresAt() time.Time {
	return s.LoggedInAt.Add(TTL)
}

// IsExpired reports whether a login stamped at loggedInMs (epoch ms) is older than TTL at nowMs.
func IsExpired(loggedInMs, nowMs int64) bool {
	return nowMs-loggedInMs > TTL.Milliseconds()
}

type AdminSessionStore struct {
	store *sessions.CookieStore
	now   func() time.Time
}

func NewAdminSessionStore(secure bool, keyPairs ...[]byte) *AdminSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(TTL / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &AdminSessionStore{store: store, now: time.Now}
}

// WithClock replaces the time source; tests use it to move past TTL.
func (s *AdminSessionStore) WithClock(now func() time.Time) *AdminSessionStore {
	s.now = now
	return s
}

func (s *AdminSessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := s.store.Get(r, sessionCookieName)
	if err != nil {
		log.Printf("AdminSessionStore.getSession: discarding unreadable session: %v", err)
	}
	return session
}

func (s *AdminSessionStore) Login(w http.ResponseWriter, r *http.Request, username string) error {
	session := s.getSession(r)
	session.Values[loggedInSessionKey] = "true"
	session.Values[loggedAtSessionKey] = strconv.FormatInt(s.now().UnixMilli(), 10)
	session.Values["admin_username"] = username
	session.Options.MaxAge = int(TTL / time.Second)
	return session.Save(r, w)
}

func (s *AdminSessionStore) Logout(w http.ResponseWriter, r *http.Request) error {
	session := s.getSession(r)
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// Current returns the admin session, or nil when the flags are missing or older than TTL.
// An expired session is cleared.
func (s *AdminSessionStore) Current(w http.ResponseWriter, r *http.Request) *AdminSession {
	session := s.getSession(r)

	flag, _ := session.Values[loggedInSessionKey].(string)
	stamp, _ := session.Values[loggedAtSessionKey].(string)
	if flag != "true" || stamp == "" {
		return nil
	}

	loggedInMs, err := strconv.ParseInt(stamp, 10, 64)
	if err != nil || IsExpired(loggedInMs, s.now().UnixMilli()) {
		if clearErr := s.Logout(w, r); clearErr != nil {
			log.Printf("AdminSessionStore.Current: failed to clear expired session: %v", clearErr)
		}
		return nil
	}

	username, _ := session.Values["admin_username"].(string)
	return &AdminSession{Username: username, LoggedInAt: time.UnixMilli(loggedInMs)}
}

type contextKey string

const adminSessionContextKey contextKey = "adminSession"

func WithAdminSession(ctx context.Context, s *AdminSession) context.Context {
	return context.WithValue(ctx, adminSessionContextKey, s)
}

func AdminSessionFromContext(ctx context.Context) *AdminSession {
	s, _ := ctx.Value(adminSessionContextKey).(*AdminSession)
	return s
}
