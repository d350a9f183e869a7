package middlewares

import (
	"log"
	"net/http"
	"net/url"

	"github.com/Rakhulsr/go-catalog/app/utils/sessions"
)

// AdminGate lets a request through only with a live admin session, which it places in the context.
func AdminGate(store *sessions.AdminSessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin := store.Current(w, r)
			if admin == nil {
				log.Printf("AdminGate: no valid admin session for %s, redirecting to login", r.URL.Path)
				http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("يجب تسجيل الدخول للوصول إلى لوحة التحكم."), http.StatusFound)
				return
			}

			ctx := sessions.WithAdminSession(r.Context(), admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAdmin exposes the admin session on public pages without gating them.
func OptionalAdmin(store *sessions.AdminSessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if admin := store.Current(w, r); admin != nil {
				r = r.WithContext(sessions.WithAdminSession(r.Context(), admin))
			}
			next.ServeHTTP(w, r)
		})
	}
}
