package middlewares

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
)

type contextKey string

const (
	SettingsKey contextKey = "settings"
)

// SettingsMiddleware loads the settings table once per request for the layout and footer.
func SettingsMiddleware(settingRepo repositories.SettingRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			settings, err := settingRepo.List(r.Context())
			if err != nil {
				log.Printf("SettingsMiddleware: Error loading settings for %s: %v", r.URL.Path, err)
				settings = nil
			}

			ctx := context.WithValue(r.Context(), SettingsKey, models.NewSettingsMap(settings))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SettingsFromContext(ctx context.Context) models.SettingsMap {
	if settings, ok := ctx.Value(SettingsKey).(models.SettingsMap); ok {
		return settings
	}
	return models.SettingsMap{}
}

func MethodOverrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			override := r.URL.Query().Get("_method")
			if override == "" && !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
				_ = r.ParseForm()
				override = r.Form.Get("_method")
			}
			if override != "" {
				r.Method = strings.ToUpper(override)
			}
		}
		next.ServeHTTP(w, r)
	})
}
