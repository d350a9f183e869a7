package helpers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Rakhulsr/go-catalog/app/middlewares"
	"github.com/Rakhulsr/go-catalog/app/models/other"
	"github.com/Rakhulsr/go-catalog/app/utils/breadcrumb"
	"github.com/Rakhulsr/go-catalog/app/utils/sessions"
	"github.com/gorilla/csrf"
)

const defaultSiteName = "متجر الهدايا اليدوية"

func GetBaseData(r *http.Request, title string) other.BasePageData {
	settings := middlewares.SettingsFromContext(r.Context())

	base := other.BasePageData{
		Title:         title,
		SiteName:      settings.Get("site_name", defaultSiteName),
		Settings:      settings,
		Query:         r.URL.Query(),
		Breadcrumbs:   []breadcrumb.Breadcrumb{},
		CurrentPath:   r.URL.Path,
		IsAdminPage:   strings.HasPrefix(r.URL.Path, "/admin"),
		CSRFToken:     csrf.Token(r),
		CSRFField:     "gorilla.csrf.Token",
		MessageStatus: r.URL.Query().Get("status"),
		Message:       r.URL.Query().Get("message"),
		Year:          time.Now().Year(),
	}
	if base.Title == "" {
		base.Title = settings.Get("site_title", base.SiteName)
	}

	if admin := sessions.AdminSessionFromContext(r.Context()); admin != nil {
		base.IsAdmin = true
		base.AdminUsername = admin.Username
	}

	return base
}
