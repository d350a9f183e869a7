package other

import (
	"net/url"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/utils/breadcrumb"
)

// BasePageData is embedded by every page; layout.html reads only these fields.
type BasePageData struct {
	Title         string
	SiteName      string
	Settings      models.SettingsMap
	Categories    []models.Category
	ActiveSlug    string
	IsAdmin       bool
	AdminUsername string
	CSRFToken     string
	CSRFField     string
	Message       string
	MessageStatus string
	Query         url.Values
	Breadcrumbs   []breadcrumb.Breadcrumb
	IsAdminPage   bool
	IsAuthPage    bool
	CurrentPath   string
	Year          int
}
