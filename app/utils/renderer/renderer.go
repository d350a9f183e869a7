// renderer/renderer.go
package renderer

import (
	"html/template"
	"strings"
	"time"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/utils/format"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

const AdminLayout = "admin/layout"

func New(directory string, isDevelopment bool) *render.Render {
	return render.New(render.Options{
		Directory:     directory,
		Layout:        "layout",
		Extensions:    []string{".html"},
		IsDevelopment: isDevelopment,
		Funcs:         []template.FuncMap{Funcs()},
	})
}

// AdminHTML selects the admin layout for render.HTML.
func AdminHTML() render.HTMLOptions {
	return render.HTMLOptions{Layout: AdminLayout}
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"until": func(count int) []int {
			items := make([]int, count)
			for i := 0; i < count; i++ {
				items[i] = i
			}
			return items
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"price": func(amount decimal.Decimal, currency string) string {
			return format.Price(amount, currency)
		},
		"amount": format.Amount,
		"date": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format("2006-01-02 15:04")
		},
		"statusLabel":   models.OrderStatusLabel,
		"orderStatuses": func() interface{} { return models.OrderStatuses },
		"multiline":     models.IsMultilineSettingKey,
		"categoryIcons": func() map[string]string { return models.CategoryIcons },
		"truncate": func(s string, n int) string {
			r := []rune(s)
			if len(r) <= n {
				return s
			}
			return strings.TrimSpace(string(r[:n])) + "…"
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}
}
