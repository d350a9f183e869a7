package admin

import (
	"errors"
	"log"
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/models/other"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/Rakhulsr/go-catalog/app/storage"
	"github.com/Rakhulsr/go-catalog/app/utils/breadcrumb"
	"github.com/Rakhulsr/go-catalog/app/utils/renderer"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

const maxFormMemory = 32 << 20

type AdminHandler struct {
	render       *render.Render
	validator    *validator.Validate
	store        storage.Store
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	heroRepo     repositories.HeroImageRepository
	orderRepo    repositories.OrderRepository
	messageRepo  repositories.ContactMessageRepository
	colorRepo    repositories.ColorRepository
	sizeRepo     repositories.SizeRepository
	heroSvc      *services.HeroImageService
	settingsSvc  *services.SettingsService
	dashboardSvc *services.DashboardService
}

type Dependencies struct {
	Render       *render.Render
	Validator    *validator.Validate
	Store        storage.Store
	Products     repositories.ProductRepository
	Categories   repositories.CategoryRepository
	HeroImages   repositories.HeroImageRepository
	Orders       repositories.OrderRepository
	Messages     repositories.ContactMessageRepository
	Colors       repositories.ColorRepository
	Sizes        repositories.SizeRepository
	HeroImageSvc *services.HeroImageService
	SettingsSvc  *services.SettingsService
	DashboardSvc *services.DashboardService
}

func NewAdminHandler(deps Dependencies) *AdminHandler {
	return &AdminHandler{
		render:       deps.Render,
		validator:    deps.Validator,
		store:        deps.Store,
		productRepo:  deps.Products,
		categoryRepo: deps.Categories,
		heroRepo:     deps.HeroImages,
		orderRepo:    deps.Orders,
		messageRepo:  deps.Messages,
		colorRepo:    deps.Colors,
		sizeRepo:     deps.Sizes,
		heroSvc:      deps.HeroImageSvc,
		settingsSvc:  deps.SettingsSvc,
		dashboardSvc: deps.DashboardSvc,
	}
}

type AdminPageData struct {
	other.BasePageData
	Stats services.DashboardStats
}

// baseData builds the admin page header; crumbs are appended after the dashboard crumb.
func (h *AdminHandler) baseData(r *http.Request, title string, crumbs ...breadcrumb.Breadcrumb) other.BasePageData {
	base := helpers.GetBaseData(r, title)
	base.IsAdminPage = true
	base.Breadcrumbs = append([]breadcrumb.Breadcrumb{{Name: "لوحة التحكم", URL: "/admin"}}, crumbs...)
	return base
}

func (h *AdminHandler) html(w http.ResponseWriter, status int, name string, data interface{}) {
	h.render.HTML(w, status, name, data, renderer.AdminHTML())
}

func (h *AdminHandler) validationErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return helpers.FormatValidationErrors(verrs)
	}
	return map[string]string{"form": err.Error()}
}

// parseForm accepts both multipart (uploads) and urlencoded bodies.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxFormMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}

// uploadFormImage stores the file posted in field under a random key. It returns "" when
// no file was chosen.
func (h *AdminHandler) uploadFormImage(r *http.Request, field, bucket string) (string, error) {
	if r.MultipartForm == nil {
		return "", nil
	}
	file, _, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	return storage.UploadImage(r.Context(), h.store, bucket, storage.RandomKey, file)
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := &AdminPageData{BasePageData: h.baseData(r, "لوحة التحكم")}

	stats, err := h.dashboardSvc.Stats(r.Context())
	if err != nil {
		log.Printf("Dashboard: some widgets failed to load: %v", err)
		data.Message = "تعذر تحميل بعض الإحصائيات"
		data.MessageStatus = "error"
	}
	data.Stats = stats

	h.html(w, http.StatusOK, "admin/dashboard", data)
}

// categoryName resolves a product's category for list views.
func categoryName(categories []models.Category, id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}
