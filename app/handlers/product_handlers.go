package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/models/other"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/Rakhulsr/go-catalog/app/utils/breadcrumb"
	"github.com/Rakhulsr/go-catalog/app/utils/carousel"
	"github.com/Rakhulsr/go-catalog/app/utils/format"
	"github.com/Rakhulsr/go-catalog/app/utils/sessions"
	"github.com/Rakhulsr/go-catalog/app/utils/whatsapp"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

// EventTracker is satisfied by *services.Tracker.
type EventTracker interface {
	TrackView(productID, visitorIP string) bool
	TrackInquiry(productID, visitorIP string) bool
}

type ProductHandler struct {
	repo          repositories.ProductRepository
	categoryRepo  repositories.CategoryRepository
	tracker       EventTracker
	render        *render.Render
	whatsappPhone string
}

func NewProductHandler(p repositories.ProductRepository, c repositories.CategoryRepository, t EventTracker, r *render.Render, whatsappPhone string) *ProductHandler {
	return &ProductHandler{repo: p, categoryRepo: c, tracker: t, render: r, whatsappPhone: whatsappPhone}
}

type ProductDetailPageData struct {
	other.BasePageData
	Product      models.Product
	Category     *models.Category
	Gallery      []string
	ImageIndex   int
	PrevImage    int
	NextImage    int
	CurrentImage string
	WhatsAppPath string
}

type NotFoundPageData struct {
	other.BasePageData
}

// findVisible hides inactive products from everyone but a logged-in admin.
func (h *ProductHandler) findVisible(r *http.Request, id string) (*models.Product, error) {
	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil || product == nil {
		return nil, err
	}
	if !product.IsActive && sessions.AdminSessionFromContext(r.Context()) == nil {
		return nil, nil
	}
	return product, nil
}

func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	product, err := h.findVisible(r, productID)
	if err != nil {
		log.Printf("ProductHandler.Detail: failed to load product %s: %v", productID, err)
	}
	if product == nil {
		RenderNotFound(h.render, w, r)
		return
	}

	h.tracker.TrackView(product.ID, helpers.ClientIP(r))

	data := &ProductDetailPageData{BasePageData: helpers.GetBaseData(r, product.Name)}
	data.Product = *product
	data.WhatsAppPath = "/products/" + product.ID + "/whatsapp"

	categories, err := h.categoryRepo.List(r.Context(), repositories.ListOptions{ActiveOnly: true})
	if err != nil {
		log.Printf("ProductHandler.Detail: failed to load categories: %v", err)
	}
	data.Categories = categories
	for i := range categories {
		if categories[i].ID == product.CategoryRef() {
			data.Category = &categories[i]
			data.ActiveSlug = categories[i].Slug
		}
	}

	data.Breadcrumbs = []breadcrumb.Breadcrumb{{Name: "الرئيسية", URL: "/"}}
	if data.Category != nil {
		data.Breadcrumbs = append(data.Breadcrumbs, breadcrumb.Breadcrumb{Name: data.Category.Name, URL: "/category/" + data.Category.Slug})
	}
	data.Breadcrumbs = append(data.Breadcrumbs, breadcrumb.Breadcrumb{Name: product.Name, URL: "/products/" + product.ID})

	data.Gallery = services.Gallery(*product)
	image, _ := strconv.Atoi(r.URL.Query().Get("image"))
	data.ImageIndex = carousel.Normalize(image, len(data.Gallery))
	data.PrevImage = carousel.Prev(data.ImageIndex, len(data.Gallery))
	data.NextImage = carousel.Next(data.ImageIndex, len(data.Gallery))
	if len(data.Gallery) > 0 {
		data.CurrentImage = data.Gallery[data.ImageIndex]
	}

	h.render.HTML(w, http.StatusOK, "product", data)
}

// WhatsApp records an inquiry and sends the visitor to the wa.me deep link.
func (h *ProductHandler) WhatsApp(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	product, err := h.findVisible(r, productID)
	if err != nil {
		log.Printf("ProductHandler.WhatsApp: failed to load product %s: %v", productID, err)
	}
	if product == nil {
		RenderNotFound(h.render, w, r)
		return
	}

	h.tracker.TrackInquiry(product.ID, helpers.ClientIP(r))

	settings := helpers.GetBaseData(r, "").Settings
	phone := whatsapp.Digits(settings.Get("contact_whatsapp", ""))
	if phone == "" {
		phone = h.whatsappPhone
	}

	message := whatsapp.Message(product.Name, product.Description, format.Amount(product.Price), product.PriceCurrency)
	http.Redirect(w, r, whatsapp.Link(phone, message), http.StatusFound)
}

func RenderNotFound(rnd *render.Render, w http.ResponseWriter, r *http.Request) {
	data := &NotFoundPageData{BasePageData: helpers.GetBaseData(r, "الصفحة غير موجودة")}
	data.Breadcrumbs = []breadcrumb.Breadcrumb{{Name: "الرئيسية", URL: "/"}}
	rnd.HTML(w, http.StatusNotFound, "not_found", data)
}

// NotFound is the router fallback.
func NotFound(rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RenderNotFound(rnd, w, r)
	}
}
