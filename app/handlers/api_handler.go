package handlers

import (
	"log"
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

// APIResponse mirrors the {data, error} shape of the hosted backend client.
type APIResponse struct {
	Data  interface{} `json:"data"`
	Error *string     `json:"error"`
}

type SettingsPayload struct {
	Items []models.Setting   `json:"items"`
	Map   models.SettingsMap `json:"map"`
}

type APIHandler struct {
	render       *render.Render
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
	heroRepo     repositories.HeroImageRepository
	settingRepo  repositories.SettingRepository
}

func NewAPIHandler(r *render.Render, c repositories.CategoryRepository, p repositories.ProductRepository, h repositories.HeroImageRepository, s repositories.SettingRepository) *APIHandler {
	return &APIHandler{render: r, categoryRepo: c, productRepo: p, heroRepo: h, settingRepo: s}
}

func listOptions(r *http.Request) repositories.ListOptions {
	return repositories.ListOptions{ActiveOnly: r.URL.Query().Get("active") == "true"}
}

func (h *APIHandler) respond(w http.ResponseWriter, op string, data interface{}, err error, message string) {
	if err != nil {
		log.Printf("APIHandler.%s: %v", op, err)
		h.render.JSON(w, http.StatusInternalServerError, APIResponse{Data: nil, Error: &message})
		return
	}
	h.render.JSON(w, http.StatusOK, APIResponse{Data: data})
}

func (h *APIHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.List(r.Context(), listOptions(r))
	h.respond(w, "Categories", categories, err, "حدث خطأ في تحميل الأقسام")
}

func (h *APIHandler) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.List(r.Context(), listOptions(r))
	h.respond(w, "Products", products, err, "حدث خطأ في تحميل المنتجات")
}

func (h *APIHandler) HeroImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.heroRepo.List(r.Context(), listOptions(r))
	h.respond(w, "HeroImages", images, err, "حدث خطأ في تحميل صور العرض")
}

func (h *APIHandler) ProductImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.productRepo.ListImages(r.Context(), mux.Vars(r)["id"], listOptions(r))
	h.respond(w, "ProductImages", images, err, "حدث خطأ في تحميل صور المنتج")
}

func (h *APIHandler) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingRepo.List(r.Context())
	payload := SettingsPayload{Items: settings, Map: models.NewSettingsMap(settings)}
	h.respond(w, "Settings", payload, err, "حدث خطأ في تحميل الإعدادات")
}
