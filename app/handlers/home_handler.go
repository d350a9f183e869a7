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
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	render       *render.Render
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
	heroRepo     repositories.HeroImageRepository
}

func NewHomeHandler(r *render.Render, c repositories.CategoryRepository, p repositories.ProductRepository, h repositories.HeroImageRepository) *HomeHandler {
	return &HomeHandler{
		render:       r,
		categoryRepo: c,
		productRepo:  p,
		heroRepo:     h,
	}
}

type HomePageData struct {
	other.BasePageData
	Slides           []carousel.Slide
	SlideIndex       int
	PrevSlide        int
	NextSlide        int
	IntervalMs       int64
	HeroTitle        string
	HeroSubtitle     string
	Products         []models.Product
	SelectedCategory *models.Category
	LoadError        string
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderCatalog(w, r, services.AllCategories)
}

func (h *HomeHandler) Category(w http.ResponseWriter, r *http.Request) {
	h.renderCatalog(w, r, mux.Vars(r)["slug"])
}

func (h *HomeHandler) renderCatalog(w http.ResponseWriter, r *http.Request, slug string) {
	data := &HomePageData{BasePageData: helpers.GetBaseData(r, "")}
	data.ActiveSlug = slug
	data.Breadcrumbs = []breadcrumb.Breadcrumb{{Name: "الرئيسية", URL: "/"}}

	categories, err := h.categoryRepo.List(r.Context(), repositories.ListOptions{ActiveOnly: true})
	if err != nil {
		log.Printf("HomeHandler.renderCatalog: failed to load categories: %v", err)
		data.LoadError = "حدث خطأ في تحميل الأقسام"
	}
	data.Categories = categories

	products, err := h.productRepo.List(r.Context(), repositories.ListOptions{ActiveOnly: true})
	if err != nil {
		log.Printf("HomeHandler.renderCatalog: failed to load products: %v", err)
		data.LoadError = "حدث خطأ في تحميل المنتجات"
	}
	data.Products = services.FilterByCategory(products, categories, slug)

	status := http.StatusOK
	if slug != services.AllCategories {
		for i := range categories {
			if categories[i].Slug == slug {
				data.SelectedCategory = &categories[i]
				break
			}
		}
		if data.SelectedCategory == nil {
			status = http.StatusNotFound
			data.Title = "القسم غير موجود"
		} else {
			data.Title = data.SelectedCategory.Name
			data.Breadcrumbs = append(data.Breadcrumbs, breadcrumb.Breadcrumb{Name: data.SelectedCategory.Name, URL: "/category/" + slug})
		}
	}

	heroes, err := h.heroRepo.List(r.Context(), repositories.ListOptions{ActiveOnly: true})
	if err != nil {
		log.Printf("HomeHandler.renderCatalog: failed to load hero images: %v", err)
	}
	if len(heroes) > models.MaxActiveHeroImages {
		heroes = heroes[:models.MaxActiveHeroImages]
	}
	data.Slides = carousel.Slides(heroes, data.Settings.Get("hero_subtitle", ""))

	slide, _ := strconv.Atoi(r.URL.Query().Get("slide"))
	data.SlideIndex = carousel.Normalize(slide, len(data.Slides))
	data.PrevSlide = carousel.Prev(data.SlideIndex, len(data.Slides))
	data.NextSlide = carousel.Next(data.SlideIndex, len(data.Slides))
	data.IntervalMs = carousel.Interval.Milliseconds()

	current := data.Slides[data.SlideIndex]
	data.HeroTitle = data.Settings.Get("hero_title", current.Title)
	data.HeroSubtitle = data.Settings.Get("hero_subtitle", current.Subtitle)

	h.render.HTML(w, status, "home", data)
}
