package admin

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/models/other"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/Rakhulsr/go-catalog/app/storage"
	"github.com/Rakhulsr/go-catalog/app/utils/breadcrumb"
	"github.com/gorilla/mux"
)

const heroLimitMessage = "لا يمكن تفعيل أكثر من 5 صور في البانر"

type AdminHeroImagePageData struct {
	other.BasePageData
	Images      []models.HeroImage
	ActiveCount int
	MaxActive   int
	ImageData   *HeroImageForm
	IsEdit      bool
	FormAction  string
	Errors      map[string]string
}

type HeroImageForm struct {
	ID        string
	Title     string `form:"title" validate:"max=255"`
	ImageURL  string `form:"image_url"`
	IsActive  bool   `form:"is_active"`
	SortOrder int    `form:"sort_order" validate:"gte=0"`
}

func readHeroImageForm(r *http.Request) *HeroImageForm {
	return &HeroImageForm{
		Title:     strings.TrimSpace(r.PostFormValue("title")),
		ImageURL:  strings.TrimSpace(r.PostFormValue("image_url")),
		IsActive:  helpers.ParseCheckbox(r.PostFormValue("is_active")),
		SortOrder: helpers.ParseInt(r.PostFormValue("sort_order"), 0),
	}
}

func (h *AdminHandler) heroImageForm(w http.ResponseWriter, status int, data *AdminHeroImagePageData) {
	data.MaxActive = models.MaxActiveHeroImages
	if data.Errors == nil {
		data.Errors = make(map[string]string)
	}
	h.html(w, status, "admin/hero_images/form", data)
}

// heroImageFromForm validates the form and resolves the image URL from an upload or the URL field.
// The active limit is checked before anything is uploaded.
func (h *AdminHandler) heroImageFromForm(r *http.Request, form *HeroImageForm, image *models.HeroImage, wasActive bool) (map[string]string, error) {
	if err := h.validator.Struct(form); err != nil {
		return h.validationErrors(err), nil
	}
	if err := h.heroSvc.CheckCapacity(r.Context(), form.IsActive, wasActive); err != nil {
		return nil, err
	}

	url, err := h.uploadFormImage(r, "image", storage.BucketHeroImages)
	if err != nil {
		return nil, err
	}
	if url != "" {
		form.ImageURL = url
	}
	if form.ImageURL == "" {
		return map[string]string{"imageurl": "اختر صورة أو أدخل رابطها."}, nil
	}

	image.Title = form.Title
	image.ImageURL = form.ImageURL
	image.IsActive = form.IsActive
	image.SortOrder = form.SortOrder
	return nil, nil
}

func (h *AdminHandler) GetHeroImagesPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminHeroImagePageData{
		BasePageData: h.baseData(r, "صور البانر", breadcrumb.Breadcrumb{Name: "صور البانر", URL: "/admin/hero-images"}),
		MaxActive:    models.MaxActiveHeroImages,
	}

	images, err := h.heroRepo.List(r.Context(), repositories.ListOptions{})
	if err != nil {
		log.Printf("GetHeroImagesPage: failed to load hero images: %v", err)
		data.Message = "حدث خطأ في تحميل صور البانر"
		data.MessageStatus = "error"
	}
	data.Images = images
	for _, img := range images {
		if img.IsActive {
			data.ActiveCount++
		}
	}

	h.html(w, http.StatusOK, "admin/hero_images/index", data)
}

func (h *AdminHandler) AddHeroImagePage(w http.ResponseWriter, r *http.Request) {
	data := &AdminHeroImagePageData{
		BasePageData: h.baseData(r, "إضافة صورة بانر",
			breadcrumb.Breadcrumb{Name: "صور البانر", URL: "/admin/hero-images"},
			breadcrumb.Breadcrumb{Name: "إضافة صورة", URL: "/admin/hero-images/add"}),
		FormAction: "/admin/hero-images/add",
		ImageData:  &HeroImageForm{IsActive: true},
	}
	h.heroImageForm(w, http.StatusOK, data)
}

func (h *AdminHandler) AddHeroImagePost(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		log.Printf("AddHeroImagePost: failed to parse form: %v", err)
		helpers.RedirectWithMessage(w, r, "/admin/hero-images/add", "error", "تعذر قراءة النموذج")
		return
	}

	form := readHeroImageForm(r)
	image := &models.HeroImage{}
	errs, err := h.heroImageFromForm(r, form, image, false)
	if errors.Is(err, services.ErrHeroImageLimit) {
		helpers.RedirectWithMessage(w, r, "/admin/hero-images", "error", heroLimitMessage)
		return
	}
	if err != nil {
		log.Printf("AddHeroImagePost: upload failed: %v", err)
		helpers.RedirectWithMessage(w, r, "/admin/hero-images/add", "error", "فشل رفع الصورة")
		return
	}
	if errs != nil {
		data := &AdminHeroImagePageData{
			BasePageData: h.baseData(r, "إضافة صورة بانر", breadcrumb.Breadcrumb{Name: "صور البانر", URL: "/admin/hero-images"}),
			FormAction:   "/admin/hero-images/add",
			ImageData:    form,
			Errors:       errs,
		}
		h.heroImageForm(w, http.StatusUnprocessableEntity, data)
		return
	}

	if err := h.heroSvc.Create(r.Context(), image); err != nil {
		if errors.Is(err, services.ErrHeroImageLimit) {
			helpers.RedirectWithMessage(w, r, "/admin/hero-images", "error", heroLimitMessage)
			return
		}
		log.Printf("AddHeroImagePost: failed to create hero image: %v", err)
		helpers.RedirectWithMessage(w, r, "/admin/hero-images/add", "error", "حدث خطأ في إضافة الصورة")
		return
	}

	helpers.RedirectWithMessage(w, r, "/admin/hero-images", "success", "تم إضافة الصورة بنجاح")
}

func (h *AdminHandler) EditHeroImagePage(w http.ResponseWriter, r *http.Request) {
	imageID := mux.Vars(r)["id"]

	image, err := h.heroRepo.GetByID(r.Context(), imageID)
	if err != nil || image == nil {
		log.Printf("EditHeroImagePage: hero image %s not found: %v", imageID, err)
		helpers.RedirectWithMessage(w, r, "/admin/hero-images", "error", "الصورة غير موجودة")
		return
	}

	data := &AdminHeroImagePageData{
		BasePageData: h.baseData(r, "تعديل صورة البانر", breadcrumb.Breadcrumb{Name: "صور البانر", URL: "/admin/hero-images"}),
		FormAction:   "/admin/hero-images/edit/" + image.ID,
		IsEdit:       true,
		ImageData: &HeroImageForm{
			ID:        image.ID,
			Title:     image.Title,
			ImageURL:  image.ImageURL,
			IsActive:  image.IsActive,
			SortOrder: image.SortOrder,
		},
	}
	h.heroImageForm(w, http.StatusOK, data)
}

func (h *AdminHandler) EditHeroImagePost(w http.ResponseWriter, r *http.Request) {
	imageID := mux.Vars(r)["id"]
	editURL := "/admin/hero-images/edit/" + imageID

	image, err := h.heroRepo.GetByID(r.Context(), imageID)
	if err != nil || image == nil {
		log.Printf("EditHeroImagePost: hero image %s not found: %v", imageID, err)
		helpers.RedirectWithMessage(w, r, "/admin/hero-images", "error", "الصورة غير موجودة")
		return
	}
	previous := *image

	if err := parseForm(r); err != nil {
		log.Printf("EditHeroImagePost: failed to parse form: %v", err)
		helpers.RedirectWithMessage(w, r, editURL, "error", "تعذر قراءة النموذج")
		return
	}

	form := readHeroImageForm(r)
	form.ID = imageID
	errs, err := h.heroImageFromForm(r, form, image, previous.IsActive)
	if errors.Is(err, services.ErrHeroImageLimit) {
		helpers.RedirectWithMessage(w, r, "/admin/hero-images", "error", heroLimitMessage)
		return
	}
	if err != nil {
		log.Printf("EditHeroImagePost: upload failed: %v", err)
		helpers.RedirectWithMessage(w, r, editURL, "error", "فشل رفع الصورة")
		return
	}
	if errs != nil {
		data := &AdminHeroImagePageData{
			BasePageData: h.baseData(r, "تعديل صورة البانر", breadcrumb.Breadcrumb{Name: "صور البانر", URL: "/admin/hero-images"}),
			FormAction:   editURL,
			IsEdit:       true,
			ImageData:    form,
			Errors:       errs,
		}
		h.heroImageForm(w, http.StatusUnprocessableEntity, data)
		return
	}

	if err := h.heroSvc.Update(r.Context(), previous, image); err != nil {
		if errors.Is(err, services.ErrHeroImageLimit) {
			helpers.RedirectWithMessage(w, r, "/admin/hero-images", "error", heroLimitMessage)
			return
		}
		log.Printf("EditHeroImagePost: failed to update hero image %s: %v", imageID, err)
		helpers.RedirectWithMessage(w, r, editURL, "error", "حدث خطأ في تحديث الصورة")
		return
	}

	helpers.RedirectWithMessage(w, r, "/admin/hero-images", "success", "تم تحديث الصورة بنجاح")
}

func (h *AdminHandler) DeleteHeroImage(w http.ResponseWriter, r *http.Request) {
	imageID := mux.Vars(r)["id"]

	if err := h.heroRepo.Delete(r.Context(), imageID); err != nil {
		log.Printf("DeleteHeroImage: failed to delete hero image %s: %v", imageID, err)
		helpers.RedirectWithMessage(w, r, "/admin/hero-images", "error", "حدث خطأ في حذف الصورة")
		return
	}
	helpers.RedirectWithMessage(w, r, "/admin/hero-images", "success", "تم حذف الصورة بنجاح")
}
