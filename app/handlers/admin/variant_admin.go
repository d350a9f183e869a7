package admin

import (
	"log"
	"net/http"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/models/other"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/Rakhulsr/go-catalog/app/utils/breadcrumb"
	"github.com/gorilla/mux"
)

type AdminVariantPageData struct {
	other.BasePageData
	Colors    []models.Color
	Sizes     []models.Size
	ColorData *ColorForm
	SizeData  *SizeForm
	Errors    map[string]string
}

type ColorForm struct {
	ID        string
	Name      string `form:"name" validate:"required,max=100"`
	HexCode   string `form:"hex_code" validate:"required,hexcolor"`
	IsActive  bool   `form:"is_active"`
	SortOrder int    `form:"sort_order" validate:"gte=0"`
}

type SizeForm struct {
	ID          string
	Name        string `form:"name" validate:"required,max=50"`
	DisplayName string `form:"display_name" validate:"max=100"`
	IsActive    bool   `form:"is_active"`
	SortOrder   int    `form:"sort_order" validate:"gte=0"`
}

// GetVariantsPage lists colors and sizes together; ?edit_color= and ?edit_size= prefill the forms.
func (h *AdminHandler) GetVariantsPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminVariantPageData{
		BasePageData: h.baseData(r, "الألوان والمقاسات", breadcrumb.Breadcrumb{Name: "الألوان والمقاسات", URL: "/admin/variants"}),
		ColorData:    &ColorForm{HexCode: "#000000", IsActive: true},
		SizeData:     &SizeForm{IsActive: true},
		Errors:       make(map[string]string),
	}
	h.renderVariants(w, r, http.StatusOK, data)
}

func (h *AdminHandler) renderVariants(w http.ResponseWriter, r *http.Request, status int, data *AdminVariantPageData) {
	var err error
	if data.Colors, err = h.colorRepo.List(r.Context(), repositories.ListOptions{}); err != nil {
		log.Printf("renderVariants: failed to load colors: %v", err)
	}
	if data.Sizes, err = h.sizeRepo.List(r.Context(), repositories.ListOptions{}); err != nil {
		log.Printf("renderVariants: failed to load sizes: %v", err)
	}

	if id := r.URL.Query().Get("edit_color"); id != "" {
		if c, err := h.colorRepo.GetByID(r.Context(), id); err == nil && c != nil {
			data.ColorData = &ColorForm{ID: c.ID, Name: c.Name, HexCode: c.HexCode, IsActive: c.IsActive, SortOrder: c.SortOrder}
		}
	}
	if id := r.URL.Query().Get("edit_size"); id != "" {
		if s, err := h.sizeRepo.GetByID(r.Context(), id); err == nil && s != nil {
			data.SizeData = &SizeForm{ID: s.ID, Name: s.Name, DisplayName: s.DisplayName, IsActive: s.IsActive, SortOrder: s.SortOrder}
		}
	}

	h.html(w, status, "admin/variants", data)
}

func (h *AdminHandler) SaveColor(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("SaveColor: failed to parse form: %v", err)
		helpers.RedirectWithMessage(w, r, "/admin/variants", "error", "تعذر قراءة النموذج")
		return
	}

	form := &ColorForm{
		ID:        mux.Vars(r)["id"],
		Name:      strings.TrimSpace(r.PostFormValue("name")),
		HexCode:   strings.TrimSpace(r.PostFormValue("hex_code")),
		IsActive:  helpers.ParseCheckbox(r.PostFormValue("is_active")),
		SortOrder: helpers.ParseInt(r.PostFormValue("sort_order"), 0),
	}
	if err := h.validator.Struct(form); err != nil {
		data := &AdminVariantPageData{
			BasePageData: h.baseData(r, "الألوان والمقاسات", breadcrumb.Breadcrumb{Name: "الألوان والمقاسات", URL: "/admin/variants"}),
			ColorData:    form,
			SizeData:     &SizeForm{IsActive: true},
			Errors:       h.validationErrors(err),
		}
		h.renderVariants(w, r, http.StatusUnprocessableEntity, data)
		return
	}

	color := &models.Color{}
	if form.ID != "" {
		existing, err := h.colorRepo.GetByID(r.Context(), form.ID)
		if err != nil || existing == nil {
			log.Printf("SaveColor: color %s not found: %v", form.ID, err)
			helpers.RedirectWithMessage(w, r, "/admin/variants", "error", "اللون غير موجود")
			return
		}
		color = existing
	}
	color.Name = form.Name
	color.HexCode = form.HexCode
	color.IsActive = form.IsActive
	color.SortOrder = form.SortOrder

	var err error
	if form.ID == "" {
		err = h.colorRepo.Create(r.Context(), color)
	} else {
		err = h.colorRepo.Update(r.Context(), color)
	}
	if err != nil {
		log.Printf("SaveColor: %v", err)
		helpers.RedirectWithMessage(w, r, "/admin/variants", "error", "حدث خطأ في حفظ اللون")
		return
	}
	helpers.RedirectWithMessage(w, r, "/admin/variants", "success", "تم حفظ اللون")
}

func (h *AdminHandler) DeleteColor(w http.ResponseWriter, r *http.Request) {
	colorID := mux.Vars(r)["id"]
	if err := h.colorRepo.Delete(r.Context(), colorID); err != nil {
		log.Printf("DeleteColor: failed to delete color %s: %v", colorID, err)
		helpers.RedirectWithMessage(w, r, "/admin/variants", "error", "حدث خطأ في حذف اللون")
		return
	}
	helpers.RedirectWithMessage(w, r, "/admin/variants", "success", "تم حذف اللون")
}

func (h *AdminHandler) SaveSize(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("SaveSize: failed to parse form: %v", err)
		helpers.RedirectWithMessage(w, r, "/admin/variants", "error", "تعذر قراءة النموذج")
		return
	}

	form := &SizeForm{
		ID:          mux.Vars(r)["id"],
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		DisplayName: strings.TrimSpace(r.PostFormValue("display_name")),
		IsActive:    helpers.ParseCheckbox(r.PostFormValue("is_active")),
		SortOrder:   helpers.ParseInt(r.PostFormValue("sort_order"), 0),
	}
	if err := h.validator.Struct(form); err != nil {
		data := &AdminVariantPageData{
			BasePageData: h.baseData(r, "الألوان والمقاسات", breadcrumb.Breadcrumb{Name: "الألوان والمقاسات", URL: "/admin/variants"}),
			ColorData:    &ColorForm{HexCode: "#000000", IsActive: true},
			SizeData:     form,
			Errors:       h.validationErrors(err),
		}
		h.renderVariants(w, r, http.StatusUnprocessableEntity, data)
		return
	}

	size := &models.Size{}
	if form.ID != "" {
		existing, err := h.sizeRepo.GetByID(r.Context(), form.ID)
		if err != nil || existing == nil {
			log.Printf("SaveSize: size %s not found: %v", form.ID, err)
			helpers.RedirectWithMessage(w, r, "/admin/variants", "error", "المقاس غير موجود")
			return
		}
		size = existing
	}
	size.Name = form.Name
	size.DisplayName = form.DisplayName
	if size.DisplayName == "" {
		size.DisplayName = size.Name
	}
	size.IsActive = form.IsActive
	size.SortOrder = form.SortOrder

	var err error
	if form.ID == "" {
		err = h.sizeRepo.Create(r.Context(), size)
	} else {
		err = h.sizeRepo.Update(r.Context(), size)
	}
	if err != nil {
		log.Printf("SaveSize: %v", err)
		helpers.RedirectWithMessage(w, r, "/admin/variants", "error", "حدث خطأ في حفظ المقاس")
		return
	}
	helpers.RedirectWithMessage(w, r, "/admin/variants", "success", "تم حفظ المقاس")
}

func (h *AdminHandler) DeleteSize(w http.ResponseWriter, r *http.Request) {
	sizeID := mux.Vars(r)["id"]
	if err := h.sizeRepo.Delete(r.Context(), sizeID); err != nil {
		log.Printf("DeleteSize: failed to delete size %s: %v", sizeID, err)
		helpers.RedirectWithMessage(w, r, "/admin/variants", "error", "حدث خطأ في حذف المقاس")
		return
	}
	helpers.RedirectWithMessage(w, r, "/admin/variants", "success", "تم حذف المقاس")
}
