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
	"github.com/Rakhulsr/go-catalog/app/utils/slug"
	"github.com/gorilla/mux"
)

type AdminCategoryPageData struct {
	other.BasePageData
	CategoryList []models.Category
	CategoryData *CategoryForm
	IsEdit       bool
	FormAction   string
	Errors       map[string]string
	Icons        map[string]string
}

type CategoryForm struct {
	ID        string `form:"id"`
	Name      string `form:"name" validate:"required,max=100"`
	Slug      string `form:"slug" validate:"max=120"`
	Icon      string `form:"icon" validate:"max=50"`
	SortOrder int    `form:"sort_order" validate:"gte=0"`
	IsActive  bool   `form:"is_active"`
}

func readCategoryForm(r *http.Request) *CategoryForm {
	form := &CategoryForm{
		Name:      strings.TrimSpace(r.PostFormValue("name")),
		Slug:      strings.TrimSpace(r.PostFormValue("slug")),
		Icon:      strings.TrimSpace(r.PostFormValue("icon")),
		SortOrder: helpers.ParseInt(r.PostFormValue("sort_order"), 0),
		IsActive:  helpers.ParseCheckbox(r.PostFormValue("is_active")),
	}
	// An empty slug is derived from the name; a typed one is normalised the same way.
	if form.Slug == "" {
		form.Slug = slug.Generate(form.Name)
	} else {
		form.Slug = slug.Generate(form.Slug)
	}
	return form
}

func (f *CategoryForm) apply(c *models.Category) {
	c.Name = f.Name
	c.Slug = f.Slug
	c.Icon = f.Icon
	c.SortOrder = f.SortOrder
	c.IsActive = f.IsActive
}

func (h *AdminHandler) categoryForm(w http.ResponseWriter, status int, data *AdminCategoryPageData) {
	data.Icons = models.CategoryIcons
	if data.Errors == nil {
		data.Errors = make(map[string]string)
	}
	h.html(w, status, "admin/categories/form", data)
}

// checkCategoryForm validates the form and rejects a slug already used by another category.
func (h *AdminHandler) checkCategoryForm(r *http.Request, form *CategoryForm) map[string]string {
	if err := h.validator.Struct(form); err != nil {
		return h.validationErrors(err)
	}
	if form.Slug == "" {
		return map[string]string{"slug": "تعذر توليد رابط مختصر من الاسم، أدخل الرابط يدوياً."}
	}
	existing, err := h.categoryRepo.GetBySlug(r.Context(), form.Slug)
	if err != nil {
		log.Printf("checkCategoryForm: slug lookup failed: %v", err)
		return nil
	}
	if existing != nil && existing.ID != form.ID {
		return map[string]string{"slug": "الرابط المختصر مستخدم بالفعل."}
	}
	return nil
}

func (h *AdminHandler) GetCategoriesPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminCategoryPageData{
		BasePageData: h.baseData(r, "إدارة الأقسام", breadcrumb.Breadcrumb{Name: "الأقسام", URL: "/admin/categories"}),
	}

	categories, err := h.categoryRepo.List(r.Context(), repositories.ListOptions{})
	if err != nil {
		log.Printf("GetCategoriesPage: failed to load categories: %v", err)
		data.Message = "حدث خطأ في تحميل الأقسام"
		data.MessageStatus = "error"
	}
	data.CategoryList = categories

	h.html(w, http.StatusOK, "admin/categories/index", data)
}

func (h *AdminHandler) AddCategoryPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminCategoryPageData{
		BasePageData: h.baseData(r, "إضافة قسم جديد",
			breadcrumb.Breadcrumb{Name: "الأقسام", URL: "/admin/categories"},
			breadcrumb.Breadcrumb{Name: "إضافة قسم", URL: "/admin/categories/add"}),
		FormAction:   "/admin/categories/add",
		CategoryData: &CategoryForm{Icon: "package", IsActive: true},
	}
	h.categoryForm(w, http.StatusOK, data)
}

func (h *AdminHandler) AddCategoryPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("AddCategoryPost: failed to parse form: %v", err)
		helpers.RedirectWithMessage(w, r, "/admin/categories/add", "error", "تعذر قراءة النموذج")
		return
	}

	form := readCategoryForm(r)
	if errs := h.checkCategoryForm(r, form); errs != nil {
		data := &AdminCategoryPageData{
			BasePageData: h.baseData(r, "إضافة قسم جديد", breadcrumb.Breadcrumb{Name: "الأقسام", URL: "/admin/categories"}),
			FormAction:   "/admin/categories/add",
			CategoryData: form,
			Errors:       errs,
		}
		h.categoryForm(w, http.StatusUnprocessableEntity, data)
		return
	}

	category := &models.Category{}
	form.apply(category)
	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		log.Printf("AddCategoryPost: failed to create category: %v", err)
		helpers.RedirectWithMessage(w, r, "/admin/categories/add", "error", "حدث خطأ في إضافة القسم")
		return
	}

	helpers.RedirectWithMessage(w, r, "/admin/categories", "success", "تم إضافة القسم بنجاح")
}

func (h *AdminHandler) EditCategoryPage(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil || category == nil {
		log.Printf("EditCategoryPage: category %s not found: %v", categoryID, err)
		helpers.RedirectWithMessage(w, r, "/admin/categories", "error", "القسم غير موجود")
		return
	}

	data := &AdminCategoryPageData{
		BasePageData: h.baseData(r, "تعديل القسم",
			breadcrumb.Breadcrumb{Name: "الأقسام", URL: "/admin/categories"},
			breadcrumb.Breadcrumb{Name: category.Name, URL: "/admin/categories/edit/" + category.ID}),
		FormAction: "/admin/categories/edit/" + category.ID,
		IsEdit:     true,
		CategoryData: &CategoryForm{
			ID:        category.ID,
			Name:      category.Name,
			Slug:      category.Slug,
			Icon:      category.Icon,
			SortOrder: category.SortOrder,
			IsActive:  category.IsActive,
		},
	}
	h.categoryForm(w, http.StatusOK, data)
}

func (h *AdminHandler) EditCategoryPost(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["id"]
	editURL := "/admin/categories/edit/" + categoryID

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil || category == nil {
		log.Printf("EditCategoryPost: category %s not found: %v", categoryID, err)
		helpers.RedirectWithMessage(w, r, "/admin/categories", "error", "القسم غير موجود")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("EditCategoryPost: failed to parse form: %v", err)
		helpers.RedirectWithMessage(w, r, editURL, "error", "تعذر قراءة النموذج")
		return
	}

	form := readCategoryForm(r)
	form.ID = categoryID
	if errs := h.checkCategoryForm(r, form); errs != nil {
		data := &AdminCategoryPageData{
			BasePageData: h.baseData(r, "تعديل القسم", breadcrumb.Breadcrumb{Name: "الأقسام", URL: "/admin/categories"}),
			FormAction:   editURL,
			IsEdit:       true,
			CategoryData: form,
			Errors:       errs,
		}
		h.categoryForm(w, http.StatusUnprocessableEntity, data)
		return
	}

	form.apply(category)
	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		log.Printf("EditCategoryPost: failed to update category %s: %v", categoryID, err)
		helpers.RedirectWithMessage(w, r, editURL, "error", "حدث خطأ في تحديث القسم")
		return
	}

	helpers.RedirectWithMessage(w, r, "/admin/categories", "success", "تم تحديث القسم بنجاح")
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["id"]

	if err := h.categoryRepo.Delete(r.Context(), categoryID); err != nil {
		log.Printf("DeleteCategory: failed to delete category %s: %v", categoryID, err)
		helpers.RedirectWithMessage(w, r, "/admin/categories", "error", "حدث خطأ في حذف القسم")
		return
	}
	helpers.RedirectWithMessage(w, r, "/admin/categories", "success", "تم حذف القسم بنجاح")
}

// MoveCategory shifts sort_order by one in the direction given by {direction}; it never goes below 0.
func (h *AdminHandler) MoveCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	category, err := h.categoryRepo.GetByID(r.Context(), vars["id"])
	if err != nil || category == nil {
		log.Printf("MoveCategory: category %s not found: %v", vars["id"], err)
		helpers.RedirectWithMessage(w, r, "/admin/categories", "error", "القسم غير موجود")
		return
	}

	order := MovedSortOrder(category.SortOrder, vars["direction"])
	if err := h.categoryRepo.UpdateSortOrder(r.Context(), category.ID, order); err != nil {
		log.Printf("MoveCategory: failed to move category %s: %v", category.ID, err)
		helpers.RedirectWithMessage(w, r, "/admin/categories", "error", "حدث خطأ في تحديث الترتيب")
		return
	}
	helpers.RedirectWithMessage(w, r, "/admin/categories", "success", "تم تحديث الترتيب")
}

func MovedSortOrder(current int, direction string) int {
	next := current + 1
	if direction == "up" {
		next = current - 1
	}
	if next < 0 {
		return 0
	}
	return next
}
