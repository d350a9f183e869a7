package admin

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/models/other"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/Rakhulsr/go-catalog/app/storage"
	"github.com/Rakhulsr/go-catalog/app/utils/breadcrumb"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type ProductRow struct {
	models.Product
	CategoryName string
}

type AdminProductPageData struct {
	other.BasePageData
	Products    []ProductRow
	ProductData *ProductForm
	Images      []models.ProductImage
	IsEdit      bool
	FormAction  string
	Errors      map[string]string
	Categories  []models.Category
	Colors      []models.Color
	Sizes       []models.Size
}

type ProductForm struct {
	ID                string
	Name              string `form:"name" validate:"required,max=255"`
	Description       string `form:"description"`
	AdditionalDetails string `form:"additional_details"`
	Price             string `form:"price" validate:"required"`
	PriceCurrency     string `form:"price_currency" validate:"max=20"`
	ImageURL          string `form:"image_url"`
	CategoryID        string `form:"category_id"`
	IsActive          bool   `form:"is_active"`
	SortOrder         int    `form:"sort_order" validate:"gte=0"`
	HasVariants       bool   `form:"has_variants"`
	BaseQuantity      int    `form:"base_quantity" validate:"gte=0"`
}

func productFormFrom(p *models.Product) *ProductForm {
	return &ProductForm{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		AdditionalDetails: p.AdditionalDetails,
		Price:             p.Price.String(),
		PriceCurrency:     p.PriceCurrency,
		ImageURL:          p.ImageURL,
		CategoryID:        p.CategoryRef(),
		IsActive:          p.IsActive,
		SortOrder:         p.SortOrder,
		HasVariants:       p.HasVariants,
		BaseQuantity:      p.BaseQuantity,
	}
}

func readProductForm(r *http.Request) *ProductForm {
	return &ProductForm{
		Name:              strings.TrimSpace(r.PostFormValue("name")),
		Description:       strings.TrimSpace(r.PostFormValue("description")),
		AdditionalDetails: strings.TrimSpace(r.PostFormValue("additional_details")),
		Price:             strings.TrimSpace(r.PostFormValue("price")),
		PriceCurrency:     strings.TrimSpace(r.PostFormValue("price_currency")),
		ImageURL:          strings.TrimSpace(r.PostFormValue("image_url")),
		CategoryID:        strings.TrimSpace(r.PostFormValue("category_id")),
		IsActive:          helpers.ParseCheckbox(r.PostFormValue("is_active")),
		SortOrder:         helpers.ParseInt(r.PostFormValue("sort_order"), 0),
		HasVariants:       helpers.ParseCheckbox(r.PostFormValue("has_variants")),
		BaseQuantity:      helpers.ParseInt(r.PostFormValue("base_quantity"), 0),
	}
}

// apply copies the validated form onto p. It reports a field error for an unparsable price.
func (f *ProductForm) apply(p *models.Product) map[string]string {
	price, err := helpers.ParseDecimal(f.Price)
	if err != nil || price.LessThan(decimal.Zero) {
		return map[string]string{"price": "السعر يجب أن يكون رقماً موجباً."}
	}

	p.Name = f.Name
	p.Description = f.Description
	p.AdditionalDetails = f.AdditionalDetails
	p.Price = price
	p.PriceCurrency = f.PriceCurrency
	if p.PriceCurrency == "" {
		p.PriceCurrency = models.DefaultPriceCurrency
	}
	p.ImageURL = f.ImageURL
	p.CategoryID = nil
	if f.CategoryID != "" {
		id := f.CategoryID
		p.CategoryID = &id
	}
	p.IsActive = f.IsActive
	p.SortOrder = f.SortOrder
	p.HasVariants = f.HasVariants
	p.BaseQuantity = f.BaseQuantity
	return nil
}

func (h *AdminHandler) productFormPage(w http.ResponseWriter, r *http.Request, status int, data *AdminProductPageData) {
	var err error
	if data.Categories, err = h.categoryRepo.List(r.Context(), repositories.ListOptions{}); err != nil {
		log.Printf("productFormPage: failed to load categories: %v", err)
	}
	if data.Colors, err = h.colorRepo.List(r.Context(), repositories.ListOptions{ActiveOnly: true}); err != nil {
		log.Printf("productFormPage: failed to load colors: %v", err)
	}
	if data.Sizes, err = h.sizeRepo.List(r.Context(), repositories.ListOptions{ActiveOnly: true}); err != nil {
		log.Printf("productFormPage: failed to load sizes: %v", err)
	}
	if data.Errors == nil {
		data.Errors = make(map[string]string)
	}
	h.html(w, status, "admin/products/form", data)
}

func (h *AdminHandler) GetProductsPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminProductPageData{
		BasePageData: h.baseData(r, "إدارة المنتجات", breadcrumb.Breadcrumb{Name: "المنتجات", URL: "/admin/products"}),
	}

	categories, err := h.categoryRepo.List(r.Context(), repositories.ListOptions{})
	if err != nil {
		log.Printf("GetProductsPage: failed to load categories: %v", err)
	}

	products, err := h.productRepo.List(r.Context(), repositories.ListOptions{})
	if err != nil {
		log.Printf("GetProductsPage: failed to load products: %v", err)
		data.Message = "حدث خطأ في تحميل المنتجات"
		data.MessageStatus = "error"
	}
	for _, p := range products {
		data.Products = append(data.Products, ProductRow{Product: p, CategoryName: categoryName(categories, p.CategoryRef())})
	}

	h.html(w, http.StatusOK, "admin/products/index", data)
}

func (h *AdminHandler) AddProductPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminProductPageData{
		BasePageData: h.baseData(r, "إضافة منتج جديد",
			breadcrumb.Breadcrumb{Name: "المنتجات", URL: "/admin/products"},
			breadcrumb.Breadcrumb{Name: "إضافة منتج", URL: "/admin/products/add"}),
		FormAction:  "/admin/products/add",
		ProductData: &ProductForm{PriceCurrency: models.DefaultPriceCurrency, IsActive: true},
	}
	h.productFormPage(w, r, http.StatusOK, data)
}

func (h *AdminHandler) AddProductPost(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		log.Printf("AddProductPost: failed to parse form: %v", err)
		helpers.RedirectWithMessage(w, r, "/admin/products/add", "error", "تعذر قراءة النموذج")
		return
	}

	form := readProductForm(r)
	product := &models.Product{}
	errs := h.checkProductForm(form, product)
	if errs != nil {
		data := &AdminProductPageData{
			BasePageData: h.baseData(r, "إضافة منتج جديد", breadcrumb.Breadcrumb{Name: "المنتجات", URL: "/admin/products"}),
			FormAction:   "/admin/products/add",
			ProductData:  form,
			Errors:       errs,
		}
		h.productFormPage(w, r, http.StatusUnprocessableEntity, data)
		return
	}

	if url, err := h.uploadFormImage(r, "image", storage.BucketProductImages); err != nil {
		log.Printf("AddProductPost: main image upload failed: %v", err)
		helpers.RedirectWithMessage(w, r, "/admin/products/add", "error", "فشل رفع الصورة")
		return
	} else if url != "" {
		product.ImageURL = url
	}

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		log.Printf("AddProductPost: failed to create product: %v", err)
		helpers.RedirectWithMessage(w, r, "/admin/products/add", "error", "حدث خطأ في إضافة المنتج")
		return
	}

	uploaded := h.uploadGallery(r, product, 0)
	log.Printf("AddProductPost: product %s created with %d gallery images", product.ID, uploaded)

	helpers.RedirectWithMessage(w, r, "/admin/products", "success", "تم إضافة المنتج بنجاح")
}

func (h *AdminHandler) checkProductForm(form *ProductForm, product *models.Product) map[string]string {
	if err := h.validator.Struct(form); err != nil {
		return h.validationErrors(err)
	}
	return form.apply(product)
}

// uploadGallery stores every file posted as gallery_images. A failed file is logged and
// skipped so the rest of the batch still lands.
func (h *AdminHandler) uploadGallery(r *http.Request, product *models.Product, existing int) int {
	if r.MultipartForm == nil {
		return 0
	}
	files := r.MultipartForm.File["gallery_images"]
	stamp := time.Now().UnixMilli()
	uploaded := 0

	for i, fh := range files {
		file, err := fh.Open()
		if err != nil {
			log.Printf("uploadGallery: cannot open %s: %v", fh.Filename, err)
			continue
		}
		key := storage.GalleryKey(product.ID, stamp, i)
		url, err := storage.UploadImage(r.Context(), h.store, storage.BucketProductImages, key, file)
		file.Close()
		if err != nil {
			log.Printf("uploadGallery: upload of %s failed: %v", fh.Filename, err)
			continue
		}

		image := &models.ProductImage{
			ProductID: product.ID,
			ImageURL:  url,
			AltText:   fmt.Sprintf("%s - صورة %d", product.Name, i+1),
			SortOrder: existing + i,
			IsActive:  true,
		}
		if err := h.productRepo.CreateImage(r.Context(), image); err != nil {
			log.Printf("uploadGallery: failed to save image row for %s: %v", fh.Filename, err)
			continue
		}
		uploaded++
	}
	return uploaded
}

func (h *AdminHandler) EditProductPage(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil || product == nil {
		log.Printf("EditProductPage: product %s not found: %v", productID, err)
		helpers.RedirectWithMessage(w, r, "/admin/products", "error", "المنتج غير موجود")
		return
	}

	data := &AdminProductPageData{
		BasePageData: h.baseData(r, "تعديل المنتج",
			breadcrumb.Breadcrumb{Name: "المنتجات", URL: "/admin/products"},
			breadcrumb.Breadcrumb{Name: product.Name, URL: "/admin/products/edit/" + product.ID}),
		FormAction:  "/admin/products/edit/" + product.ID,
		IsEdit:      true,
		ProductData: productFormFrom(product),
		Images:      product.Images,
	}
	h.productFormPage(w, r, http.StatusOK, data)
}

func (h *AdminHandler) EditProductPost(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]
	editURL := "/admin/products/edit/" + productID

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil || product == nil {
		log.Printf("EditProductPost: product %s not found: %v", productID, err)
		helpers.RedirectWithMessage(w, r, "/admin/products", "error", "المنتج غير موجود")
		return
	}

	if err := parseForm(r); err != nil {
		log.Printf("EditProductPost: failed to parse form: %v", err)
		helpers.RedirectWithMessage(w, r, editURL, "error", "تعذر قراءة النموذج")
		return
	}

	form := readProductForm(r)
	form.ID = productID
	if errs := h.checkProductForm(form, product); errs != nil {
		data := &AdminProductPageData{
			BasePageData: h.baseData(r, "تعديل المنتج", breadcrumb.Breadcrumb{Name: "المنتجات", URL: "/admin/products"}),
			FormAction:   editURL,
			IsEdit:       true,
			ProductData:  form,
			Images:       product.Images,
			Errors:       errs,
		}
		h.productFormPage(w, r, http.StatusUnprocessableEntity, data)
		return
	}

	if url, err := h.uploadFormImage(r, "image", storage.BucketProductImages); err != nil {
		log.Printf("EditProductPost: main image upload failed: %v", err)
		helpers.RedirectWithMessage(w, r, editURL, "error", "فشل رفع الصورة")
		return
	} else if url != "" {
		product.ImageURL = url
	}

	existing := len(product.Images)
	if err := h.productRepo.Update(r.Context(), product); err != nil {
		log.Printf("EditProductPost: failed to update product %s: %v", productID, err)
		helpers.RedirectWithMessage(w, r, editURL, "error", "حدث خطأ في تحديث المنتج")
		return
	}
	h.uploadGallery(r, product, existing)

	helpers.RedirectWithMessage(w, r, "/admin/products", "success", "تم تحديث المنتج بنجاح")
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	if err := h.productRepo.Delete(r.Context(), productID); err != nil {
		log.Printf("DeleteProduct: failed to delete product %s: %v", productID, err)
		helpers.RedirectWithMessage(w, r, "/admin/products", "error", "حدث خطأ في حذف المنتج")
		return
	}
	helpers.RedirectWithMessage(w, r, "/admin/products", "success", "تم حذف المنتج بنجاح")
}

func (h *AdminHandler) DeleteProductImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	editURL := "/admin/products/edit/" + vars["id"]

	if err := h.productRepo.DeleteImage(r.Context(), vars["imageID"]); err != nil {
		log.Printf("DeleteProductImage: failed to delete image %s: %v", vars["imageID"], err)
		helpers.RedirectWithMessage(w, r, editURL, "error", "حدث خطأ في حذف الصورة")
		return
	}
	helpers.RedirectWithMessage(w, r, editURL, "success", "تم حذف الصورة")
}
