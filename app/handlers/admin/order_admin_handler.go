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

type AdminOrderPageData struct {
	other.BasePageData
	Orders []models.Order
	Order  *models.Order
	Search string
	Status string
}

func (h *AdminHandler) GetOrdersPage(w http.ResponseWriter, r *http.Request) {
	filter := repositories.OrderFilter{
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
		Status: r.URL.Query().Get("filter"),
	}
	if filter.Status == "" {
		filter.Status = "all"
	}

	data := &AdminOrderPageData{
		BasePageData: h.baseData(r, "إدارة الطلبات", breadcrumb.Breadcrumb{Name: "الطلبات", URL: "/admin/orders"}),
		Search:       filter.Search,
		Status:       filter.Status,
	}

	orders, err := h.orderRepo.List(r.Context(), filter)
	if err != nil {
		log.Printf("GetOrdersPage: failed to load orders: %v", err)
		data.Message = "حدث خطأ في تحميل الطلبات"
		data.MessageStatus = "error"
	}
	data.Orders = orders

	h.html(w, http.StatusOK, "admin/orders/index", data)
}

func (h *AdminHandler) GetOrderDetailPage(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	order, err := h.orderRepo.GetByID(r.Context(), orderID)
	if err != nil || order == nil {
		log.Printf("GetOrderDetailPage: order %s not found: %v", orderID, err)
		helpers.RedirectWithMessage(w, r, "/admin/orders", "error", "الطلب غير موجود")
		return
	}

	data := &AdminOrderPageData{
		BasePageData: h.baseData(r, "تفاصيل الطلب",
			breadcrumb.Breadcrumb{Name: "الطلبات", URL: "/admin/orders"},
			breadcrumb.Breadcrumb{Name: order.CustomerName, URL: "/admin/orders/" + order.ID}),
		Order: order,
	}
	h.html(w, http.StatusOK, "admin/orders/detail", data)
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	back := "/admin/orders/" + orderID

	if err := r.ParseForm(); err != nil {
		log.Printf("UpdateOrderStatus: failed to parse form: %v", err)
		helpers.RedirectWithMessage(w, r, back, "error", "تعذر قراءة النموذج")
		return
	}
	if ret := r.PostFormValue("return_to"); ret == "list" {
		back = "/admin/orders"
	}

	status := r.PostFormValue("status")
	if !models.IsValidOrderStatus(status) {
		helpers.RedirectWithMessage(w, r, back, "error", "حالة الطلب غير صالحة")
		return
	}

	if err := h.orderRepo.UpdateStatus(r.Context(), orderID, status); err != nil {
		log.Printf("UpdateOrderStatus: failed to update order %s: %v", orderID, err)
		helpers.RedirectWithMessage(w, r, back, "error", "حدث خطأ في تحديث حالة الطلب")
		return
	}
	helpers.RedirectWithMessage(w, r, back, "success", "تم تحديث حالة الطلب")
}

func (h *AdminHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	if err := h.orderRepo.Delete(r.Context(), orderID); err != nil {
		log.Printf("DeleteOrder: failed to delete order %s: %v", orderID, err)
		helpers.RedirectWithMessage(w, r, "/admin/orders", "error", "حدث خطأ في حذف الطلب")
		return
	}
	helpers.RedirectWithMessage(w, r, "/admin/orders", "success", "تم حذف الطلب")
}
