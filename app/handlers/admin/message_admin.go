package admin

import (
	"log"
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/models/other"
	"github.com/Rakhulsr/go-catalog/app/utils/breadcrumb"
	"github.com/gorilla/mux"
)

type AdminMessagePageData struct {
	other.BasePageData
	Messages []models.ContactMessage
}

func (h *AdminHandler) GetMessagesPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminMessagePageData{
		BasePageData: h.baseData(r, "رسائل التواصل", breadcrumb.Breadcrumb{Name: "الرسائل", URL: "/admin/messages"}),
	}

	messages, err := h.messageRepo.List(r.Context())
	if err != nil {
		log.Printf("GetMessagesPage: failed to load messages: %v", err)
		data.Message = "حدث خطأ في تحميل الرسائل"
		data.MessageStatus = "error"
	}
	data.Messages = messages

	h.html(w, http.StatusOK, "admin/messages", data)
}

func (h *AdminHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	messageID := mux.Vars(r)["id"]

	if err := h.messageRepo.MarkRead(r.Context(), messageID); err != nil {
		log.Printf("MarkMessageRead: failed to mark message %s: %v", messageID, err)
		helpers.RedirectWithMessage(w, r, "/admin/messages", "error", "حدث خطأ في تحديث الرسالة")
		return
	}
	helpers.RedirectWithMessage(w, r, "/admin/messages", "success", "تم تعليم الرسالة كمقروءة")
}

func (h *AdminHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	messageID := mux.Vars(r)["id"]

	if err := h.messageRepo.Delete(r.Context(), messageID); err != nil {
		log.Printf("DeleteMessage: failed to delete message %s: %v", messageID, err)
		helpers.RedirectWithMessage(w, r, "/admin/messages", "error", "حدث خطأ في حذف الرسالة")
		return
	}
	helpers.RedirectWithMessage(w, r, "/admin/messages", "success", "تم حذف الرسالة")
}
