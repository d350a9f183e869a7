package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/go-playground/validator/v10"
)

type ContactForm struct {
	Name    string `validate:"required,max=255"`
	Email   string `validate:"omitempty,email"`
	Phone   string `validate:"omitempty,max=30"`
	Subject string `validate:"max=255"`
	Message string `validate:"required,max=5000"`
}

type ContactHandler struct {
	service   *services.ContactService
	validator *validator.Validate
}

func NewContactHandler(service *services.ContactService, v *validator.Validate) *ContactHandler {
	return &ContactHandler{service: service, validator: v}
}

// redirectBack returns to the local path named by return_to, or home.
func redirectBack(r *http.Request) string {
	if path := r.PostFormValue("return_to"); strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//") {
		return path
	}
	return "/"
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("ContactHandler.Submit: failed to parse form: %v", err)
		helpers.RedirectWithMessage(w, r, "/", "error", "تعذر قراءة النموذج")
		return
	}
	back := redirectBack(r)

	form := ContactForm{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Phone:   strings.TrimSpace(r.PostFormValue("phone")),
		Subject: strings.TrimSpace(r.PostFormValue("subject")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}
	if err := h.validator.Struct(&form); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			helpers.RedirectWithMessage(w, r, back, "error", helpers.FirstValidationMessage(verrs))
			return
		}
		helpers.RedirectWithMessage(w, r, back, "error", "البيانات المدخلة غير صحيحة")
		return
	}

	msg := &models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Subject: form.Subject,
		Message: form.Message,
	}
	if err := h.service.Submit(r.Context(), msg); err != nil {
		log.Printf("ContactHandler.Submit: %v", err)
		helpers.RedirectWithMessage(w, r, back, "error", "تعذر إرسال رسالتك، حاول مرة أخرى")
		return
	}

	helpers.RedirectWithMessage(w, r, back, "success", "تم إرسال رسالتك بنجاح")
}
