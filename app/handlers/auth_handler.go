package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/models/other"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/Rakhulsr/go-catalog/app/utils/breadcrumb"
	"github.com/Rakhulsr/go-catalog/app/utils/sessions"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	render  *render.Render
	auth    *services.AuthService
	session *sessions.AdminSessionStore
}

func NewAuthHandler(r *render.Render, auth *services.AuthService, session *sessions.AdminSessionStore) *AuthHandler {
	return &AuthHandler{render: r, auth: auth, session: session}
}

type LoginPageData struct {
	other.BasePageData
	Username string
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if h.session.Current(w, r) != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	data := &LoginPageData{BasePageData: helpers.GetBaseData(r, "تسجيل دخول المدير")}
	data.IsAuthPage = true
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "الرئيسية", URL: "/"},
		{Name: "تسجيل الدخول", URL: "/admin/login"},
	}
	h.render.HTML(w, http.StatusOK, "auth/login", data)
}

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("LoginPost: failed to parse form: %v", err)
		helpers.RedirectWithMessage(w, r, "/admin/login", "error", "تعذر قراءة النموذج")
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	if err := h.auth.Authenticate(username, password); err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			log.Printf("LoginPost: authentication failed: %v", err)
		}
		helpers.RedirectWithMessage(w, r, "/admin/login", "error", "اسم المستخدم أو كلمة المرور غير صحيحة")
		return
	}

	if err := h.session.Login(w, r, username); err != nil {
		log.Printf("LoginPost: failed to save session for %s: %v", username, err)
		helpers.RedirectWithMessage(w, r, "/admin/login", "error", "حدث خطأ أثناء تسجيل الدخول")
		return
	}

	log.Printf("LoginPost: admin %s logged in", username)
	helpers.RedirectWithMessage(w, r, "/admin", "success", "تم تسجيل الدخول بنجاح")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Logout(w, r); err != nil {
		log.Printf("Logout: failed to clear session: %v", err)
	}
	helpers.RedirectWithMessage(w, r, "/admin/login", "success", "تم تسجيل الخروج")
}
