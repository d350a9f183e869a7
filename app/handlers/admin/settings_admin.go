package admin

import (
	"log"
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/models/other"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/Rakhulsr/go-catalog/app/storage"
	"github.com/Rakhulsr/go-catalog/app/utils/breadcrumb"
)

type SettingInput struct {
	services.SettingField
	Value     string
	Multiline bool
}

type SettingGroup struct {
	Name   string
	Label  string
	Fields []SettingInput
}

type AdminSettingsPageData struct {
	other.BasePageData
	Groups []SettingGroup
}

var settingGroupLabels = []struct{ Name, Label string }{
	{"general", "إعدادات عامة"},
	{"hero", "البانر الرئيسي"},
	{"contact", "معلومات التواصل"},
	{"social", "وسائل التواصل الاجتماعي"},
	{"theme", "الألوان"},
}

func (h *AdminHandler) GetSettingsPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminSettingsPageData{
		BasePageData: h.baseData(r, "إعدادات الموقع", breadcrumb.Breadcrumb{Name: "الإعدادات", URL: "/admin/settings"}),
	}

	values, _, err := h.settingsSvc.Load(r.Context())
	if err != nil {
		log.Printf("GetSettingsPage: failed to load settings: %v", err)
		data.Message = "حدث خطأ في تحميل الإعدادات"
		data.MessageStatus = "error"
	}

	for _, g := range settingGroupLabels {
		group := SettingGroup{Name: g.Name, Label: g.Label}
		for _, f := range services.SettingFields {
			if f.Group != g.Name {
				continue
			}
			group.Fields = append(group.Fields, SettingInput{
				SettingField: f,
				Value:        values[f.Key],
				Multiline:    models.IsMultilineSettingKey(f.Key),
			})
		}
		data.Groups = append(data.Groups, group)
	}

	h.html(w, http.StatusOK, "admin/settings", data)
}

func (h *AdminHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		log.Printf("SaveSettings: failed to parse form: %v", err)
		helpers.RedirectWithMessage(w, r, "/admin/settings", "error", "تعذر قراءة النموذج")
		return
	}

	values := make(map[string]string)
	for _, f := range services.SettingFields {
		if _, ok := r.PostForm[f.Key]; ok {
			values[f.Key] = r.PostFormValue(f.Key)
		}
	}

	logoURL, err := h.uploadFormImage(r, "logo", storage.BucketProductImages)
	if err != nil {
		log.Printf("SaveSettings: logo upload failed: %v", err)
		helpers.RedirectWithMessage(w, r, "/admin/settings", "error", "فشل رفع الشعار")
		return
	}
	if logoURL != "" {
		values["logo_url"] = logoURL
	}

	if err := h.settingsSvc.Save(r.Context(), values); err != nil {
		log.Printf("SaveSettings: %v", err)
		helpers.RedirectWithMessage(w, r, "/admin/settings", "error", "حدث خطأ في حفظ بعض الإعدادات")
		return
	}

	helpers.RedirectWithMessage(w, r, "/admin/settings", "success", "تم حفظ الإعدادات بنجاح")
}
