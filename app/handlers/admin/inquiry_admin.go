package admin

import (
	"log"
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/models/other"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/Rakhulsr/go-catalog/app/utils/breadcrumb"
)

type AdminInquiryPageData struct {
	other.BasePageData
	Inquiries []services.InquiryStat
	Total     int
}

func (h *AdminHandler) GetInquiriesPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminInquiryPageData{
		BasePageData: h.baseData(r, "استفسارات المنتجات", breadcrumb.Breadcrumb{Name: "الاستفسارات", URL: "/admin/inquiries"}),
	}

	ranking, err := h.dashboardSvc.InquiryRanking(r.Context())
	if err != nil {
		log.Printf("GetInquiriesPage: failed to rank inquiries: %v", err)
		data.Message = "حدث خطأ في تحميل الاستفسارات"
		data.MessageStatus = "error"
	}
	data.Inquiries = ranking
	for _, s := range ranking {
		data.Total += s.Count
	}

	h.html(w, http.StatusOK, "admin/inquiries", data)
}
