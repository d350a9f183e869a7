package helpers

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var fieldLabels = map[string]string{
	"name":            "الاسم",
	"title":           "العنوان",
	"slug":            "الرابط المختصر",
	"icon":            "الأيقونة",
	"price":           "السعر",
	"pricecurrency":   "العملة",
	"description":     "الوصف",
	"imageurl":        "رابط الصورة",
	"sortorder":       "الترتيب",
	"basequantity":    "الكمية",
	"hexcode":         "كود اللون",
	"displayname":     "الاسم المعروض",
	"email":           "البريد الإلكتروني",
	"phone":           "الهاتف",
	"message":         "الرسالة",
	"username":        "اسم المستخدم",
	"password":        "كلمة المرور",
	"customername":    "اسم العميل",
	"customerphone":   "هاتف العميل",
	"customeremail":   "بريد العميل",
	"customeraddress": "عنوان العميل",
	"totalamount":     "المبلغ الإجمالي",
	"status":          "الحالة",
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[strings.ToLower(field)]; ok {
		return label
	}
	return field
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		label := fieldLabel(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s مطلوب.", label)
		case "email":
			errorMessages[field] = fmt.Sprintf("%s يجب أن يكون بريداً إلكترونياً صحيحاً.", label)
		case "numeric", "number":
			errorMessages[field] = fmt.Sprintf("%s يجب أن يكون رقماً.", label)
		case "min", "gte":
			errorMessages[field] = fmt.Sprintf("%s يجب ألا يقل عن %s.", label, err.Param())
		case "max", "lte":
			errorMessages[field] = fmt.Sprintf("%s يجب ألا يزيد عن %s.", label, err.Param())
		case "hexcolor":
			errorMessages[field] = fmt.Sprintf("%s يجب أن يكون لوناً بصيغة #RRGGBB.", label)
		case "oneof":
			errorMessages[field] = fmt.Sprintf("%s يجب أن يكون أحد القيم: %s.", label, err.Param())
		case "url":
			errorMessages[field] = fmt.Sprintf("%s يجب أن يكون رابطاً صحيحاً.", label)
		default:
			errorMessages[field] = fmt.Sprintf("فشل التحقق (%s) في الحقل %s.", err.Tag(), label)
		}
	}
	return errorMessages
}

// FirstValidationMessage returns the message of the first failing field. The validator reports
// fields in struct order, so the result is stable across requests.
func FirstValidationMessage(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return ""
	}
	for _, msg := range FormatValidationErrors(errs[:1]) {
		return msg
	}
	return ""
}

// RedirectWithMessage carries a toast through the redirect as ?status=&message=.
func RedirectWithMessage(w http.ResponseWriter, r *http.Request, target, status, message string) {
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	location := fmt.Sprintf("%s%sstatus=%s&message=%s", target, sep, url.QueryEscape(status), url.QueryEscape(message))
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func ParseDecimal(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	if value == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}

func ParseInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

// ParseCheckbox treats any of "on", "true", "1" as checked.
func ParseCheckbox(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}
