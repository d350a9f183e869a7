package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
)

type SettingField struct {
	Key         string
	Description string
	Group       string
}

// SettingFields is the fixed key set edited in the admin settings form.
var SettingFields = []SettingField{
	{"site_name", "اسم الموقع", "general"},
	{"site_title", "عنوان الموقع", "general"},
	{"site_description", "وصف الموقع", "general"},
	{"logo_url", "رابط الشعار", "general"},
	{"hero_title", "عنوان البانر الرئيسي", "hero"},
	{"hero_subtitle", "النص الفرعي للبانر", "hero"},
	{"hero_image_url", "رابط صورة البانر", "hero"},
	{"contact_phone", "رقم التواصل", "contact"},
	{"contact_whatsapp", "رقم الواتساب", "contact"},
	{"contact_email", "البريد الإلكتروني", "contact"},
	{"contact_address", "العنوان", "contact"},
	{"facebook_url", "رابط فيسبوك", "social"},
	{"instagram_url", "رابط إنستجرام", "social"},
	{"twitter_url", "رابط تويتر", "social"},
	{"tiktok_url", "رابط تيك توك", "social"},
	{"telegram_url", "رابط تيليجرام", "social"},
	{"primary_color", "اللون الأساسي", "theme"},
	{"secondary_color", "اللون الثانوي", "theme"},
}

func SettingDescription(key string) string {
	for _, f := range SettingFields {
		if f.Key == key {
			return f.Description
		}
	}
	return key
}

func IsSettingKey(key string) bool {
	for _, f := range SettingFields {
		if f.Key == key {
			return true
		}
	}
	return false
}

type SettingsService struct {
	repo repositories.SettingRepository
}

func NewSettingsService(repo repositories.SettingRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Load(ctx context.Context) (models.SettingsMap, []models.Setting, error) {
	settings, err := s.repo.List(ctx)
	if err != nil {
		return models.SettingsMap{}, nil, err
	}
	return models.NewSettingsMap(settings), settings, nil
}

// Save updates each key in place or inserts it with its description. There is no rollback:
// keys saved before a failure stay saved and every failure is reported in the joined error.
func (s *SettingsService) Save(ctx context.Context, values map[string]string) error {
	var errs []error
	for _, field := range SettingFields {
		value, ok := values[field.Key]
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		existing, err := s.repo.GetByKey(ctx, field.Key)
		if err != nil {
			log.Printf("SettingsService.Save: lookup of %s failed: %v", field.Key, err)
			errs = append(errs, err)
			continue
		}

		if existing != nil {
			err = s.repo.UpdateValue(ctx, field.Key, value)
		} else {
			err = s.repo.Create(ctx, &models.Setting{Key: field.Key, Value: value, Description: field.Description})
		}
		if err != nil {
			log.Printf("SettingsService.Save: saving %s failed: %v", field.Key, err)
			errs = append(errs, fmt.Errorf("setting %s: %w", field.Key, err))
		}
	}
	return errors.Join(errs...)
}
