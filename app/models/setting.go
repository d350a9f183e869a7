package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Setting struct {
	ID          string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Key         string    `gorm:"size:100;not null;uniqueIndex" json:"key"`
	Value       string    `gorm:"type:text" json:"value"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *Setting) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

// IsMultiline reports whether the admin form edits this key in a textarea.
func (s Setting) IsMultiline() bool {
	return IsMultilineSettingKey(s.Key)
}

func IsMultilineSettingKey(key string) bool {
	return strings.Contains(key, "subtitle") ||
		strings.Contains(key, "description") ||
		strings.Contains(key, "address")
}

// SettingsMap indexes settings by key.
type SettingsMap map[string]string

func NewSettingsMap(settings []Setting) SettingsMap {
	m := make(SettingsMap, len(settings))
	for _, s := range settings {
		m[s.Key] = s.Value
	}
	return m
}

// Get returns the value for key or fallback when the key is missing or blank.
func (m SettingsMap) Get(key, fallback string) string {
	if v, ok := m[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}
