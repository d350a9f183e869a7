package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxActiveHeroImages caps the carousel; the limit is checked by the admin form only.
const MaxActiveHeroImages = 5

type HeroImage struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title     string    `gorm:"size:255" json:"title"`
	ImageURL  string    `gorm:"type:text;not null" json:"image_url"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *HeroImage) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return
}
