package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Slug      string    `gorm:"size:120;not null;uniqueIndex" json:"slug"`
	Icon      string    `gorm:"size:50" json:"icon"`
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// CategoryIcons is the fixed lookup the sidebar resolves Category.Icon against.
var CategoryIcons = map[string]string{
	"stamp":   "🪵",
	"incense": "🪔",
	"clock":   "🕰️",
	"gift":    "🎁",
	"frame":   "🖼️",
	"candle":  "🕯️",
	"star":    "⭐",
	"package": "📦",
}

// IconGlyph returns the glyph for the category icon key, falling back to a package glyph.
func (c Category) IconGlyph() string {
	if glyph, ok := CategoryIcons[c.Icon]; ok {
		return glyph
	}
	return CategoryIcons["package"]
}
