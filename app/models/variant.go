package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Color struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	HexCode   string `gorm:"size:7;not null" json:"hex_code"`
	IsActive  bool   `gorm:"not null" json:"is_active"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}

func (c *Color) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

type Size struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name        string `gorm:"size:50;not null" json:"name"`
	DisplayName string `gorm:"size:100" json:"display_name"`
	IsActive    bool   `gorm:"not null" json:"is_active"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`
}

func (s *Size) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
