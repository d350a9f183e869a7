package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductView and ProductInquiry are append-only analytics rows.
type ProductView struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string    `gorm:"size:36;not null;index" json:"product_id"`
	VisitorIP *string   `gorm:"size:64" json:"visitor_ip"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (v *ProductView) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return
}

type ProductInquiry struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string    `gorm:"size:36;not null;index" json:"product_id"`
	VisitorIP *string   `gorm:"size:64" json:"visitor_ip"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (i *ProductInquiry) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return
}
