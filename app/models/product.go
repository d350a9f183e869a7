package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const DefaultPriceCurrency = "ج.م"

type Product struct {
	ID                string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name              string          `gorm:"size:255;not null" json:"name"`
	Description       string          `gorm:"type:text" json:"description"`
	AdditionalDetails string          `gorm:"type:text" json:"additional_details"`
	Price             decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	PriceCurrency     string          `gorm:"size:20;not null" json:"price_currency"`
	ImageURL          string          `gorm:"type:text" json:"image_url"`
	CategoryID        *string         `gorm:"size:36;index" json:"category_id"`
	IsActive          bool            `gorm:"not null" json:"is_active"`
	SortOrder         int             `gorm:"default:0;index" json:"sort_order"`
	HasVariants       bool            `gorm:"default:false" json:"has_variants"`
	BaseQuantity      int             `gorm:"default:0" json:"base_quantity"`
	Images            []ProductImage  `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.PriceCurrency == "" {
		p.PriceCurrency = DefaultPriceCurrency
	}
	return
}

// CategoryRef returns the category id or "" for uncategorised products.
func (p Product) CategoryRef() string {
	if p.CategoryID == nil {
		return ""
	}
	return *p.CategoryID
}

type ProductImage struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string    `gorm:"size:36;not null;index" json:"product_id"`
	ImageURL  string    `gorm:"type:text;not null" json:"image_url"`
	AltText   string    `gorm:"size:255" json:"alt_text"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (pi *ProductImage) BeforeCreate(tx *gorm.DB) (err error) {
	if pi.ID == "" {
		pi.ID = uuid.New().String()
	}
	return
}
