package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lists the statuses in display order with their Arabic labels.
var OrderStatuses = []struct {
	Value string
	Label string
}{
	{OrderStatusPending, "في الانتظار"},
	{OrderStatusInProgress, "قيد التنفيذ"},
	{OrderStatusShipped, "تم الشحن"},
	{OrderStatusDelivered, "تم التسليم"},
	{OrderStatusCancelled, "ملغي"},
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s.Value == status {
			return true
		}
	}
	return false
}

// OrderStatusLabel falls back to the pending label for unknown values.
func OrderStatusLabel(status string) string {
	for _, s := range OrderStatuses {
		if s.Value == status {
			return s.Label
		}
	}
	return OrderStatuses[0].Label
}

type Order struct {
	ID              string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CustomerName    string          `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone   string          `gorm:"size:30;not null" json:"customer_phone"`
	CustomerEmail   string          `gorm:"size:255" json:"customer_email,omitempty"`
	CustomerAddress string          `gorm:"type:text" json:"customer_address,omitempty"`
	Status          string          `gorm:"size:20;not null;default:'pending';index" json:"status"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"total_amount"`
	Notes           string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return
}

func (o Order) StatusLabel() string {
	return OrderStatusLabel(o.Status)
}
