package repositories

import "gorm.io/gorm"

// ListOptions mirrors the accessor contract: optional is_active filter, always ordered by sort_order.
type ListOptions struct {
	ActiveOnly bool
}

func activeScope(opts ListOptions) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if opts.ActiveOnly {
			return db.Where("is_active = ?", true)
		}
		return db
	}
}
