package migrations

import (
	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.HeroImage{},
		&models.Setting{},
		&models.Order{},
		&models.ProductView{},
		&models.ProductInquiry{},
		&models.Color{},
		&models.Size{},
		&models.ContactMessage{},
	)
}
