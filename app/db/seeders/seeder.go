package seeders

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed catalog.yaml
var catalogYAML []byte

type Catalog struct {
	Settings   map[string]string `yaml:"settings"`
	Categories []CategorySeed    `yaml:"categories"`
	Products   []ProductSeed     `yaml:"products"`
	Colors     []ColorSeed       `yaml:"colors"`
	Sizes      []SizeSeed        `yaml:"sizes"`
}

type CategorySeed struct {
	Name      string `yaml:"name"`
	Slug      string `yaml:"slug"`
	Icon      string `yaml:"icon"`
	SortOrder int    `yaml:"sort_order"`
}

type ProductSeed struct {
	Name              string `yaml:"name"`
	Price             string `yaml:"price"`
	Category          string `yaml:"category"`
	Description       string `yaml:"description"`
	AdditionalDetails string `yaml:"additional_details"`
	ImageURL          string `yaml:"image_url"`
}

type ColorSeed struct {
	Name    string `yaml:"name"`
	HexCode string `yaml:"hex_code"`
}

type SizeSeed struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
}

func LoadCatalog() (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(catalogYAML, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse seed catalog: %w", err)
	}
	return &catalog, nil
}

type Seeder struct {
	Name string
	Run  func(ctx context.Context, db *gorm.DB) error
}

func SeedersRegister(catalog *Catalog) []Seeder {
	return []Seeder{
		{Name: "settings", Run: catalog.seedSettings},
		{Name: "categories", Run: catalog.seedCategories},
		{Name: "products", Run: catalog.seedProducts},
		{Name: "variants", Run: catalog.seedVariants},
	}
}

// DBSeed is idempotent: rows are matched by their natural key and existing ones are left untouched.
func DBSeed(ctx context.Context, db *gorm.DB) error {
	catalog, err := LoadCatalog()
	if err != nil {
		return err
	}
	for _, seeder := range SeedersRegister(catalog) {
		if err := seeder.Run(ctx, db); err != nil {
			return fmt.Errorf("seeding %s: %w", seeder.Name, err)
		}
		log.Printf("✅ Seeded %s", seeder.Name)
	}
	return nil
}

func (c *Catalog) seedSettings(ctx context.Context, db *gorm.DB) error {
	for _, field := range services.SettingFields {
		value, ok := c.Settings[field.Key]
		if !ok {
			continue
		}
		setting := models.Setting{Key: field.Key, Value: value, Description: field.Description}
		err := db.WithContext(ctx).Where(&models.Setting{Key: field.Key}).FirstOrCreate(&setting).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) seedCategories(ctx context.Context, db *gorm.DB) error {
	for _, seed := range c.Categories {
		category := models.Category{
			Name:      seed.Name,
			Slug:      seed.Slug,
			Icon:      seed.Icon,
			SortOrder: seed.SortOrder,
			IsActive:  true,
		}
		err := db.WithContext(ctx).Where(&models.Category{Slug: seed.Slug}).FirstOrCreate(&category).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) seedProducts(ctx context.Context, db *gorm.DB) error {
	for i, seed := range c.Products {
		price, err := decimal.NewFromString(seed.Price)
		if err != nil {
			return fmt.Errorf("product %q has invalid price %q: %w", seed.Name, seed.Price, err)
		}

		var category models.Category
		err = db.WithContext(ctx).Where(&models.Category{Slug: seed.Category}).First(&category).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		product := models.Product{
			Name:              seed.Name,
			Description:       seed.Description,
			AdditionalDetails: seed.AdditionalDetails,
			Price:             price,
			PriceCurrency:     models.DefaultPriceCurrency,
			ImageURL:          seed.ImageURL,
			IsActive:          true,
			SortOrder:         i,
		}
		if category.ID != "" {
			product.CategoryID = &category.ID
		}

		err = db.WithContext(ctx).Omit("Images").Where(&models.Product{Name: seed.Name}).FirstOrCreate(&product).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) seedVariants(ctx context.Context, db *gorm.DB) error {
	for i, seed := range c.Colors {
		color := models.Color{Name: seed.Name, HexCode: seed.HexCode, IsActive: true, SortOrder: i}
		if err := db.WithContext(ctx).Where(&models.Color{Name: seed.Name}).FirstOrCreate(&color).Error; err != nil {
			return err
		}
	}
	for i, seed := range c.Sizes {
		size := models.Size{Name: seed.Name, DisplayName: seed.DisplayName, IsActive: true, SortOrder: i}
		if err := db.WithContext(ctx).Where(&models.Size{Name: seed.Name}).FirstOrCreate(&size).Error; err != nil {
			return err
		}
	}
	return nil
}
