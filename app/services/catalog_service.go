package services

import (
	"github.com/Rakhulsr/go-catalog/app/models"
)

const AllCategories = "all"

// FilterByCategory keeps products whose category matches the category with the given slug.
// "all" or "" returns products unchanged; an unknown slug matches nothing.
func FilterByCategory(products []models.Product, categories []models.Category, slug string) []models.Product {
	if slug == "" || slug == AllCategories {
		return products
	}

	categoryID := ""
	for _, c := range categories {
		if c.Slug == slug {
			categoryID = c.ID
			break
		}
	}

	filtered := make([]models.Product, 0, len(products))
	if categoryID == "" {
		return filtered
	}
	for _, p := range products {
		if p.CategoryRef() == categoryID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Gallery is the primary image followed by active gallery images in sort order.
func Gallery(product models.Product) []string {
	images := make([]string, 0, len(product.Images)+1)
	if product.ImageURL != "" {
		images = append(images, product.ImageURL)
	}
	for _, img := range product.Images {
		if img.IsActive && img.ImageURL != "" {
			images = append(images, img.ImageURL)
		}
	}
	return images
}
