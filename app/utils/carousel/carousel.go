package carousel

import (
	"time"

	"github.com/Rakhulsr/go-catalog/app/models"
)

const Interval = 5 * time.Second

const defaultImage = "/static/img/hero-banner.svg"

type Slide struct {
	ID       string
	ImageURL string
	Title    string
	Subtitle string
}

// DefaultSlides are shown when no active hero image is configured.
var DefaultSlides = []Slide{
	{ID: "default-1", ImageURL: defaultImage, Title: "أجمل التصاميم اليدوية", Subtitle: "اكتشف مجموعتنا المميزة من المنتجات المصنوعة يدوياً بعناية فائقة"},
	{ID: "default-2", ImageURL: defaultImage, Title: "بصمات خشبية فاخرة", Subtitle: "تصاميم عربية أصيلة لإضافة لمسة جمالية مميزة"},
	{ID: "default-3", ImageURL: defaultImage, Title: "مباخر تراثية أنيقة", Subtitle: "روائح عطرة وتصاميم كلاسيكية تجمع بين الأصالة والحداثة"},
}

// Slides maps hero images to slides, falling back to DefaultSlides.
func Slides(images []models.HeroImage, subtitle string) []Slide {
	if len(images) == 0 {
		return DefaultSlides
	}
	if subtitle == "" {
		subtitle = "اكتشف مجموعتنا المميزة"
	}
	slides := make([]Slide, 0, len(images))
	for _, img := range images {
		slides = append(slides, Slide{ID: img.ID, ImageURL: img.ImageURL, Title: img.Title, Subtitle: subtitle})
	}
	return slides
}

// Normalize wraps i into [0, n). It returns 0 when n <= 0.
func Normalize(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func Next(i, n int) int { return Normalize(i+1, n) }

func Prev(i, n int) int { return Normalize(i-1, n) }
