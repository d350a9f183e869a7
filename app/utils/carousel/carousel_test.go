package carousel

import (
	"testing"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/stretchr/testify/assert"
)

func TestNextWrapsToFirst(t *testing.T) {
	for n := 1; n <= 5; n++ {
		assert.Equal(t, 0, Next(n-1, n), "n=%d", n)
		for i := 0; i < n-1; i++ {
			assert.Equal(t, i+1, Next(i, n))
		}
	}
}

func TestPrevWrapsToLast(t *testing.T) {
	for n := 1; n <= 5; n++ {
		assert.Equal(t, n-1, Prev(0, n), "n=%d", n)
	}
	assert.Equal(t, 1, Prev(2, 3))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0, Normalize(5, 0))
	assert.Equal(t, 2, Normalize(-1, 3))
	assert.Equal(t, 1, Normalize(7, 3))
	assert.Equal(t, 0, Normalize(-9, 3))
}

func TestNextPrevAreInverse(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for i := 0; i < n; i++ {
			assert.Equal(t, i, Prev(Next(i, n), n))
			assert.Equal(t, i, Next(Prev(i, n), n))
		}
	}
}

func TestSlides(t *testing.T) {
	assert.Len(t, Slides(nil, ""), 3)

	slides := Slides([]models.HeroImage{{ID: "a", ImageURL: "/a.png", Title: "A"}}, "")
	assert.Len(t, slides, 1)
	assert.Equal(t, "اكتشف مجموعتنا المميزة", slides[0].Subtitle)

	slides = Slides([]models.HeroImage{{ID: "a"}}, "sub")
	assert.Equal(t, "sub", slides[0].Subtitle)
}
