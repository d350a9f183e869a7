package storage

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 32)...)

func named(base string) KeyFunc {
	return func(ext string) string { return base + ext }
}

func TestRandomKey(t *testing.T) {
	key := RandomKey(".jpg")
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f-]{36}\.jpg$`), key)
	assert.NotEqual(t, key, RandomKey(".jpg"))
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f-]{36}$`), RandomKey(""))
}

func TestGalleryKey(t *testing.T) {
	assert.Equal(t, "p1_1700000000000_2.png", GalleryKey("p1", 1700000000000, 2)(".png"))
}

func TestUploadImageTakesExtensionFromContent(t *testing.T) {
	fs := memfs.New()
	store := NewLocalStoreFS(fs, "/uploads")

	url, err := UploadImage(context.Background(), store, BucketProductImages, named("x"), bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/product-images/x.png", url)

	key := ""
	_, err = UploadImage(context.Background(), store, BucketProductImages, func(ext string) string {
		key = RandomKey(ext)
		return key
	}, bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".png"), key)

	_, statErr := fs.Stat(fs.Join(BucketProductImages, "x.html"))
	assert.Error(t, statErr)
}

func TestReadImage(t *testing.T) {
	img, err := ReadImage(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, ".png", img.Extension)
	assert.EqualValues(t, len(pngBytes), img.Size())

	_, err = ReadImage(strings.NewReader("just some text"))
	assert.True(t, errors.Is(err, ErrUnsupportedMedia))

	_, err = ReadImage(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrUnsupportedMedia))
}

func TestLocalStoreUploadAndServe(t *testing.T) {
	fs := memfs.New()
	store := NewLocalStoreFS(fs, "http://localhost:8080/uploads/")

	url, err := UploadImage(context.Background(), store, BucketHeroImages, named("a"), bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/hero-images/a.png", url)

	stored, err := util.ReadFile(fs, fs.Join(BucketHeroImages, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, stored)

	rec := httptest.NewRecorder()
	store.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hero-images/a.png", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pngBytes, rec.Body.Bytes())

	rec = httptest.NewRecorder()
	store.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hero-images/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLocalStoreRejectsNestedKeys(t *testing.T) {
	store := NewLocalStoreFS(memfs.New(), "/uploads")
	_, err := store.Upload(context.Background(), BucketProductImages, "../escape.png", bytes.NewReader(pngBytes), int64(len(pngBytes)), "image/png")
	assert.Error(t, err)
}

func TestUploadImageRejectsNonImages(t *testing.T) {
	fs := memfs.New()
	store := NewLocalStoreFS(fs, "/uploads")
	_, err := UploadImage(context.Background(), store, BucketProductImages, named("a"), strings.NewReader("hello"))
	assert.ErrorIs(t, err, ErrUnsupportedMedia)

	_, statErr := fs.Stat(fs.Join(BucketProductImages, "a"))
	assert.Error(t, statErr)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New(context.Background(), Config{Driver: "ftp"})
	assert.Error(t, err)

	store, err := New(context.Background(), Config{Driver: "local", LocalDir: t.TempDir(), PublicURL: "/uploads"})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, store)
}
