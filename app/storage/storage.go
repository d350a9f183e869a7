package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	BucketProductImages = "product-images"
	BucketHeroImages    = "hero-images"

	// MaxImageSize bounds a single upload read into memory.
	MaxImageSize = 10 << 20
)

var ErrUnsupportedMedia = errors.New("uploaded file is not an image")

// Store puts an object into a bucket and returns its public URL.
type Store interface {
	Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) (string, error)
}

type Config struct {
	Driver    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
	PublicURL string
	LocalDir  string
}

func New(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalStore(cfg.LocalDir, cfg.PublicURL), nil
	case "minio":
		return NewMinioStore(cfg)
	case "s3":
		return NewS3Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.Driver)
	}
}

// KeyFunc names an object from the extension of its sniffed content type, e.g. ".png".
type KeyFunc func(ext string) string

// RandomKey names an object "<uuid><ext>".
func RandomKey(ext string) string {
	return uuid.New().String() + ext
}

// GalleryKey names additional product images "<productID>_<unixms>_<index><ext>".
func GalleryKey(productID string, unixMilli int64, index int) KeyFunc {
	return func(ext string) string {
		return fmt.Sprintf("%s_%d_%d%s", productID, unixMilli, index, ext)
	}
}

// Image is an upload that was sniffed and is known to be an image.
type Image struct {
	Data        []byte
	ContentType string
	Extension   string
}

func (i Image) Reader() io.Reader { return bytes.NewReader(i.Data) }
func (i Image) Size() int64       { return int64(len(i.Data)) }

// ReadImage reads at most MaxImageSize bytes and checks the content is image/*.
func ReadImage(r io.Reader) (Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return Image{}, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return Image{}, ErrUnsupportedMedia
	}
	if len(data) > MaxImageSize {
		return Image{}, fmt.Errorf("upload exceeds %d bytes", MaxImageSize)
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return Image{}, fmt.Errorf("%w: detected %s", ErrUnsupportedMedia, mt.String())
	}
	return Image{Data: data, ContentType: mt.String(), Extension: mt.Extension()}, nil
}

// UploadImage sniffs r and uploads it under name(ext). The client's file name plays no part
// in the key.
func UploadImage(ctx context.Context, store Store, bucket string, name KeyFunc, r io.Reader) (string, error) {
	img, err := ReadImage(r)
	if err != nil {
		return "", err
	}
	return store.Upload(ctx, bucket, name(img.Extension), img.Reader(), img.Size(), img.ContentType)
}

func joinURL(base, bucket, key string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + key
}
