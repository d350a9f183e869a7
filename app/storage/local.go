package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// LocalStore keeps objects under <root>/<bucket>/<key> and serves them itself.
type LocalStore struct {
	fs        billy.Filesystem
	publicURL string
}

func NewLocalStore(dir, publicURL string) *LocalStore {
	if dir == "" {
		dir = "uploads"
	}
	return NewLocalStoreFS(osfs.New(dir), publicURL)
}

// NewLocalStoreFS is used with memfs in tests.
func NewLocalStoreFS(fs billy.Filesystem, publicURL string) *LocalStore {
	return &LocalStore{fs: fs, publicURL: publicURL}
}

func (l *LocalStore) Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.Contains(key, "/") || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid object key %q", key)
	}

	if err := l.fs.MkdirAll(bucket, 0o755); err != nil {
		return "", fmt.Errorf("failed to create bucket dir %s: %w", bucket, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read object %s: %w", key, err)
	}
	if err := util.WriteFile(l.fs, l.fs.Join(bucket, key), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write object %s/%s: %w", bucket, key, err)
	}

	return joinURL(l.publicURL, bucket, key), nil
}

// ServeHTTP serves "/<bucket>/<key>"; mount it with http.StripPrefix.
func (l *LocalStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	parts := strings.Split(strings.TrimPrefix(name, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		http.NotFound(w, r)
		return
	}

	filePath := l.fs.Join(parts[0], parts[1])
	info, err := l.fs.Stat(filePath)
	if err != nil || info.IsDir() {
		if err != nil && !os.IsNotExist(err) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		http.NotFound(w, r)
		return
	}

	f, err := l.fs.Open(filePath)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
