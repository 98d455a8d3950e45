package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Path namespaces under the blob root. Filenames are timestamp-uniquified so
// concurrent uploads never collide.
const (
	NamespaceServiceImages      = "service-images"
	NamespacePaymentQRs         = "payment-qrs"
	NamespacePaymentScreenshots = "payment-screenshots"
)

// BlobStore persists uploaded files and returns publicly resolvable URLs.
type BlobStore interface {
	// Save writes content under namespace with the given original filename
	// and returns the public URL. An error means nothing was stored.
	Save(namespace, filename string, content []byte) (string, error)
}

// LocalStore writes blobs to a directory served as static files (the
// /uploads route in main).
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

var unsafeChars = regexp.MustCompile(`[^\w\d\-_\.]`)

func (s *LocalStore) Save(namespace, filename string, content []byte) (string, error) {
	cleanName := unsafeChars.ReplaceAllString(filename, "_")
	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), cleanName)

	dir := filepath.Join(s.Dir, namespace)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	savePath := filepath.Join(dir, name)
	if err := os.WriteFile(savePath, content, 0644); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return fmt.Sprintf("%s/uploads/%s/%s", s.BaseURL, namespace, name), nil
}
