package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore implements FileStore on the local filesystem. Download URLs
// point back at this server's download endpoint with the storage key in
// the query string.
type LocalStore struct {
	baseURL   string // e.g. "http://localhost:8080"
	uploadDir string // e.g. "./uploads"
}

func NewLocalStore(baseURL, uploadDir string) (*LocalStore, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{baseURL: baseURL, uploadDir: uploadDir}, nil
}

func (s *LocalStore) Save(ctx context.Context, keyPrefix, filename, contentType string, r io.Reader) (string, error) {
	ext := filepath.Ext(filename)
	key := fmt.Sprintf("%s/%s%s", keyPrefix, uuid.New().String(), ext)

	fullPath := filepath.Join(s.uploadDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/api/v1/files?key=%s", s.baseURL, url.QueryEscape(key)), nil
}

func (s *LocalStore) Delete(ctx context.Context, fileURL string) error {
	key, err := s.keyFromURL(fileURL)
	if err != nil {
		return err
	}
	fullPath := filepath.Join(s.uploadDir, filepath.FromSlash(key))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStore) Open(key string) (io.ReadCloser, error) {
	// Keys stay inside the upload dir.
	clean := filepath.Clean(filepath.FromSlash(key))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("invalid storage key: %s", key)
	}
	return os.Open(filepath.Join(s.uploadDir, clean))
}

func (s *LocalStore) keyFromURL(fileURL string) (string, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("invalid file URL: %w", err)
	}
	key := u.Query().Get("key")
	if key == "" {
		return "", fmt.Errorf("file URL has no storage key: %s", fileURL)
	}
	return key, nil
}
