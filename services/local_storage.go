// Package services holds the application's business logic.
// File: services/local_storage.go
package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"courtside/logger"
	"courtside/models"
)

// LocalPhotoStorage writes photos to a directory served statically by the
// router. Writes go through a temp file and a rename so a failed upload
// never leaves a partial file behind.
type LocalPhotoStorage struct {
	dir       string
	urlPrefix string
}

// NewLocalPhotoStorage creates a local storage backend rooted at dir.
// urlPrefix is the public path the directory is served under,
// e.g. "/uploads/staff".
func NewLocalPhotoStorage(dir, urlPrefix string) *LocalPhotoStorage {
	return &LocalPhotoStorage{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}
}

// Store saves the photo and returns its static-serving URL.
func (s *LocalPhotoStorage) Store(_ context.Context, content []byte, originalFilename, _ string) (string, error) {
	if len(content) == 0 {
		return "", models.ErrEmptyUpload
	}

	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	filename := randomFilename(originalFilename)
	target := filepath.Join(s.dir, filename)

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing photo: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing photo: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("storing photo: %w", err)
	}

	url := s.urlPrefix + "/" + filename
	logger.Info.Printf("Stored photo at %s (url=%s)", target, url)
	return url, nil
}
