// Package services holds the application's business logic.
// File: services/photo_storage.go
package services

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"
)

// PhotoStorage persists an uploaded photo and returns its public URL.
// Two implementations exist: local disk and S3, selected by configuration.
type PhotoStorage interface {
	Store(ctx context.Context, content []byte, originalFilename, contentType string) (string, error)
}

// randomFilename builds a collision-resistant name, keeping the original
// extension (including its case) so the URL stays recognisable.
func randomFilename(originalFilename string) string {
	ext := filepath.Ext(filepath.Base(originalFilename))
	return uuid.NewString() + ext
}
