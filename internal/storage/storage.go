package storage

import (
	"context"
	"errors"
)

var (
	ErrEmptyFile   = errors.New("empty file")
	ErrNotImage    = errors.New("file is not an image")
	ErrForeignFile = errors.New("file does not belong to this bucket")
)

// FileStorage keeps uploaded images (professional photos, salon cover) and
// hands back their public URL.
type FileStorage interface {
	UploadImage(ctx context.Context, folder string, data []byte, filename string) (string, error)

	DeleteFile(ctx context.Context, fileURL string) error
}
