package services

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"asset-management-api/utils"
)

const maxUploadBytes = 10 * 1024 * 1024

var allowedUploadExts = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".csv":  true,
}

// FileStagingService moves validated uploads into a staging directory
// under a collision-free name. The staged file belongs to exactly one
// request and must be cleaned up on every exit path.
type FileStagingService struct {
	dir string
}

func NewFileStagingService(dir string) *FileStagingService {
	return &FileStagingService{dir: dir}
}

// Stage validates extension and size, then copies the upload into the
// staging directory. It returns the staged path.
func (s *FileStagingService) Stage(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedUploadExts[ext] {
		return "", ErrUnsupportedFileType
	}
	if fh.Size > maxUploadBytes {
		return "", ErrFileTooLarge
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	path := filepath.Join(s.dir, utils.GenerateUniqueFilename(fh.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to stage upload: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to stage upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to stage upload: %w", err)
	}
	return path, nil
}

// Cleanup removes a staged file. Callers defer it so the file is gone on
// success, validation failure and panic alike.
func (s *FileStagingService) Cleanup(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[IMPORT][WARN] failed to remove staged file %q: %v", path, err)
	}
}
