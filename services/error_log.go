package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrorLogService persists per-row import errors as plain text files,
// one error per line, and serves them back for the history detail view.
// The ledger stores only the generated filename, never the content.
type ErrorLogService struct {
	dir string
}

func NewErrorLogService(dir string) *ErrorLogService {
	return &ErrorLogService{dir: dir}
}

// Write persists the ordered error list and returns the generated
// filename, or nil when there is nothing to log.
func (s *ErrorLogService) Write(errs []string) (*string, error) {
	if len(errs) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create error log directory: %w", err)
	}

	name := fmt.Sprintf("errors_%s.txt", uuid.NewString())
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(errs, "\n")), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write error log: %w", err)
	}
	return &name, nil
}

// Read returns the text of a previously written log. The name comes from
// the ledger, but it is still validated against path traversal.
func (s *ErrorLogService) Read(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid error log name %q", name)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
