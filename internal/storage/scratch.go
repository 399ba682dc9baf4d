package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ScratchDir holds generated images between inference and upload. It is shared
// by concurrent requests, so every file gets a unique name.
type ScratchDir struct {
	basePath string
	now      func() time.Time
}

func NewScratchDir(basePath string) (*ScratchDir, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("scratch: base path is required")
	}
	return &ScratchDir{basePath: basePath, now: time.Now}, nil
}

// Write stores data as thumbnail-<unix nanos>-<random>.png and returns the file
// path. The directory is created when missing.
func (s *ScratchDir) Write(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return "", fmt.Errorf("scratch: ensure directory: %w", err)
	}

	name := fmt.Sprintf("thumbnail-%d-%s.png", s.now().UnixNano(), uuid.NewString()[:8])
	fullPath := filepath.Join(s.basePath, name)

	// O_EXCL so two writers can never share a file.
	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("scratch: create file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("scratch: write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("scratch: close file: %w", err)
	}
	return fullPath, nil
}

// Open returns a reader for a file produced by Write.
func (s *ScratchDir) Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scratch: open file: %w", err)
	}
	return f, nil
}

// Remove deletes a scratch file. A file that is already gone is not an error.
func (s *ScratchDir) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("scratch: remove file: %w", err)
	}
	return nil
}
