package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/lshigami/Formery/config"
	"github.com/rs/zerolog/log"
)

// UploadService stores uploaded binaries under the configured directory and
// returns the stored-file reference ("/uploads/<name>") clients embed in
// profiles and file-question answers.
type UploadService interface {
	SaveFile(originalName string, src io.Reader) (string, error)
}

type uploadService struct {
	dir string
}

func NewUploadService(cfg *config.Config) UploadService {
	return &uploadService{dir: cfg.UploadDir}
}

func (s *uploadService) SaveFile(originalName string, src io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	// The stored name is a fresh uuid; only the extension survives from the
	// client-supplied name.
	name := uuid.NewString() + filepath.Ext(originalName)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write stored file: %w", err)
	}

	log.Info().Str("file", name).Str("original", originalName).Msg("Stored uploaded file")
	return "/uploads/" + name, nil
}
