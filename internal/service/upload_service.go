package service

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/prepmint/examcore/config"
	"github.com/prepmint/examcore/internal/model"
	"github.com/prepmint/examcore/internal/storage"
	"github.com/rs/zerolog/log"
)

// UploadService stores question images in the object store and hands back a
// public URL. The rest of the system treats that URL as an opaque string.
type UploadService interface {
	UploadImage(filename string, r io.Reader) (string, error)
}

type uploadService struct {
	store   storage.BlobStore
	baseURL string
}

func NewUploadService(store storage.BlobStore, cfg *config.Config) UploadService {
	return &uploadService{
		store:   store,
		baseURL: strings.TrimSuffix(cfg.Storage.BaseURL, "/"),
	}
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

func (s *uploadService) UploadImage(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("%w: unsupported image extension %q", model.ErrValidation, ext)
	}

	key := "question-images/" + uuid.NewString() + ext
	if _, err := s.store.Put(key, r); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to store question image")
		return "", fmt.Errorf("%w: storing image: %v", model.ErrPersistence, err)
	}
	return s.baseURL + "/" + key, nil
}
