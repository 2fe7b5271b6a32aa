package usecase

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/dhowden/tag"
	"github.com/google/uuid"
	"github.com/h2non/filetype"

	"github.com/olprod/olprod-backend/domain"
	"github.com/olprod/olprod-backend/internal/logger"
)

var audioExtensions = map[string]bool{
	"mp3":  true,
	"flac": true,
	"wav":  true,
	"m4a":  true,
	"ogg":  true,
}

var coverExtensions = map[string]bool{
	"jpg":  true,
	"png":  true,
	"webp": true,
}

type UploadConfig struct {
	MediaDir   string
	PublicPath string
}

type uploadUsecase struct {
	config UploadConfig
}

func NewUploadUsecase(config UploadConfig) domain.UploadUsecase {
	if config.PublicPath == "" {
		config.PublicPath = "/media"
	}
	return &uploadUsecase{config: config}
}

// Store sniffs the payload's real content type, never trusting the client's
// filename or declared MIME, and persists accepted files under a random name.
func (uc *uploadUsecase) Store(ctx context.Context, kind string, data []byte) (*domain.UploadResult, error) {
	if kind != domain.MediaKindAudio && kind != domain.MediaKindCover {
		return nil, domain.NewValidationError("kind must be audio or cover")
	}
	if len(data) == 0 {
		return nil, domain.NewValidationError("file is empty")
	}

	matched, err := filetype.Match(data)
	if err != nil || matched == filetype.Unknown {
		return nil, domain.ErrUnsupportedMedia
	}

	allowed := coverExtensions
	if kind == domain.MediaKindAudio {
		allowed = audioExtensions
	}
	if !allowed[matched.Extension] {
		return nil, domain.ErrUnsupportedMedia
	}

	name := uuid.New().String() + "." + matched.Extension
	if err := os.MkdirAll(uc.config.MediaDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare media directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(uc.config.MediaDir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to store media file: %w", err)
	}

	result := &domain.UploadResult{
		URL:  path.Join(uc.config.PublicPath, name),
		Kind: kind,
	}

	if kind == domain.MediaKindAudio {
		// Best effort: broken or missing tags are not an upload failure.
		if meta, err := tag.ReadFrom(bytes.NewReader(data)); err == nil {
			result.SuggestedTitle = meta.Title()
			result.SuggestedArtist = meta.Artist()
			result.SuggestedGenre = meta.Genre()
		}
	}

	logger.Info(logger.EventMediaUpload, "media stored", logger.Fields(
		"kind", kind,
		"type", matched.Extension,
		"bytes", len(data),
	))
	return result, nil
}
