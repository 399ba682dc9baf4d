package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"thumbnail-backend/internal/models"
	"thumbnail-backend/internal/storage"
	"thumbnail-backend/internal/thumbnail"
)

const (
	thumbnailFilename = "thumbnail.png"
	failureTimeout    = 5 * time.Second
)

type ThumbnailRepository interface {
	CreateThumbnail(ctx context.Context, t *models.Thumbnail) error
	GetThumbnail(ctx context.Context, id, userID uuid.UUID) (*models.Thumbnail, error)
	ListThumbnails(ctx context.Context, userID uuid.UUID) ([]models.Thumbnail, error)
	CompleteThumbnail(ctx context.Context, t *models.Thumbnail, imageURL string) error
	FailThumbnail(ctx context.Context, id uuid.UUID, reason string) error
	DeleteThumbnail(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt, model string) ([]byte, error)
}

type MediaStore interface {
	Upload(ctx context.Context, userID, thumbnailID uuid.UUID, filename string, r io.Reader) (string, error)
}

// UploadError reports a failed hand-off to the media host.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return e.Err.Error()
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// ThumbnailService runs the generation pipeline. Each call is sequential and
// makes a single attempt at every external step.
type ThumbnailService struct {
	repo      ThumbnailRepository
	generator ImageGenerator
	media     MediaStore
	scratch   *storage.ScratchDir
	model     string
	logger    zerolog.Logger
}

// NewThumbnailService wires the pipeline. scratch may be nil, in which case
// images are uploaded straight from memory.
func NewThumbnailService(
	repo ThumbnailRepository,
	generator ImageGenerator,
	media MediaStore,
	scratch *storage.ScratchDir,
	model string,
	logger zerolog.Logger,
) *ThumbnailService {
	return &ThumbnailService{
		repo:      repo,
		generator: generator,
		media:     media,
		scratch:   scratch,
		model:     model,
		logger:    logger,
	}
}

// Generate validates req, records a pending thumbnail and renders it. A
// *thumbnail.ValidationError means nothing was stored. Any later error leaves
// the record marked failed; the returned thumbnail is nil in both cases.
func (s *ThumbnailService) Generate(ctx context.Context, userID uuid.UUID, req thumbnail.Request) (*models.Thumbnail, error) {
	if err := thumbnail.Validate(&req); err != nil {
		return nil, err
	}

	th := models.NewPendingThumbnail(userID, req)
	if err := s.repo.CreateThumbnail(ctx, th); err != nil {
		return nil, err
	}

	log := s.logger.With().
		Str("thumbnail_id", th.ID.String()).
		Str("user_id", userID.String()).
		Logger()
	log.Debug().Str("style", string(req.Style)).Msg("thumbnail generation started")

	if err := s.render(ctx, th, req, log); err != nil {
		log.Error().Err(err).Msg("thumbnail generation failed")
		s.markFailed(ctx, th, err, log)
		return nil, err
	}

	log.Info().Str("image_url", th.ImageURL.String).Msg("thumbnail generated")
	return th, nil
}

func (s *ThumbnailService) render(ctx context.Context, th *models.Thumbnail, req thumbnail.Request, log zerolog.Logger) error {
	prompt := thumbnail.ComposePrompt(req)
	log.Debug().Str("prompt", prompt).Msg("calling inference provider")

	data, err := s.generator.GenerateImage(ctx, prompt, s.model)
	if err != nil {
		return err
	}

	var body io.Reader = bytes.NewReader(data)
	if s.scratch != nil {
		path, err := s.scratch.Write(ctx, data)
		if err != nil {
			return err
		}
		defer func() {
			if err := s.scratch.Remove(path); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("failed to remove scratch file")
			}
		}()

		f, err := s.scratch.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		body = f
	}

	imageURL, err := s.media.Upload(ctx, th.UserID, th.ID, thumbnailFilename, body)
	if err != nil {
		return &UploadError{Err: err}
	}

	return s.repo.CompleteThumbnail(ctx, th, imageURL)
}

// markFailed records cause on th. It runs even when ctx is already canceled so
// an aborted request does not leave the record pending.
func (s *ThumbnailService) markFailed(ctx context.Context, th *models.Thumbnail, cause error, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), failureTimeout)
	defer cancel()

	if err := s.repo.FailThumbnail(ctx, th.ID, cause.Error()); err != nil {
		log.Error().Err(err).Msg("failed to mark thumbnail failed")
		return
	}
	th.Status = thumbnail.StatusFailed
	th.IsGenerating = false
}

func (s *ThumbnailService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Thumbnail, error) {
	return s.repo.GetThumbnail(ctx, id, userID)
}

func (s *ThumbnailService) List(ctx context.Context, userID uuid.UUID) ([]models.Thumbnail, error) {
	return s.repo.ListThumbnails(ctx, userID)
}

// Delete removes the thumbnail when userID owns it and reports whether a
// record was removed. Missing and foreign records are indistinguishable.
func (s *ThumbnailService) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	deleted, err := s.repo.DeleteThumbnail(ctx, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete thumbnail %s: %w", id, err)
	}
	if deleted {
		s.logger.Info().Str("thumbnail_id", id.String()).Str("user_id", userID.String()).Msg("thumbnail deleted")
	}
	return deleted, nil
}
