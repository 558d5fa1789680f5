package service

import (
	"context"
	"time"

	"github.com/MKhiriev/cheddup/internal/adapter"
	"github.com/MKhiriev/cheddup/internal/app"
	"github.com/MKhiriev/cheddup/internal/logger"
	"github.com/MKhiriev/cheddup/internal/utils"
	"github.com/MKhiriev/cheddup/internal/validators"
	"github.com/MKhiriev/cheddup/models"
)

type uploadService struct {
	backend   adapter.BackendAdapter
	validator validators.Validator
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewUploadService(backend adapter.BackendAdapter, logger *logger.Logger) UploadService {
	return &uploadService{
		backend:   backend,
		validator: validators.NewFormValidator(),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

func (s *uploadService) Upload(ctx context.Context, file *models.UploadFile) models.UploadResult {
	if err := s.validator.Validate(ctx, file); err != nil {
		return models.UploadResult{Message: app.MsgSelectFile}
	}

	requestID := s.ids.Generate()
	ctx = utils.WithRequestID(ctx, requestID)
	log := s.logger.With().
		Str("request_id", requestID).
		Str("file", file.Name).
		Int("size", len(file.Data)).
		Logger()

	start := time.Now()
	resp, err := s.backend.Upload(ctx, *file)
	if err != nil {
		log.Error().Err(err).Dur("duration", time.Since(start)).Msg("upload failed")
		return models.UploadResult{
			Message: failureMessage(err, app.MsgUploadFailedStatus, app.MsgUploadFailed),
		}
	}

	log.Info().
		Int("chunks_added", resp.ChunksAdded).
		Dur("duration", time.Since(start)).
		Msg("upload successful")

	return models.UploadResult{
		Success:     true,
		Message:     app.MsgUploadSuccessful,
		ChunksAdded: resp.ChunksAdded,
	}
}
