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

type chatService struct {
	backend   adapter.BackendAdapter
	validator validators.Validator
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewChatService(backend adapter.BackendAdapter, logger *logger.Logger) ChatService {
	return &chatService{
		backend:   backend,
		validator: validators.NewFormValidator(),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

func (s *chatService) Ask(ctx context.Context, question string) models.ChatResult {
	req := models.ChatRequest{Question: question}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ChatResult{Answer: app.MsgEnterQuestion}
	}

	requestID := s.ids.Generate()
	ctx = utils.WithRequestID(ctx, requestID)
	log := s.logger.With().
		Str("request_id", requestID).
		Int("question_len", len(question)).
		Logger()

	start := time.Now()
	resp, err := s.backend.Chat(ctx, req)
	if err != nil {
		log.Error().Err(err).Dur("duration", time.Since(start)).Msg("chat failed")
		return models.ChatResult{
			Answer: failureMessage(err, app.MsgChatFailedStatus, app.MsgChatFailed),
		}
	}

	answer := app.MsgNoResponse
	if resp.Answer != nil && *resp.Answer != "" {
		answer = *resp.Answer
	}

	sources := resp.SourceNames()
	log.Info().
		Bool("answered", answer != app.MsgNoResponse).
		Int("documents", len(resp.Documents)).
		Dur("duration", time.Since(start)).
		Msg("chat answered")

	return models.ChatResult{
		Success: true,
		Answer:  answer,
		Sources: sources,
	}
}
