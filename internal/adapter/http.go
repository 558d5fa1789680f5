package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/cheddup/internal/config"
	"github.com/MKhiriev/cheddup/internal/logger"
	"github.com/MKhiriev/cheddup/internal/utils"
	"github.com/MKhiriev/cheddup/models"
)

const (
	uploadPath      = "/upload"
	chatPath        = "/chat"
	uploadFormField = "file"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP implementation of
// [BackendAdapter]. It normalises the base URL from adapterCfg.HTTPAddress
// ("host:port" gets an http:// scheme) and applies adapterCfg.RequestTimeout
// to every call.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	logger.Info().Str("base_url", baseURL).Dur("timeout", adapterCfg.RequestTimeout).Msg("backend adapter created")

	return &httpBackendAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrAddressWithoutHost
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [BackendAdapter]. It POSTs file to POST /upload as a
// multipart form with the single field "file".
func (h *httpBackendAdapter) Upload(ctx context.Context, file models.UploadFile) (models.UploadResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader(uploadFormField, file.Name, bytes.NewReader(file.Data)).
		Post(uploadPath)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	var out models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		h.logger.Debug().Err(err).Msg("upload response is not JSON, ignoring body")
		return models.UploadResponse{}, nil
	}

	return out, nil
}

// Chat implements [BackendAdapter]. It POSTs req as JSON to POST /chat and
// decodes the response body.
func (h *httpBackendAdapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(chatPath)
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatResponse{}, err
	}

	var out models.ChatResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.ChatResponse{}, fmt.Errorf("decode chat response: %w", err)
	}

	return out, nil
}
