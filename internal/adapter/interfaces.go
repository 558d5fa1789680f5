// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the knowledge
// backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPBackendAdapter]).
//
// Non-2xx responses are returned as [*StatusError] so callers can recover
// the status code with [errors.As]; transport failures are returned wrapped
// with the name of the failed call.
package adapter

import (
	"context"

	"github.com/MKhiriev/cheddup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines transport-agnostic communication with the knowledge
// backend.
type BackendAdapter interface {
	// Upload sends one file as a multipart body with field "file" to
	// POST /upload. The response body is decoded when it is JSON; an
	// undecodable 2xx body yields a zero [models.UploadResponse], not an
	// error.
	Upload(ctx context.Context, file models.UploadFile) (models.UploadResponse, error)

	// Chat sends req as JSON to POST /chat and decodes the JSON response.
	// A 2xx response whose body is not valid JSON is an error.
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
}
