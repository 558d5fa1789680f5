// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the two client operations on top of the
// backend adapter: validating input, issuing the call, and turning every
// outcome into the status text the views display.
//
// Services never return errors. Validation failures and transport failures
// are both recovered here and surfaced as result messages.
package service

import (
	"context"

	"github.com/MKhiriev/cheddup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// UploadService submits files to the backend for indexing.
type UploadService interface {
	// Upload sends file to the backend. A nil file, or one without a name,
	// yields the "Please select a file." result and no request is made.
	Upload(ctx context.Context, file *models.UploadFile) models.UploadResult
}

// ChatService asks the backend questions about the uploaded documents.
type ChatService interface {
	// Ask sends question exactly as given. A blank or whitespace-only
	// question yields the "Enter a question." result and no request is made.
	Ask(ctx context.Context, question string) models.ChatResult
}
