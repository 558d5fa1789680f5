// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks form input before a request is sent to the
// backend.
//
// A Validator inspects one value and may be scoped to a subset of named
// fields. FormValidator covers the selected upload file and the chat
// question. Services turn the returned sentinel errors into status copy.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
