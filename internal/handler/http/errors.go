// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNilServices is returned by [NewHandler] when no client services are
	// given.
	ErrNilServices = errors.New("client services are nil")
)
