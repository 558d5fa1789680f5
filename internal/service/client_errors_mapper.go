// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/MKhiriev/cheddup/internal/adapter"
	"github.com/MKhiriev/cheddup/internal/app"
)

// failureMessage turns an adapter error into status text: non-2xx responses
// become statusFormat with the code, connection failures become
// [app.MsgServerUnavailable], anything else keeps its own message, and an
// error with no text becomes fallback.
func failureMessage(err error, statusFormat, fallback string) string {
	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf(statusFormat, statusErr.StatusCode)
	}

	if msg := humanizeTransportError(err); msg != "" {
		return msg
	}

	return fallback
}

func humanizeTransportError(err error) string {
	if err == nil {
		return ""
	}

	if isUnreachable(err) {
		return app.MsgServerUnavailable
	}

	// errors flattened to text on the way up still carry the dial wording
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") ||
		strings.Contains(s, "client.timeout exceeded") {
		return app.MsgServerUnavailable
	}

	return strings.TrimSpace(err.Error())
}

func isUnreachable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
