// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It owns the process lifecycle around the terminal UI: termination signals
// cancel the UI context and end the program cleanly.
package client
