// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the client's shared copy and routing rules: the status
// strings both forms display, the route table with its fallback, and the
// hero copy chosen by the current path.
//
// The terminal client and the web shell both render from these values so
// the two surfaces stay word-for-word identical.
package app

const (
	// MsgSelectFile is shown when the upload form is submitted without a file.
	MsgSelectFile = "Please select a file."

	// MsgUploadSuccessful is shown after the backend accepted a file.
	MsgUploadSuccessful = "Upload successful."

	// MsgUploadFailed is the fallback when an upload error carries no text.
	MsgUploadFailed = "Upload failed."

	// MsgUploadFailedStatus formats a non-2xx upload response.
	MsgUploadFailedStatus = "Upload failed: %d"

	// MsgIndexedChunks reports how many chunks the backend indexed.
	MsgIndexedChunks = "Indexed %d chunks."

	// MsgEnterQuestion is shown when chat is sent with a blank question.
	MsgEnterQuestion = "Enter a question."

	// MsgNoResponse is shown when a successful chat reply has no answer.
	MsgNoResponse = "No response."

	// MsgChatFailed is the fallback when a chat error carries no text.
	MsgChatFailed = "Chat failed."

	// MsgChatFailedStatus formats a non-2xx chat response.
	MsgChatFailedStatus = "Chat failed: %d"

	// MsgServerUnavailable replaces low-level dial and timeout errors.
	MsgServerUnavailable = "Network is unavailable or the server is unreachable"
)

// Form labels.
const (
	LabelUpload    = "Upload & index"
	LabelUploading = "Uploading..."
	LabelSend      = "Send"
	LabelSending   = "Sending..."

	PickerPlaceholder = "Choose a file from your device"
	PickerHint        = "Max 20MB • Securely stored in your private vector space"
	ChatPlaceholder   = "Ask a question"
)
