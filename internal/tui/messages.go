package tui

import "github.com/MKhiriev/cheddup/models"

// NavigateTo asks [RootModel] to open the view resolved from Path.
type NavigateTo struct {
	Path string
}

type uploadDoneMsg struct {
	result models.UploadResult
}

type chatDoneMsg struct {
	result models.ChatResult
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

// clearStatusMsg hides the status set with the same seq.
type clearStatusMsg struct {
	seq int
}
