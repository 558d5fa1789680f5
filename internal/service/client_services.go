package service

import (
	"errors"

	"github.com/MKhiriev/cheddup/internal/adapter"
	"github.com/MKhiriev/cheddup/internal/logger"
)

var errNilAdapter = errors.New("backend adapter is nil")

// ClientServices groups the services shared by the terminal client and the
// web shell.
type ClientServices struct {
	UploadService UploadService
	ChatService   ChatService
}

func NewClientServices(backend adapter.BackendAdapter, logger *logger.Logger) (*ClientServices, error) {
	if backend == nil {
		return nil, errNilAdapter
	}

	return &ClientServices{
		UploadService: NewUploadService(backend, logger),
		ChatService:   NewChatService(backend, logger),
	}, nil
}
