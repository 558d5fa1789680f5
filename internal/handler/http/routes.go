package http

import (
	"github.com/MKhiriev/cheddup/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip)

	router.Get(app.PathUpload, h.uploadPage)
	router.Post(app.PathUpload, h.uploadFile)
	router.Get(app.PathChat, h.chatPage)
	router.Post(app.PathChat, h.askQuestion)

	// unknown paths fall back to the upload view
	router.NotFound(h.uploadPage)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
