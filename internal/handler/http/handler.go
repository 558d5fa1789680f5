package http

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"github.com/MKhiriev/cheddup/internal/logger"
	"github.com/MKhiriev/cheddup/internal/service"
)

type Handler struct {
	upload service.UploadService
	chat   service.ChatService

	pages *template.Template
	now   func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, logger *logger.Logger) (*Handler, error) {
	if services == nil {
		return nil, ErrNilServices
	}

	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		upload: services.UploadService,
		chat:   services.ChatService,
		pages:  pages,
		now:    time.Now,
		logger: logger,
	}, nil
}

// render executes the layout into a buffer first so a template failure
// still yields a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, layoutTemplate, data); err != nil {
		logger.FromRequest(r).Error().Err(err).Str("path", data.Path).Msg("render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
