// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/cheddup/internal/app"
	"github.com/MKhiriev/cheddup/internal/logger"
	"github.com/MKhiriev/cheddup/models"
	"github.com/dustin/go-humanize"
)

// multipartMemory is how much of a posted form is kept in memory; the rest
// spills to temporary files. The size limit itself is the backend's to
// enforce.
const multipartMemory = models.MaxUploadSizeBytes

func (h *Handler) uploadPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, h.newPage(r.URL.Path))
}

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	page := h.newPage(app.PathUpload)

	file, err := readUploadFile(r)
	if err != nil {
		log.Error().Err(err).Msg("read upload form")
		page.Upload.Status = app.MsgUploadFailed
		h.render(w, r, http.StatusBadRequest, page)
		return
	}

	result := h.upload.Upload(r.Context(), file)

	page.Upload.Status = result.Message
	page.Upload.Success = result.Success
	if result.Success {
		page.Upload.FileLine = fmt.Sprintf("%s · %s", file.Name, humanize.Bytes(uint64(len(file.Data))))
		if result.ChunksAdded > 0 {
			page.Upload.ChunksLine = fmt.Sprintf(app.MsgIndexedChunks, result.ChunksAdded)
		}
	}

	h.render(w, r, http.StatusOK, page)
}

// readUploadFile returns the "file" part of a multipart form, or nil when the
// form carries no file.
func readUploadFile(r *http.Request) (*models.UploadFile, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse multipart form: %w", err)
	}

	part, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("open form file: %w", err)
	}
	defer part.Close()

	data, err := io.ReadAll(part)
	if err != nil {
		return nil, fmt.Errorf("read form file: %w", err)
	}

	return &models.UploadFile{Name: header.Filename, Data: data}, nil
}
