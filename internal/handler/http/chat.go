package http

import (
	"net/http"

	"github.com/MKhiriev/cheddup/internal/app"
)

func (h *Handler) chatPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, h.newPage(app.PathChat))
}

func (h *Handler) askQuestion(w http.ResponseWriter, r *http.Request) {
	page := h.newPage(app.PathChat)

	// FormValue parses the body once and ignores parse errors; a broken body
	// reads as a blank question.
	question := r.FormValue("question")
	result := h.chat.Ask(r.Context(), question)

	page.Chat.Question = question
	page.Chat.Answer = result.Answer
	page.Chat.Success = result.Success
	page.Chat.Sources = result.Sources

	h.render(w, r, http.StatusOK, page)
}
