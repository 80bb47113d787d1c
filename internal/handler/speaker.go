package handler

import (
	"net/http"

	"github.com/podiumhq/podium/internal/middleware"
	"github.com/podiumhq/podium/internal/model"
	"github.com/podiumhq/podium/internal/service"
)

// SpeakerHandler handles speaker directory endpoints
type SpeakerHandler struct {
	speakerService *service.SpeakerService
}

// SpeakerHandlerConfig holds configuration for the speaker handler
type SpeakerHandlerConfig struct {
	SpeakerService *service.SpeakerService
}

// NewSpeakerHandler creates a new speaker handler
func NewSpeakerHandler(cfg SpeakerHandlerConfig) *SpeakerHandler {
	return &SpeakerHandler{
		speakerService: cfg.SpeakerService,
	}
}

// List handles GET /speakers
func (h *SpeakerHandler) List(w http.ResponseWriter, r *http.Request) {
	speakers, err := h.speakerService.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, speakers)
}

// Create handles POST /speakers
func (h *SpeakerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSpeakerRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	userID := middleware.GetUserID(r.Context())
	speaker, err := h.speakerService.Create(r.Context(), userID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, speaker)
}

// Read handles GET /speakers/{speakerId}. The loader middleware has
// already resolved the record, so this just echoes it back.
func (h *SpeakerHandler) Read(w http.ResponseWriter, r *http.Request) {
	speaker := middleware.GetSpeaker(r.Context())
	if speaker == nil {
		WriteError(w, model.NewNotFoundError("Speaker"))
		return
	}

	WriteJSON(w, http.StatusOK, speaker)
}

// Update handles PUT /speakers/{speakerId}
func (h *SpeakerHandler) Update(w http.ResponseWriter, r *http.Request) {
	speaker := middleware.GetSpeaker(r.Context())
	if speaker == nil {
		WriteError(w, model.NewNotFoundError("Speaker"))
		return
	}

	var data map[string]interface{}
	if err := DecodeJSON(r, &data); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	updated, err := h.speakerService.Update(r.Context(), speaker.ID, data)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /speakers/{speakerId}. The removed record's
// last known representation is returned to the caller.
func (h *SpeakerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	speaker := middleware.GetSpeaker(r.Context())
	if speaker == nil {
		WriteError(w, model.NewNotFoundError("Speaker"))
		return
	}

	deleted, err := h.speakerService.Delete(r.Context(), speaker)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, deleted)
}
