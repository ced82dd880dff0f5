package handler

import (
	"encoding/json"
	"net/http"

	"snapquest/internal/api/request"
	"snapquest/internal/api/response"
	"snapquest/internal/services/identity"
)

// PlayerHandler handles guest identity endpoints
type PlayerHandler struct {
	identityService *identity.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(identityService *identity.Service) *PlayerHandler {
	return &PlayerHandler{identityService: identityService}
}

// CreateGuest handles POST /api/v1/players/guest
func (h *PlayerHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.identityService.CreateGuest(req.DisplayName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFromSession(session))
}
