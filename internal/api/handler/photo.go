package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"snapquest/internal/api/response"
	"snapquest/internal/model"
	"snapquest/internal/photo"
)

// PhotoHandler handles raw photo upload and retrieval
type PhotoHandler struct {
	store photo.Store
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(store photo.Store) *PhotoHandler {
	return &PhotoHandler{store: store}
}

// Upload handles POST /api/v1/photos. The body is the raw image bytes;
// Content-Type carries the image format.
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		WriteError(w, NewInvalidRequestError("body must be an image with an image/* content type"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, photo.MaxPhotoBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, model.ErrPhotoTooLarge)
			return
		}
		WriteError(w, NewInvalidRequestError("failed to read request body"))
		return
	}
	if len(data) == 0 {
		WriteError(w, NewInvalidRequestError("empty photo body"))
		return
	}

	ref, err := h.store.Put(r.Context(), photo.Photo{Data: data, ContentType: contentType})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.UploadPhotoResponse{PhotoRef: ref})
}

// Get handles GET /api/v1/photos/{ref}
func (h *PhotoHandler) Get(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["ref"]

	p, err := h.store.Get(r.Context(), ref)
	if err != nil {
		WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", p.ContentType)
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(p.Data)
}
