package http

import (
	"io"
	"net/http"
	"path"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"fieldwork-backend/internal/logger"
	"fieldwork-backend/internal/storage"
)

// PhotoHandler stores and serves operation photos.
type PhotoHandler struct {
	photos      storage.PhotoStorage
	maxFileSize int64
}

func NewPhotoHandler(photos storage.PhotoStorage, maxFileSizeMB int64) *PhotoHandler {
	return &PhotoHandler{photos: photos, maxFileSize: maxFileSizeMB << 20}
}

func allowedPhotoType(contentType string) bool {
	return contentType == "image/jpeg" || contentType == "image/png"
}

// Upload accepts one photo and returns the storage key the client should
// attach to its operation.
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if !allowedPhotoType(contentType) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid content type"})
		return
	}

	ext := ".jpg"
	if contentType == "image/png" {
		ext = ".png"
	}
	key := path.Join("operations", uuid.NewString()+ext)

	body := http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := h.photos.Save(key, body); err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "failed to store photo"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"key": key})
}

func (h *PhotoHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := path.Join("operations", mux.Vars(r)["key"])
	file, err := h.photos.Open(key)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "photo not found"})
		return
	}
	defer file.Close()

	contentType := "image/jpeg"
	if path.Ext(key) == ".png" {
		contentType = "image/png"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, file); err != nil {
		logger.Error("Failed to stream photo", "key", key, "error", err)
	}
}
