package handler

import (
	"net/http"

	"formforge/internal/storage"
)

// maxUploadBytes bounds the multipart form held in memory
const maxUploadBytes = 5 << 20

// UploadHandler accepts image uploads and returns their reference path. The
// blob is stored untouched and never inspected.
type UploadHandler struct {
	disk *storage.Disk
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(disk *storage.Disk) *UploadHandler {
	return &UploadHandler{disk: disk}
}

// Upload handles POST /api/upload with a multipart "image" field
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing image field")
		return
	}
	defer file.Close()

	url, err := h.disk.Save(header.Filename, file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
