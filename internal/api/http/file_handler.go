package http

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"evrental-backend/internal/storage"
)

// FileHandler streams stored uploads (contracts, inspection photos,
// payment proofs) back to the client by storage key.
type FileHandler struct {
	files storage.FileStore
}

func NewFileHandler(files storage.FileStore) *FileHandler {
	return &FileHandler{files: files}
}

func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "key is required")
		return
	}

	f, err := h.files.Open(key)
	if err != nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}
	defer f.Close()

	if ct := mime.TypeByExtension(filepath.Ext(key)); ct != "" {
		w.Header().Set("Content-Type", ct)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	_, _ = io.Copy(w, f)
}
