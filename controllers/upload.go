package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"clothes-share/middleware"
	"clothes-share/utils"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// 5 MB is plenty for item photos and scanned registration documents.
const maxUploadBytes = 5 << 20

// UploadController stores and serves uploaded files.
type UploadController struct {
	Uploader *utils.Uploader
}

// NewUploadController creates a new UploadController.
func NewUploadController(uploader *utils.Uploader) *UploadController {
	return &UploadController{Uploader: uploader}
}

// Upload accepts a multipart "file" field and returns the URL it will be
// served from.
func (uc *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Invalid upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Invalid upload", http.StatusBadRequest)
		return
	}

	path := fmt.Sprintf("%s/%d-%s%s", claims.UserID, time.Now().Unix(), uuid.NewString(), filepath.Ext(header.Filename))
	url, err := uc.Uploader.Upload(data, path)
	if err != nil {
		http.Error(w, "Error storing file", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}

// Serve streams a stored file back to the client.
func (uc *UploadController) Serve(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := uc.Uploader.Serve(id, w); err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidInput):
			http.Error(w, "Invalid file id", http.StatusBadRequest)
		case utils.IsNotFound(err):
			http.Error(w, "File not found", http.StatusNotFound)
		default:
			http.Error(w, "Error reading file", http.StatusInternalServerError)
		}
	}
}
