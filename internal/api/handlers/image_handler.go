package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/explore-karnataka/backend/internal/ai"
	"github.com/explore-karnataka/backend/internal/apperr"
)

const maxUploadBytes = 10 << 20

// ImageHandler handles landmark recognition uploads.
type ImageHandler struct {
	classifier ai.Classifier
	uploadDir  string
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(classifier ai.Classifier, uploadDir string) *ImageHandler {
	return &ImageHandler{classifier: classifier, uploadDir: uploadDir}
}

// Predict stores the uploaded image and forwards it to the classifier.
func (h *ImageHandler) Predict(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "No image uploaded")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "No image uploaded")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "No image uploaded")
		return
	}

	// Keep a copy on disk under a collision-proof name
	name := uuid.New().String() + "_" + filepath.Base(header.Filename)
	path := filepath.Join(h.uploadDir, name)
	if err := os.WriteFile(path, image, 0o644); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to store upload")
		writeErrorMsg(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	prediction, err := h.classifier.Classify(r.Context(), image, header.Filename)
	if err != nil {
		writeError(w, apperr.Wrap(apperr.ErrUnavailable, err, "Prediction service unavailable"))
		return
	}
	writeJSON(w, http.StatusOK, prediction)
}
