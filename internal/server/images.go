package server

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"firecatalog/internal/utils"
	"firecatalog/pkg/types"

	"github.com/alexedwards/flow"
)

// storageKeyFor generates a collision-resistant storage key for an uploaded
// file: a fresh nanoid plus the original extension, lower-cased. Keys carry
// no truck id, so identical filenames on different trucks never collide.
func storageKeyFor(filename string) string {
	return utils.NanoID() + strings.ToLower(filepath.Ext(filename))
}

func (s *Service) handleUploadTruckImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	truckID, err := strconv.ParseInt(flow.Param(ctx, "id"), 10, 64)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid truck id")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storageKeyFor(header.Filename)

	if err := s.images.Put(ctx, key, file, contentType); err != nil {
		s.logger.WithError(err).WithField("storage_key", key).Error("failed to store image")
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Recorded after the blob is stored. A failure here leaks the blob,
	// nothing ever references it.
	imageURL := "/images/" + key
	if err := s.truckImages.CreateTruckImage(ctx, truckID, imageURL); err != nil {
		s.logger.WithError(err).WithField("truck_id", truckID).Error("failed to record truck image")
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"url":     imageURL,
	})
}

func (s *Service) handleServeImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := flow.Param(ctx, "key")

	object, err := s.images.Get(ctx, key)
	if err != nil {
		if errors.Is(err, types.ErrObjectNotFound) {
			http.Error(w, "Image not found", http.StatusNotFound)
			return
		}
		s.logger.WithError(err).WithField("storage_key", key).Error("failed to fetch image")
		http.Error(w, "Error fetching image", http.StatusInternalServerError)
		return
	}
	defer object.Body.Close()

	if object.ContentType != "" {
		w.Header().Set("Content-Type", object.ContentType)
	}
	if object.ContentLength > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(object.ContentLength, 10))
	}
	if object.ETag != "" {
		w.Header().Set("ETag", object.ETag)
	}

	if _, err := io.Copy(w, object.Body); err != nil {
		s.logger.WithError(err).WithField("storage_key", key).Error("failed to stream image")
	}
}
