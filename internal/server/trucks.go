package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"firecatalog/pkg/types"

	"github.com/alexedwards/flow"
)

func (s *Service) handleListTrucks(w http.ResponseWriter, r *http.Request) {
	// Decoding into TruckFilters keeps only the recognized filter keys;
	// anything else in the query string is ignored.
	var filters types.TruckFilters
	if err := decoder.Decode(&filters, r.URL.Query()); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	trucks, err := s.trucks.Trucks(r.Context(), filters)
	if err != nil {
		s.logger.WithError(err).Error("failed to list trucks")
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, trucks)
}

func (s *Service) handleGetTruck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	truckID, err := strconv.ParseInt(flow.Param(ctx, "id"), 10, 64)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "Truck not found")
		return
	}

	truck, err := s.trucks.Truck(ctx, truckID)
	if err != nil {
		if errors.Is(err, types.ErrTruckNotFound) {
			s.respondError(w, http.StatusNotFound, "Truck not found")
			return
		}
		s.logger.WithError(err).WithField("truck_id", truckID).Error("failed to fetch truck")
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	images, err := s.truckImages.ImagesByTruckID(ctx, truckID)
	if err != nil {
		s.logger.WithError(err).WithField("truck_id", truckID).Error("failed to fetch truck images")
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, types.TruckDetail{
		TruckRow: *truck,
		Images:   images,
	})
}

func (s *Service) handleCreateTruck(w http.ResponseWriter, r *http.Request) {
	var params types.CreateTruckParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	truckID, err := s.trucks.CreateTruck(r.Context(), params)
	if err != nil {
		s.logger.WithError(err).Error("failed to create truck")
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"id":      truckID,
	})
}
