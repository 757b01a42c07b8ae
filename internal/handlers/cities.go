package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"flight-route-optimizer/internal/database"
	"flight-route-optimizer/internal/models"
)

// CityListResponse represents the list response
type CityListResponse struct {
	Cities []models.City `json:"cities"`
	Total  int           `json:"total"`
}

// CityRequest represents the create/update payload
type CityRequest struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Priority int     `json:"priority"`
}

// HandleListCities handles GET /api/v1/cities
func (h *Handler) HandleListCities(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	log.Printf("[HTTP] GET /api/v1/cities: search=%s", search)

	cities, err := h.DB.Cities().List(r.Context(), search)
	if err != nil {
		log.Printf("[ERROR] Failed to list cities: search=%s err=%v", search, err)
		h.handleInternalError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, CityListResponse{
		Cities: cities,
		Total:  len(cities),
	})
}

// HandleGetCity handles GET /api/v1/cities/{id}
func (h *Handler) HandleGetCity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cityIDFromPath(w, r)
	if !ok {
		return
	}

	city, err := h.DB.Cities().GetByID(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] Failed to get city: id=%d err=%v", id, err)
		h.handleInternalError(w, err)
		return
	}

	if city == nil {
		h.handleNotFound(w, "City not found")
		return
	}

	h.writeJSON(w, http.StatusOK, city)
}

// HandleCreateCity handles POST /api/v1/cities
func (h *Handler) HandleCreateCity(w http.ResponseWriter, r *http.Request) {
	var req CityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[HTTP] POST /api/v1/cities: invalid_body err=%v", err)
		h.handleValidationError(w, "Invalid request body")
		return
	}

	city := &models.City{
		Name:     strings.TrimSpace(req.Name),
		Lat:      req.Lat,
		Lng:      req.Lng,
		Priority: req.Priority,
	}

	if err := city.Validate(); err != nil {
		log.Printf("[HTTP] POST /api/v1/cities: invalid_city err=%v", err)
		h.handleValidationError(w, err.Error())
		return
	}

	created, err := h.DB.Cities().Create(r.Context(), city)
	if err != nil {
		log.Printf("[ERROR] Failed to create city: name=%s err=%v", city.Name, err)
		h.handleInternalError(w, err)
		return
	}

	log.Printf("[HTTP] Created city: id=%d name=%s priority=%d", created.ID, created.Name, created.Priority)
	h.writeJSON(w, http.StatusCreated, created)
}

// HandleUpdateCity handles PUT /api/v1/cities/{id}
func (h *Handler) HandleUpdateCity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cityIDFromPath(w, r)
	if !ok {
		return
	}

	var req CityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[HTTP] PUT /api/v1/cities/{id}: invalid_body id=%d err=%v", id, err)
		h.handleValidationError(w, "Invalid request body")
		return
	}

	city := &models.City{
		ID:       id,
		Name:     strings.TrimSpace(req.Name),
		Lat:      req.Lat,
		Lng:      req.Lng,
		Priority: req.Priority,
	}

	if err := city.Validate(); err != nil {
		h.handleValidationError(w, err.Error())
		return
	}

	updated, err := h.DB.Cities().Update(r.Context(), city)
	if errors.Is(err, database.ErrNotFound) {
		h.handleNotFound(w, "City not found")
		return
	}
	if err != nil {
		log.Printf("[ERROR] Failed to update city: id=%d err=%v", id, err)
		h.handleInternalError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, updated)
}

// HandleDeleteCity handles DELETE /api/v1/cities/{id}
func (h *Handler) HandleDeleteCity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cityIDFromPath(w, r)
	if !ok {
		return
	}

	err := h.DB.Cities().Delete(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		h.handleNotFound(w, "City not found")
		return
	}
	if err != nil {
		log.Printf("[ERROR] Failed to delete city: id=%d err=%v", id, err)
		h.handleInternalError(w, err)
		return
	}

	log.Printf("[HTTP] Deleted city: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

// cityIDFromPath extracts the city ID from /api/v1/cities/{id}
func (h *Handler) cityIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/v1/cities/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Printf("[HTTP] %s %s: invalid_id=%s err=%v", r.Method, r.URL.Path, idStr, err)
		h.handleValidationError(w, "Invalid city ID")
		return 0, false
	}
	return id, true
}
