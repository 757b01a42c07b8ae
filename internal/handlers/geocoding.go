package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"flight-route-optimizer/internal/geocoding"
)

// CitySearchResponse represents results from the geocoding service.
type CitySearchResponse struct {
	Query   string                 `json:"query"`
	Results []geocoding.CityResult `json:"results"`
}

// HandleCitySearch handles GET /api/v1/city-search?q=...&limit=...
func (h *Handler) HandleCitySearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.handleValidationError(w, "Query parameter 'q' is required")
		return
	}

	limit := 5
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 20 {
			h.handleValidationError(w, "Query parameter 'limit' must be between 1 and 20")
			return
		}
		limit = parsed
	}

	log.Printf("[HTTP] GET /api/v1/city-search: q=%s limit=%d", query, limit)

	results, err := h.Geocoder.Search(r.Context(), query, limit)
	if err != nil {
		var geoErr *geocoding.ErrGeocodingFailed
		if errors.As(err, &geoErr) {
			h.handleGeocodingError(w, geoErr)
			return
		}
		log.Printf("[ERROR] City search failed: q=%s err=%v", query, err)
		h.handleInternalError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, CitySearchResponse{
		Query:   query,
		Results: results,
	})
}
