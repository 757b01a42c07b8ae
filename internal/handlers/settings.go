package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"flight-route-optimizer/internal/models"
	"flight-route-optimizer/internal/solver"
)

// HandleGetSettings handles GET /api/v1/settings
func (h *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.DB.Settings().Get(r.Context())
	if err != nil {
		log.Printf("[ERROR] Failed to load settings: err=%v", err)
		h.handleInternalError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, settings)
}

// HandleUpdateSettings handles PUT /api/v1/settings
func (h *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.Printf("[HTTP] PUT /api/v1/settings: invalid_body err=%v", err)
		h.handleValidationError(w, "Invalid request body")
		return
	}

	if _, err := solver.ParseAlgorithm(settings.DefaultAlgorithm); err != nil {
		h.handleValidationError(w, err.Error())
		return
	}

	if err := h.DB.Settings().Update(r.Context(), &settings); err != nil {
		log.Printf("[ERROR] Failed to update settings: err=%v", err)
		h.handleInternalError(w, err)
		return
	}

	log.Printf("[HTTP] Updated settings: default_algorithm=%s use_miles=%v",
		settings.DefaultAlgorithm, settings.UseMiles)
	h.writeJSON(w, http.StatusOK, settings)
}
