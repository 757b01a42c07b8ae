package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"flight-route-optimizer/internal/geo"
	"flight-route-optimizer/internal/models"
	"flight-route-optimizer/internal/solver"
)

// SolveRouteRequest represents the solve payload. Callers may pass the
// cities inline or reference stored ones by ID; exactly one of the two
// must be provided.
type SolveRouteRequest struct {
	Cities         []models.City `json:"cities,omitempty"`
	CityIDs        []int64       `json:"city_ids,omitempty"`
	Algorithm      string        `json:"algorithm,omitempty"`
	StartingCityID *int64        `json:"starting_city_id,omitempty"`
}

// CompareRoutesRequest represents the compare payload.
type CompareRoutesRequest struct {
	Cities         []models.City `json:"cities,omitempty"`
	CityIDs        []int64       `json:"city_ids,omitempty"`
	StartingCityID *int64        `json:"starting_city_id,omitempty"`
}

// CompareRoutesResponse holds one result per algorithm that completed.
type CompareRoutesResponse struct {
	Results []models.RouteResult `json:"results"`
	Skipped []SkippedAlgorithm   `json:"skipped,omitempty"`
}

// SkippedAlgorithm reports an algorithm that could not run for this input.
type SkippedAlgorithm struct {
	Algorithm string `json:"algorithm"`
	Reason    string `json:"reason"`
}

// HandleSolveRoute handles POST /api/v1/routes/solve
func (h *Handler) HandleSolveRoute(w http.ResponseWriter, r *http.Request) {
	var req SolveRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[HTTP] POST /api/v1/routes/solve: invalid_body err=%v", err)
		h.handleValidationError(w, "Invalid request body")
		return
	}

	cities, ok := h.resolveCities(r.Context(), w, req.Cities, req.CityIDs)
	if !ok {
		return
	}
	if len(cities) < 2 {
		h.handleValidationError(w, "At least 2 cities are required to plan a route")
		return
	}

	algoName := req.Algorithm
	if algoName == "" {
		settings, err := h.DB.Settings().Get(r.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to load settings: err=%v", err)
			h.handleInternalError(w, err)
			return
		}
		algoName = settings.DefaultAlgorithm
	}

	algo, err := solver.ParseAlgorithm(algoName)
	if err != nil {
		h.handleValidationError(w, err.Error())
		return
	}

	startIdx, ok := h.resolveStartIndex(w, cities, req.StartingCityID)
	if !ok {
		return
	}

	table := geo.BuildTable(cities)
	res, err := solver.Solve(algo, cities, table, startIdx)
	if errors.Is(err, solver.ErrTooManyCities) {
		h.handleValidationError(w, err.Error())
		return
	}
	if err != nil {
		log.Printf("[ERROR] Solver failed: algorithm=%s cities=%d err=%v", algo, len(cities), err)
		h.handleInternalError(w, err)
		return
	}
	if !res.Found() {
		h.writeError(w, http.StatusUnprocessableEntity, "NO_ROUTE", "No feasible route exists for the given cities", nil)
		return
	}

	h.writeJSON(w, http.StatusOK, buildRouteResult(algo, res))
}

// HandleCompareRoutes handles POST /api/v1/routes/compare
func (h *Handler) HandleCompareRoutes(w http.ResponseWriter, r *http.Request) {
	var req CompareRoutesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[HTTP] POST /api/v1/routes/compare: invalid_body err=%v", err)
		h.handleValidationError(w, "Invalid request body")
		return
	}

	cities, ok := h.resolveCities(r.Context(), w, req.Cities, req.CityIDs)
	if !ok {
		return
	}
	if len(cities) < 2 {
		h.handleValidationError(w, "At least 2 cities are required to plan a route")
		return
	}

	startIdx, ok := h.resolveStartIndex(w, cities, req.StartingCityID)
	if !ok {
		return
	}

	// One distance table shared across all algorithms keeps the
	// comparison fair and avoids recomputing the haversine matrix.
	table := geo.BuildTable(cities)

	resp := CompareRoutesResponse{}
	start := time.Now()
	for _, algo := range solver.Algorithms() {
		res, err := solver.Solve(algo, cities, table, startIdx)
		if err != nil {
			resp.Skipped = append(resp.Skipped, SkippedAlgorithm{
				Algorithm: algo.String(),
				Reason:    err.Error(),
			})
			continue
		}
		if !res.Found() {
			resp.Skipped = append(resp.Skipped, SkippedAlgorithm{
				Algorithm: algo.String(),
				Reason:    "no feasible route",
			})
			continue
		}
		resp.Results = append(resp.Results, buildRouteResult(algo, res))
	}
	log.Printf("[TIMING] Route comparison: cities=%d results=%d skipped=%d elapsed=%v",
		len(cities), len(resp.Results), len(resp.Skipped), time.Since(start))

	if len(resp.Results) == 0 {
		h.writeError(w, http.StatusUnprocessableEntity, "NO_ROUTE", "No algorithm produced a feasible route", nil)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// resolveCities returns the working city set from an inline list or stored
// IDs. Writes the error response itself and returns ok=false on failure.
func (h *Handler) resolveCities(ctx context.Context, w http.ResponseWriter, inline []models.City, ids []int64) ([]models.City, bool) {
	if len(inline) > 0 && len(ids) > 0 {
		h.handleValidationError(w, "Provide either cities or city_ids, not both")
		return nil, false
	}

	if len(ids) > 0 {
		cities, err := h.DB.Cities().GetByIDs(ctx, ids)
		if err != nil {
			log.Printf("[ERROR] Failed to load cities by IDs: err=%v", err)
			h.handleInternalError(w, err)
			return nil, false
		}
		if len(cities) != len(ids) {
			h.handleValidationError(w, "One or more city IDs do not exist")
			return nil, false
		}
		return cities, true
	}

	for i := range inline {
		if err := inline[i].Validate(); err != nil {
			h.handleValidationError(w, err.Error())
			return nil, false
		}
	}
	return inline, true
}

// resolveStartIndex maps an optional city ID onto an index into cities.
// A nil ID lets the solver pick the most urgent city itself.
func (h *Handler) resolveStartIndex(w http.ResponseWriter, cities []models.City, startID *int64) (int, bool) {
	if startID == nil {
		return solver.AutoStart, true
	}
	for i := range cities {
		if cities[i].ID == *startID {
			return i, true
		}
	}
	h.handleValidationError(w, "starting_city_id does not match any city in the request")
	return 0, false
}

// buildRouteResult expands a solver result into the API shape, recomputing
// the per-leg distance and penalty breakdown for display.
func buildRouteResult(algo solver.Algorithm, res solver.Result) models.RouteResult {
	stops := make([]models.RouteStop, 0, len(res.Route))
	cumulative := 0.0
	for i := range res.Route {
		city := &res.Route[i]
		stop := models.RouteStop{
			Order: i,
			City:  city,
		}
		if i > 0 {
			prev := &res.Route[i-1]
			stop.DistanceFromPrevKm = geo.Distance(prev.GetCoords(), city.GetCoords())
			stop.PenaltyFromPrev = solver.Penalty(prev.Priority, city.Priority)
			cumulative += stop.DistanceFromPrevKm
		}
		stop.CumulativeDistanceKm = cumulative
		stops = append(stops, stop)
	}

	result := models.RouteResult{
		Algorithm:         algo.String(),
		Route:             res.Route,
		Stops:             stops,
		TotalCost:         res.TotalCost,
		ComputationTimeMs: float64(res.Elapsed.Nanoseconds()) / 1e6,
	}
	if len(res.Route) > 0 {
		result.StartingCity = &res.Route[0]
	}
	return result
}
