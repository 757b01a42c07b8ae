package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"flight-route-optimizer/internal/models"
)

// CityResult contains one geocoded candidate for a city name
type CityResult struct {
	Coords      models.Coordinates `json:"coords"`
	DisplayName string             `json:"display_name"`
}

// Geocoder resolves city names to coordinates
type Geocoder interface {
	Geocode(ctx context.Context, name string) (*CityResult, error)
	Search(ctx context.Context, query string, limit int) ([]CityResult, error)
}

// ErrGeocodingFailed is returned when a city name cannot be resolved
type ErrGeocodingFailed struct {
	Query  string
	Reason string
}

func (e *ErrGeocodingFailed) Error() string {
	return fmt.Sprintf("geocoding failed for query: %s - %s", e.Query, e.Reason)
}

type nominatimGeocoder struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *time.Ticker
}

type nominatimResponse struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewNominatimGeocoder creates a new Nominatim geocoder with rate limiting
func NewNominatimGeocoder() Geocoder {
	return &nominatimGeocoder{
		baseURL: "https://nominatim.openstreetmap.org",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		rateLimiter: time.NewTicker(1 * time.Second),
	}
}

func (g *nominatimGeocoder) Geocode(ctx context.Context, name string) (*CityResult, error) {
	results, err := g.Search(ctx, name, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		log.Printf("[ERROR] No geocoding results found: name=%s", name)
		return nil, &ErrGeocodingFailed{Query: name, Reason: "no results found"}
	}
	return &results[0], nil
}

func (g *nominatimGeocoder) Search(ctx context.Context, query string, limit int) ([]CityResult, error) {
	select {
	case <-g.rateLimiter.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	queryURL := fmt.Sprintf("%s/search?q=%s&format=json&limit=%d", g.baseURL, url.QueryEscape(query), limit)
	log.Printf("[GEOCODING] Search request: query=%s limit=%d", query, limit)

	req, err := http.NewRequestWithContext(ctx, "GET", queryURL, nil)
	if err != nil {
		log.Printf("[ERROR] Failed to create geocoding request: query=%s err=%v", query, err)
		return nil, &ErrGeocodingFailed{Query: query, Reason: err.Error()}
	}

	req.Header.Set("User-Agent", "FlightRouteOptimizer/1.0")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[ERROR] Geocoding API request failed: query=%s err=%v", query, err)
		return nil, &ErrGeocodingFailed{Query: query, Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[ERROR] Geocoding API error: query=%s status=%d body=%s", query, resp.StatusCode, string(body))
		return nil, &ErrGeocodingFailed{
			Query:  query,
			Reason: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(body)),
		}
	}

	var results []nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		log.Printf("[ERROR] Failed to decode geocoding response: query=%s err=%v", query, err)
		return nil, &ErrGeocodingFailed{Query: query, Reason: err.Error()}
	}

	log.Printf("[GEOCODING] Search response: query=%s results_count=%d", query, len(results))

	cityResults := make([]CityResult, 0, len(results))
	for _, result := range results {
		var lat, lng float64
		if _, err := fmt.Sscanf(result.Lat, "%f", &lat); err != nil {
			log.Printf("[ERROR] Invalid latitude in geocoding response: query=%s lat=%s err=%v", query, result.Lat, err)
			continue
		}
		if _, err := fmt.Sscanf(result.Lon, "%f", &lng); err != nil {
			log.Printf("[ERROR] Invalid longitude in geocoding response: query=%s lng=%s err=%v", query, result.Lon, err)
			continue
		}

		cityResults = append(cityResults, CityResult{
			Coords:      models.Coordinates{Lat: lat, Lng: lng},
			DisplayName: result.DisplayName,
		})
	}

	return cityResults, nil
}
