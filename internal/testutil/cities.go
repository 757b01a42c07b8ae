package testutil

import "flight-route-optimizer/internal/models"

// TriangleCities returns the canonical three-city scenario. Priorities
// already increase along the distance-efficient order, so every solver
// should produce A, B, C with zero priority penalty.
func TriangleCities() []models.City {
	return []models.City{
		{ID: 1, Name: "A", Lat: 0, Lng: 0, Priority: 1},
		{ID: 2, Name: "B", Lat: 0, Lng: 1, Priority: 2},
		{ID: 3, Name: "C", Lat: 1, Lng: 0, Priority: 3},
	}
}

// WorldCities returns a realistic city set with mixed priorities, small
// enough for the exact solvers.
func WorldCities() []models.City {
	return []models.City{
		{ID: 1, Name: "New York", Lat: 40.7128, Lng: -74.0060, Priority: 2},
		{ID: 2, Name: "London", Lat: 51.5074, Lng: -0.1278, Priority: 1},
		{ID: 3, Name: "Tokyo", Lat: 35.6762, Lng: 139.6503, Priority: 3},
		{ID: 4, Name: "Sydney", Lat: -33.8688, Lng: 151.2093, Priority: 4},
		{ID: 5, Name: "Paris", Lat: 48.8566, Lng: 2.3522, Priority: 2},
		{ID: 6, Name: "Cairo", Lat: 30.0444, Lng: 31.2357, Priority: 5},
		{ID: 7, Name: "Mumbai", Lat: 19.0760, Lng: 72.8777, Priority: 3},
	}
}
