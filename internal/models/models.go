package models

import (
	"fmt"
	"time"
)

// Priority bounds for cities. Lower value means higher urgency.
const (
	MinPriority = 1
	MaxPriority = 5
)

// Coordinates represents a geographic point
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// City represents a destination with a visiting priority
type City struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetCoords returns the coordinates of the city
func (c *City) GetCoords() Coordinates {
	return Coordinates{Lat: c.Lat, Lng: c.Lng}
}

// Validate checks that the city fields are usable by the solver
func (c *City) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("city name is required")
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %.6f out of range [-90, 90]", c.Lat)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("longitude %.6f out of range [-180, 180]", c.Lng)
	}
	if c.Priority < MinPriority || c.Priority > MaxPriority {
		return fmt.Errorf("priority %d out of range [%d, %d]", c.Priority, MinPriority, MaxPriority)
	}
	return nil
}

// Settings holds application configuration
type Settings struct {
	DefaultAlgorithm string `json:"default_algorithm"`
	UseMiles         bool   `json:"use_miles"`
}

// RouteStop represents a single stop in a computed route
type RouteStop struct {
	Order                int     `json:"order"`
	City                 *City   `json:"city"`
	DistanceFromPrevKm   float64 `json:"distance_from_prev_km"`
	CumulativeDistanceKm float64 `json:"cumulative_distance_km"`
	PenaltyFromPrev      float64 `json:"penalty_from_prev"`
}

// RouteResult contains the full result of one solver run
type RouteResult struct {
	Algorithm         string      `json:"algorithm"`
	Route             []City      `json:"route"`
	Stops             []RouteStop `json:"stops"`
	TotalCost         float64     `json:"total_cost"`
	ComputationTimeMs float64     `json:"computation_time_ms"`
	StartingCity      *City       `json:"starting_city"`
}
