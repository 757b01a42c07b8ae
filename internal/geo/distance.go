package geo

import (
	"math"

	"flight-route-optimizer/internal/models"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula
const EarthRadiusKm = 6371.0

// DistanceTable is a symmetric matrix of great-circle distances in
// kilometers, indexed by city position in the input slice. Entries are
// read-only after construction and safe to share across solver calls.
type DistanceTable [][]float64

// Distance returns the great-circle distance between two points in
// kilometers using the haversine formula. Well-defined for any pair of
// coordinates, including identical and antipodal points.
func Distance(a, b models.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lng1 := a.Lng * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lng2 := b.Lng * math.Pi / 180

	dLat := lat2 - lat1
	dLng := lng2 - lng1

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// BuildTable computes the pairwise distance table for the given cities.
// The diagonal is set to exactly 0 without going through the formula.
// A fresh table is returned on every call.
func BuildTable(cities []models.City) DistanceTable {
	n := len(cities)
	table := make(DistanceTable, n)
	for i := range table {
		table[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			table[i][j] = Distance(cities[i].GetCoords(), cities[j].GetCoords())
		}
	}

	return table
}
