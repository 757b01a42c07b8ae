package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-route-optimizer/internal/models"
)

var testPoints = []models.Coordinates{
	{Lat: 0, Lng: 0},
	{Lat: 0, Lng: 1},
	{Lat: 1, Lng: 0},
	{Lat: 40.7128, Lng: -74.0060},  // New York
	{Lat: 51.5074, Lng: -0.1278},   // London
	{Lat: 35.6762, Lng: 139.6503},  // Tokyo
	{Lat: -33.8688, Lng: 151.2093}, // Sydney
	{Lat: 90, Lng: 0},              // North Pole
	{Lat: -90, Lng: 0},             // South Pole
}

func TestDistanceZeroForIdenticalPoints(t *testing.T) {
	for _, p := range testPoints {
		assert.Equal(t, 0.0, Distance(p, p))
	}
}

func TestDistanceSymmetry(t *testing.T) {
	for i, a := range testPoints {
		for j, b := range testPoints {
			if i == j {
				continue
			}
			assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
		}
	}
}

func TestDistanceKnownValues(t *testing.T) {
	// One degree of longitude at the equator is ~111.19 km.
	equator := Distance(models.Coordinates{Lat: 0, Lng: 0}, models.Coordinates{Lat: 0, Lng: 1})
	assert.InDelta(t, 111.19, equator, 0.1)

	// New York to London is ~5570 km.
	nyLondon := Distance(testPoints[3], testPoints[4])
	assert.InDelta(t, 5570, nyLondon, 10)

	// Pole to pole is half the Earth's circumference.
	poles := Distance(testPoints[7], testPoints[8])
	assert.InDelta(t, 3.14159265*EarthRadiusKm, poles, 0.1)
}

func TestDistanceAntipodalPoints(t *testing.T) {
	// Antipodal points hit the h=1 extreme of the haversine formula.
	d := Distance(models.Coordinates{Lat: 0, Lng: 0}, models.Coordinates{Lat: 0, Lng: 180})
	assert.InDelta(t, 3.14159265*EarthRadiusKm, d, 0.1)
	assert.False(t, d != d, "distance must not be NaN")
}

func TestDistanceTriangleInequality(t *testing.T) {
	const eps = 1e-6
	for _, a := range testPoints {
		for _, b := range testPoints {
			for _, c := range testPoints {
				assert.LessOrEqual(t, Distance(a, b), Distance(a, c)+Distance(c, b)+eps)
			}
		}
	}
}

func TestBuildTable(t *testing.T) {
	cities := []models.City{
		{Name: "A", Lat: 0, Lng: 0, Priority: 1},
		{Name: "B", Lat: 0, Lng: 1, Priority: 2},
		{Name: "C", Lat: 1, Lng: 0, Priority: 3},
	}

	table := BuildTable(cities)
	require.Len(t, table, 3)

	for i := range table {
		require.Len(t, table[i], 3)
		assert.Equal(t, 0.0, table[i][i])
		for j := range table[i] {
			assert.Equal(t, table[i][j], table[j][i])
			if i != j {
				assert.Greater(t, table[i][j], 0.0)
			}
		}
	}

	// Table entries match direct formula evaluation.
	assert.Equal(t, Distance(cities[0].GetCoords(), cities[1].GetCoords()), table[0][1])
}

func TestBuildTableEmpty(t *testing.T) {
	table := BuildTable(nil)
	assert.Empty(t, table)
}

func TestBuildTableReturnsFreshTable(t *testing.T) {
	cities := []models.City{
		{Name: "A", Lat: 0, Lng: 0, Priority: 1},
		{Name: "B", Lat: 0, Lng: 1, Priority: 2},
	}

	first := BuildTable(cities)
	second := BuildTable(cities)

	first[0][1] = -1
	assert.NotEqual(t, first[0][1], second[0][1])
}
