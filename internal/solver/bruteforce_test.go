package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-route-optimizer/internal/geo"
	"flight-route-optimizer/internal/models"
	"flight-route-optimizer/internal/testutil"
)

func TestBruteForceTwoCities(t *testing.T) {
	cities := []models.City{
		{ID: 1, Name: "A", Lat: 0, Lng: 0, Priority: 1},
		{ID: 2, Name: "B", Lat: 0, Lng: 10, Priority: 2},
	}
	table := geo.BuildTable(cities)

	path, cost := solveBruteForce(cities, table, 0)

	require.Equal(t, []int{0, 1}, path)
	// Out and back over the same edge, no penalty in either direction
	// charged on the closing leg.
	assert.InDelta(t, 2*table[0][1], cost, 1e-9)
}

func TestBruteForceAnchorsAtStart(t *testing.T) {
	cities := testutil.WorldCities()
	table := geo.BuildTable(cities)

	for start := 0; start < len(cities); start++ {
		path, cost := solveBruteForce(cities, table, start)
		require.NotNil(t, path)
		assert.Equal(t, start, path[0])
		assert.False(t, math.IsInf(cost, 1))
	}
}

func TestBruteForceAvoidsPriorityViolationWhenPossible(t *testing.T) {
	// The urgent city sits farther from the start than the low-priority
	// one; the optimum still visits it first because the penalty dwarfs
	// the extra distance.
	cities := []models.City{
		{ID: 1, Name: "Start", Lat: 0, Lng: 0, Priority: 1},
		{ID: 2, Name: "Near", Lat: 0, Lng: 1, Priority: 3},
		{ID: 3, Name: "FarUrgent", Lat: 0, Lng: 3, Priority: 2},
	}
	table := geo.BuildTable(cities)

	path, cost := solveBruteForce(cities, table, 0)

	require.Equal(t, []int{0, 2, 1}, path)
	assert.Less(t, cost, PenaltyFactor)
}

func TestBruteForcePermutationBufferRestored(t *testing.T) {
	cities := testutil.TriangleCities()
	table := geo.BuildTable(cities)

	// Two consecutive runs over fresh buffers must agree exactly; a bad
	// restore step in the swap-based generator would break this.
	path1, cost1 := solveBruteForce(cities, table, 0)
	path2, cost2 := solveBruteForce(cities, table, 0)

	assert.Equal(t, path1, path2)
	assert.Equal(t, cost1, cost2)
}

func TestCycleCostRejectsWrongAnchor(t *testing.T) {
	cities := testutil.TriangleCities()
	table := geo.BuildTable(cities)

	cost := cycleCost(cities, table, []int{1, 0, 2}, 0)
	assert.True(t, math.IsInf(cost, 1))
}
