package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-route-optimizer/internal/geo"
	"flight-route-optimizer/internal/models"
	"flight-route-optimizer/internal/testutil"
)

func TestGreedyRouteIsValidPermutation(t *testing.T) {
	cities := testutil.WorldCities()
	table := geo.BuildTable(cities)

	path, _ := solveGreedy(cities, table, 2)

	require.Len(t, path, len(cities))
	assert.Equal(t, 2, path[0])

	seen := make(map[int]bool)
	for _, idx := range path {
		assert.False(t, seen[idx])
		seen[idx] = true
	}
}

func TestGreedyNeverBeatsExactOptimum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 20; trial++ {
		n := rng.Intn(5) + 4
		cities := randomCities(rng, n)
		table := geo.BuildTable(cities)
		start := rng.Intn(n)

		_, optimum := solveDP(cities, table, start)
		_, greedyCost := solveGreedy(cities, table, start)

		assert.GreaterOrEqual(t, greedyCost, optimum-1e-6, "trial %d n=%d", trial, n)
	}
}

func TestGreedyBreaksTiesByLowestIndex(t *testing.T) {
	// B and C are exactly equidistant from A with equal priorities, so
	// the scan order decides: the lower index wins.
	cities := []models.City{
		{ID: 1, Name: "A", Lat: 0, Lng: 0, Priority: 1},
		{ID: 2, Name: "B", Lat: 0, Lng: 1, Priority: 2},
		{ID: 3, Name: "C", Lat: 0, Lng: -1, Priority: 2},
	}
	table := geo.BuildTable(cities)

	path, _ := solveGreedy(cities, table, 0)
	assert.Equal(t, []int{0, 1, 2}, path)
}

func TestGreedyPenaltyInfluencesNextChoice(t *testing.T) {
	cities := []models.City{
		{ID: 1, Name: "Start", Lat: 0, Lng: 0, Priority: 3},
		{ID: 2, Name: "NearLow", Lat: 0, Lng: 1, Priority: 4},
		{ID: 3, Name: "FarUrgent", Lat: 0, Lng: 2, Priority: 1},
	}
	table := geo.BuildTable(cities)

	path, _ := solveGreedy(cities, table, 0)

	// From Start, the edge to NearLow is penalty-free (3→4) while the
	// edge to FarUrgent carries a 2000 violation (3→1), so distance plus
	// penalty selects NearLow even though both are reachable.
	require.Equal(t, 1, path[1])
}

func TestGreedyCostMatchesCycleCost(t *testing.T) {
	cities := testutil.WorldCities()
	table := geo.BuildTable(cities)

	path, cost := solveGreedy(cities, table, 0)
	assert.InDelta(t, cycleCost(cities, table, path, 0), cost, 1e-9)
}

func TestGreedyAlwaysProducesRoute(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for n := 2; n <= 12; n++ {
		cities := randomCities(rng, n)
		table := geo.BuildTable(cities)

		path, _ := solveGreedy(cities, table, 0)
		assert.Len(t, path, n)
	}
}
