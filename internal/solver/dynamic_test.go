package solver

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-route-optimizer/internal/geo"
	"flight-route-optimizer/internal/models"
	"flight-route-optimizer/internal/testutil"
)

// randomCities builds a reproducible city set for cross-solver checks.
func randomCities(rng *rand.Rand, n int) []models.City {
	cities := make([]models.City, n)
	for i := range cities {
		cities[i] = models.City{
			ID:       int64(i + 1),
			Name:     "City",
			Lat:      rng.Float64()*120 - 60,
			Lng:      rng.Float64()*360 - 180,
			Priority: rng.Intn(5) + 1,
		}
	}
	return cities
}

func TestDPMatchesBruteForceOptimum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		n := rng.Intn(5) + 4 // 4..8 cities
		cities := randomCities(rng, n)
		table := geo.BuildTable(cities)
		start := rng.Intn(n)

		_, bruteCost := solveBruteForce(cities, table, start)
		dpPath, dpCost := solveDP(cities, table, start)

		require.NotNil(t, dpPath, "trial %d", trial)
		assert.InDelta(t, bruteCost, dpCost, 1e-6, "trial %d n=%d start=%d", trial, n, start)
	}
}

func TestDPRouteIsValidPermutation(t *testing.T) {
	cities := testutil.WorldCities()
	table := geo.BuildTable(cities)

	path, cost := solveDP(cities, table, 1)

	require.Len(t, path, len(cities))
	assert.Equal(t, 1, path[0])
	assert.False(t, math.IsInf(cost, 1))

	seen := make(map[int]bool)
	for _, idx := range path {
		assert.False(t, seen[idx])
		seen[idx] = true
	}
}

func TestDPCostMatchesCycleCost(t *testing.T) {
	// The reported cost must equal re-pricing the reconstructed path
	// with the shared cost function.
	cities := testutil.WorldCities()
	table := geo.BuildTable(cities)

	path, cost := solveDP(cities, table, 0)
	assert.InDelta(t, cycleCost(cities, table, path, 0), cost, 1e-9)
}

func TestDPMemoIsCallLocal(t *testing.T) {
	// Interleaved solves over different city sets must not bleed state.
	a := testutil.WorldCities()
	b := testutil.TriangleCities()
	ta := geo.BuildTable(a)
	tb := geo.BuildTable(b)

	_, costA1 := solveDP(a, ta, 0)
	_, costB := solveDP(b, tb, 0)
	_, costA2 := solveDP(a, ta, 0)

	assert.Equal(t, costA1, costA2)
	assert.NotEqual(t, costA1, costB)
}

func TestDPTwoCities(t *testing.T) {
	cities := []models.City{
		{ID: 1, Name: "A", Lat: 10, Lng: 10, Priority: 2},
		{ID: 2, Name: "B", Lat: 12, Lng: 14, Priority: 1},
	}
	table := geo.BuildTable(cities)

	path, cost := solveDP(cities, table, 1)

	require.Equal(t, []int{1, 0}, path)
	// The single edge moves from priority 1 to 2 (no penalty) and the
	// closing edge is distance only.
	assert.InDelta(t, 2*table[0][1], cost, 1e-9)
}
