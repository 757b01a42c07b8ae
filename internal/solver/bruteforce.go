package solver

import (
	"math"

	"flight-route-optimizer/internal/geo"
	"flight-route-optimizer/internal/models"
)

// solveBruteForce finds the minimum-cost Hamiltonian cycle anchored at
// start by evaluating every permutation of city indices. Permutations
// are generated by in-place swaps with a restore step after each branch,
// so a single index buffer backs the whole search; the best permutation
// is copied out when found.
//
// Ties resolve to the first permutation reaching the minimal cost in
// generation order (strict less-than), which makes the result
// deterministic. O(n!) time, O(n) space beyond the buffer.
func solveBruteForce(cities []models.City, table geo.DistanceTable, start int) ([]int, float64) {
	n := len(cities)

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	minCost := math.Inf(1)
	var bestPath []int

	var permute func(k int)
	permute = func(k int) {
		if k == n {
			cost := cycleCost(cities, table, indices, start)
			if cost < minCost {
				minCost = cost
				bestPath = append(bestPath[:0], indices...)
			}
			return
		}
		for i := k; i < n; i++ {
			indices[k], indices[i] = indices[i], indices[k]
			permute(k + 1)
			indices[k], indices[i] = indices[i], indices[k]
		}
	}
	permute(0)

	if bestPath == nil {
		return nil, math.Inf(1)
	}
	return bestPath, minCost
}

// cycleCost prices a full visiting order: distance plus priority penalty
// over consecutive pairs, then a distance-only closing edge back to the
// first city. Orders that do not begin at the anchor cost +Inf so they
// can never win the minimization.
func cycleCost(cities []models.City, table geo.DistanceTable, perm []int, start int) float64 {
	if perm[0] != start {
		return math.Inf(1)
	}

	total := 0.0
	for i := 0; i < len(perm)-1; i++ {
		total += table[perm[i]][perm[i+1]]
		total += Penalty(cities[perm[i]].Priority, cities[perm[i+1]].Priority)
	}

	// Closing edge carries no penalty.
	total += table[perm[len(perm)-1]][perm[0]]

	return total
}
