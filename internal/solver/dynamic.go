package solver

import (
	"math"

	"flight-route-optimizer/internal/geo"
	"flight-route-optimizer/internal/models"
)

// dpState is one memoized subproblem: the best achievable cost from a
// (city, visited-set) state and the next city on that best continuation.
type dpState struct {
	cost float64
	next int
	done bool
}

// solveDP finds the same optimum as the exhaustive search by memoizing
// subproblems keyed by (current city, bitmask of visited cities). States
// are filled lazily on first visit and reused for every later reference
// within this call; the memo is call-local, so concurrent solves never
// share state.
//
// Candidate next cities are enumerated by increasing index with a strict
// less-than comparison, matching the exhaustive solver's tie-break.
// O(n²·2ⁿ) time and O(n·2ⁿ) space.
func solveDP(cities []models.City, table geo.DistanceTable, start int) ([]int, float64) {
	n := len(cities)
	full := 1<<n - 1

	memo := make([]dpState, n<<n)

	var visit func(pos, mask int) float64
	visit = func(pos, mask int) float64 {
		if mask == full {
			// Only the closing edge remains; no penalty on it.
			return table[pos][start]
		}

		state := &memo[pos<<n|mask]
		if state.done {
			return state.cost
		}

		minCost := math.Inf(1)
		bestNext := -1

		for next := 0; next < n; next++ {
			if mask&(1<<next) != 0 {
				continue
			}
			cost := table[pos][next] +
				Penalty(cities[pos].Priority, cities[next].Priority) +
				visit(next, mask|1<<next)
			if cost < minCost {
				minCost = cost
				bestNext = next
			}
		}

		state.cost = minCost
		state.next = bestNext
		state.done = true

		return minCost
	}

	cost := visit(start, 1<<start)

	// Walk the recorded best-next chain to materialize the route.
	path := make([]int, 0, n)
	path = append(path, start)

	pos, mask := start, 1<<start
	for mask != full {
		pos = memo[pos<<n|mask].next
		mask |= 1 << pos
		path = append(path, pos)
	}

	return path, cost
}
