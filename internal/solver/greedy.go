package solver

import (
	"math"

	"flight-route-optimizer/internal/geo"
	"flight-route-optimizer/internal/models"
)

// solveGreedy builds a route in a single pass: from the current city it
// always moves to the unvisited city with the lowest distance plus
// priority penalty. No backtracking, so the result is a valid but
// possibly suboptimal cycle. Candidates are scanned by increasing index,
// making equal-cost ties resolve to the lowest index deterministically.
// O(n²) time, O(n) space.
func solveGreedy(cities []models.City, table geo.DistanceTable, start int) ([]int, float64) {
	n := len(cities)

	visited := make([]bool, n)
	visited[start] = true

	path := make([]int, 1, n)
	path[0] = start

	current := start
	total := 0.0

	for len(path) < n {
		minCost := math.Inf(1)
		next := -1

		for city := 0; city < n; city++ {
			if visited[city] {
				continue
			}
			cost := table[current][city] + Penalty(cities[current].Priority, cities[city].Priority)
			if cost < minCost {
				minCost = cost
				next = city
			}
		}

		visited[next] = true
		path = append(path, next)
		total += minCost
		current = next
	}

	// Closing edge carries no penalty.
	total += table[current][start]

	return path, total
}
