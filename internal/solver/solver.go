package solver

import (
	"errors"
	"log"
	"math"
	"time"

	"flight-route-optimizer/internal/geo"
	"flight-route-optimizer/internal/models"
)

// Algorithm identifies one of the route solvers. The set is closed:
// transport-layer code resolves user input to an Algorithm via
// ParseAlgorithm before calling Solve, so the engine never sees an
// invalid algorithm name.
type Algorithm int

const (
	// BruteForce evaluates every permutation anchored at the start. O(n!).
	BruteForce Algorithm = iota
	// DynamicProgramming memoizes (city, visited-set) states. O(n²·2ⁿ).
	DynamicProgramming
	// Greedy picks the nearest feasible next city, no backtracking. O(n²).
	Greedy
)

// String returns the wire name of the algorithm
func (a Algorithm) String() string {
	switch a {
	case BruteForce:
		return "brute"
	case DynamicProgramming:
		return "dp"
	case Greedy:
		return "greedy"
	default:
		return "unknown"
	}
}

// Algorithms lists all available algorithms in comparison order
func Algorithms() []Algorithm {
	return []Algorithm{BruteForce, DynamicProgramming, Greedy}
}

// ParseAlgorithm resolves a wire name to an Algorithm
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "brute":
		return BruteForce, nil
	case "dp":
		return DynamicProgramming, nil
	case "greedy":
		return Greedy, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// MaxExactCities bounds the input size of the exact solvers. The visited
// set is a bitmask and the memo table holds n·2ⁿ states, so the bound
// keeps both well inside native integer width and sane memory.
const MaxExactCities = 16

// AutoStart selects the starting city automatically: the first city with
// the numerically lowest priority value.
const AutoStart = -1

var (
	// ErrUnknownAlgorithm is returned for an algorithm outside the closed set
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")
	// ErrStartOutOfRange is returned when startIdx is not a valid city position
	ErrStartOutOfRange = errors.New("solver: starting city index out of range")
	// ErrTooManyCities is returned when an exact solver exceeds MaxExactCities
	ErrTooManyCities = errors.New("solver: too many cities for exact search")
)

// Result holds the outcome of one solver run. A nil Route paired with an
// infinite TotalCost means no feasible route exists (empty input); this
// is not an error.
type Result struct {
	Route     []models.City
	TotalCost float64
	Elapsed   time.Duration
}

// Found reports whether a feasible route was produced
func (r Result) Found() bool {
	return r.Route != nil
}

// Solve runs the selected algorithm over the given cities and their
// precomputed distance table. startIdx fixes the first city of the
// route; pass AutoStart to begin at the highest-urgency city. The table
// must have been built from the same city slice in the same order.
//
// Solvers are pure functions of their inputs: every call builds its own
// working state, so concurrent Solve calls may share one table.
func Solve(algo Algorithm, cities []models.City, table geo.DistanceTable, startIdx int) (Result, error) {
	started := time.Now()
	n := len(cities)

	if startIdx >= n {
		return Result{}, ErrStartOutOfRange
	}

	if n == 0 {
		return Result{TotalCost: math.Inf(1), Elapsed: time.Since(started)}, nil
	}

	if startIdx < 0 {
		startIdx = resolveStart(cities)
	}

	if n == 1 {
		return Result{
			Route:     []models.City{cities[0]},
			TotalCost: 0,
			Elapsed:   time.Since(started),
		}, nil
	}

	var (
		path []int
		cost float64
	)

	switch algo {
	case BruteForce:
		if n > MaxExactCities {
			return Result{}, ErrTooManyCities
		}
		path, cost = solveBruteForce(cities, table, startIdx)
	case DynamicProgramming:
		if n > MaxExactCities {
			return Result{}, ErrTooManyCities
		}
		path, cost = solveDP(cities, table, startIdx)
	case Greedy:
		path, cost = solveGreedy(cities, table, startIdx)
	default:
		return Result{}, ErrUnknownAlgorithm
	}

	elapsed := time.Since(started)

	if path == nil {
		log.Printf("[SOLVER] %s: no feasible route cities=%d", algo, n)
		return Result{TotalCost: math.Inf(1), Elapsed: elapsed}, nil
	}

	route := make([]models.City, len(path))
	for i, idx := range path {
		route[i] = cities[idx]
	}

	log.Printf("[SOLVER] %s: cities=%d start=%d cost=%.2f elapsed=%v", algo, n, startIdx, cost, elapsed)

	return Result{Route: route, TotalCost: cost, Elapsed: elapsed}, nil
}

// resolveStart returns the index of the city with the lowest priority
// value; ties go to the first occurrence in input order.
func resolveStart(cities []models.City) int {
	best := 0
	for i := 1; i < len(cities); i++ {
		if cities[i].Priority < cities[best].Priority {
			best = i
		}
	}
	return best
}
