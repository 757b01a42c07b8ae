package solver

// PenaltyFactor scales priority violations so that a deferred
// high-urgency city costs far more than any realistic detour. The
// priority order stays a soft constraint: a route may still violate it
// when every alternative is worse.
const PenaltyFactor = 1000.0

// Penalty returns the additive cost of traveling from a city with
// fromPriority to one with toPriority. Lower numbers are more urgent.
// An edge whose priority number stays equal or increases is free; an
// edge that arrives at a more urgent city than the one it left
// (toPriority < fromPriority) is penalized in proportion to the drop,
// because that urgent city should have been visited earlier.
func Penalty(fromPriority, toPriority int) float64 {
	if fromPriority <= toPriority {
		return 0
	}
	return float64(fromPriority-toPriority) * PenaltyFactor
}
