package matching

import (
	"github.com/jonathan/venture-match/internal/types"
)

// Unrecognized availability values score a neutral 50.
const availabilityDefaultScore = 50

var availabilityScores = map[types.Availability]float64{
	types.ActivelyLooking:     100,
	types.OpenToOpportunities: 75,
	types.NotLooking:          30,
}

// AvailabilityScore returns the score for an availability status. It is also
// used as the ordinal when sorting results by availability.
func AvailabilityScore(availability types.Availability) float64 {
	if score, ok := availabilityScores[availability]; ok {
		return score
	}
	return availabilityDefaultScore
}

// CalculateAvailabilityMatch scores a candidate's availability, echoing the
// raw status as evidence.
func CalculateAvailabilityMatch(availability types.Availability) types.AvailabilityMatch {
	return types.AvailabilityMatch{
		Score:  AvailabilityScore(availability),
		Status: string(availability),
	}
}
