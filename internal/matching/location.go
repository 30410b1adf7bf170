package matching

import (
	"strings"

	"github.com/jonathan/venture-match/internal/types"
)

// CalculateLocationMatch scores geographic fit with a coarse city/region
// heuristic. Remote jobs always score 100. Distance is only known for exact
// matches; approximate matches leave it nil.
func CalculateLocationMatch(candidateLocation, jobLocation string, isRemote bool) types.LocationMatch {
	if isRemote {
		return types.LocationMatch{Score: 100, Distance: nil}
	}

	candidateClean := strings.ToLower(strings.TrimSpace(candidateLocation))
	jobClean := strings.ToLower(strings.TrimSpace(jobLocation))

	if candidateClean == jobClean {
		zero := 0.0
		return types.LocationMatch{Score: 100, Distance: &zero}
	}

	candidateParts := strings.Split(candidateClean, ",")
	jobParts := strings.Split(jobClean, ",")

	if len(candidateParts) >= 2 && len(jobParts) >= 2 {
		// Same city, different state format
		if strings.TrimSpace(candidateParts[0]) == strings.TrimSpace(jobParts[0]) {
			return types.LocationMatch{Score: 90, Distance: nil}
		}
		// Same state/region
		if strings.TrimSpace(candidateParts[len(candidateParts)-1]) == strings.TrimSpace(jobParts[len(jobParts)-1]) {
			return types.LocationMatch{Score: 70, Distance: nil}
		}
	}

	return types.LocationMatch{Score: 40, Distance: nil}
}
