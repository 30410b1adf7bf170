package matching

import (
	"github.com/jonathan/venture-match/internal/types"
)

// experienceRanks orders the six seniority levels. Unknown levels rank 0.
var experienceRanks = map[types.ExperienceLevel]int{
	types.LevelEntry:     1,
	types.LevelMid:       2,
	types.LevelSenior:    3,
	types.LevelLead:      4,
	types.LevelPrincipal: 5,
	types.LevelExecutive: 6,
}

// ExperienceRank returns the ordinal rank of an experience level, or 0 for
// unrecognized values.
func ExperienceRank(level types.ExperienceLevel) int {
	return experienceRanks[level]
}

// CalculateExperienceMatch scores seniority fit by ordinal distance.
// Overqualified candidates at distance 1 or 2 score higher than their
// underqualified counterparts; beyond that the significant-difference score
// applies in both directions.
func CalculateExperienceMatch(candidateLevel, requiredLevel types.ExperienceLevel) types.ExperienceMatch {
	candidateRank := ExperienceRank(candidateLevel)
	requiredRank := ExperienceRank(requiredLevel)

	if candidateRank == 0 || requiredRank == 0 {
		return types.ExperienceMatch{Score: 0, Reasoning: "Invalid experience level"}
	}

	if candidateRank == requiredRank {
		return types.ExperienceMatch{Score: 100, Reasoning: "Perfect experience level match"}
	}

	distance := candidateRank - requiredRank
	if distance < 0 {
		distance = -distance
	}

	var score float64
	var reasoning string
	switch {
	case distance == 1:
		score, reasoning = 80, "Close experience level match"
	case distance == 2:
		score, reasoning = 60, "Moderate experience level difference"
	default:
		score, reasoning = 30, "Significant experience level difference"
	}

	if candidateRank > requiredRank {
		switch distance {
		case 1:
			score, reasoning = 90, "Slightly overqualified candidate"
		case 2:
			score, reasoning = 70, "Moderately overqualified candidate"
		}
	}

	return types.ExperienceMatch{Score: score, Reasoning: reasoning}
}
