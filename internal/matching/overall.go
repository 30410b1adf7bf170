package matching

import (
	"math"

	"github.com/jonathan/venture-match/internal/types"
)

// Weights combines the four sub-scores into the overall match score. The
// fields must sum to 1.0.
type Weights struct {
	Skills       float64
	Experience   float64
	Location     float64
	Availability float64
}

// DefaultWeights returns the standard score weighting.
func DefaultWeights() Weights {
	return Weights{
		Skills:       0.40,
		Experience:   0.30,
		Location:     0.20,
		Availability: 0.10,
	}
}

// CalculateOverallMatch computes the weighted overall score and full
// breakdown for one candidate against the job requirements. The overall score
// is rounded to two decimals; the breakdown retains the exact sub-scores for
// explainability.
func CalculateOverallMatch(candidate *types.CandidateProfile, req *types.JobRequirements, syn Synonyms, w Weights) (float64, types.MatchBreakdown) {
	breakdown := types.MatchBreakdown{
		SkillsMatch:       CalculateSkillMatch(candidate.Skills, req.RequiredSkills, req.PreferredSkills, syn),
		ExperienceMatch:   CalculateExperienceMatch(candidate.ExperienceLevel, req.ExperienceLevel),
		LocationMatch:     CalculateLocationMatch(candidate.Location, req.Location, req.IsRemote),
		AvailabilityMatch: CalculateAvailabilityMatch(candidate.Availability),
	}

	overall := breakdown.SkillsMatch.Score*w.Skills +
		breakdown.ExperienceMatch.Score*w.Experience +
		breakdown.LocationMatch.Score*w.Location +
		breakdown.AvailabilityMatch.Score*w.Availability

	return round2(overall), breakdown
}

// round2 rounds to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
