package matching

import (
	"github.com/jonathan/venture-match/internal/types"
)

// Preferred-skill bonus: each matched preferred skill adds 5 points, capped
// at 20 points total.
const (
	preferredSkillBonus    = 0.05
	preferredSkillBonusCap = 0.20
)

// CalculateSkillMatch scores a candidate's skills against a job's required
// and preferred skills. If either the candidate or required list is empty the
// score is 0 and every required skill counts as missing.
func CalculateSkillMatch(candidateSkills, requiredSkills, preferredSkills []string, syn Synonyms) types.SkillsMatch {
	if len(candidateSkills) == 0 || len(requiredSkills) == 0 {
		return types.SkillsMatch{
			Score:         0,
			MatchedSkills: []string{},
			MissingSkills: append([]string{}, requiredSkills...),
			MatchedCount:  0,
			TotalRequired: len(requiredSkills),
		}
	}

	normalizedCandidate := syn.NormalizeAll(candidateSkills)
	normalizedRequired := syn.NormalizeAll(requiredSkills)
	normalizedPreferred := syn.NormalizeAll(preferredSkills)

	candidateSet := make(map[string]struct{}, len(normalizedCandidate))
	for _, skill := range normalizedCandidate {
		candidateSet[skill] = struct{}{}
	}

	matchedRequired := make([]string, 0, len(normalizedRequired))
	missing := make([]string, 0)
	for _, skill := range normalizedRequired {
		if _, ok := candidateSet[skill]; ok {
			matchedRequired = append(matchedRequired, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	matchedPreferred := make([]string, 0, len(normalizedPreferred))
	for _, skill := range normalizedPreferred {
		if _, ok := candidateSet[skill]; ok {
			matchedPreferred = append(matchedPreferred, skill)
		}
	}

	requiredMatchRate := float64(len(matchedRequired)) / float64(len(normalizedRequired))
	preferredBonus := float64(len(matchedPreferred)) * preferredSkillBonus
	if preferredBonus > preferredSkillBonusCap {
		preferredBonus = preferredSkillBonusCap
	}

	score := (requiredMatchRate + preferredBonus) * 100
	if score > 100 {
		score = 100
	}

	return types.SkillsMatch{
		Score:         score,
		MatchedSkills: append(matchedRequired, matchedPreferred...),
		MissingSkills: missing,
		MatchedCount:  len(matchedRequired),
		TotalRequired: len(normalizedRequired),
	}
}
