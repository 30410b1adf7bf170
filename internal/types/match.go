package types

// SkillsMatch explains how a candidate's skills line up with a job's
// required and preferred skills. All skill names are normalized.
type SkillsMatch struct {
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	MatchedCount  int      `json:"matched_count"`
	TotalRequired int      `json:"total_required"`
}

// ExperienceMatch explains the seniority fit between candidate and job.
type ExperienceMatch struct {
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning"`
}

// LocationMatch explains geographic fit. Distance is only known for exact
// matches; approximate matches leave it nil.
type LocationMatch struct {
	Score    float64  `json:"score"`
	Distance *float64 `json:"distance"`
}

// AvailabilityMatch explains how available the candidate is, echoing the raw
// status as evidence.
type AvailabilityMatch struct {
	Score  float64 `json:"score"`
	Status string  `json:"status"`
}

// MatchBreakdown carries all four sub-scores so callers can show why a
// candidate ranked where they did.
type MatchBreakdown struct {
	SkillsMatch       SkillsMatch       `json:"skills_match"`
	ExperienceMatch   ExperienceMatch   `json:"experience_match"`
	LocationMatch     LocationMatch     `json:"location_match"`
	AvailabilityMatch AvailabilityMatch `json:"availability_match"`
}

// MatchedCandidate is a candidate with their computed match result. It is
// ephemeral: computed per search, never persisted.
type MatchedCandidate struct {
	CandidateProfile
	MatchScore       float64          `json:"match_score"`
	MatchBreakdown   MatchBreakdown   `json:"match_breakdown"`
	RecentExperience []WorkExperience `json:"recent_experience"`
}
