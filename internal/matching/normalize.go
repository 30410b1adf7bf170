// Package matching implements the candidate scoring and search engine. All
// scoring functions are pure and total: invalid input degrades to a default
// score instead of failing, so one malformed record never aborts a search.
package matching

import "strings"

// Synonyms maps recognized skill variants to their canonical term. Lookup is
// case-insensitive exact match; unknown skills pass through lowercased and
// trimmed.
type Synonyms map[string]string

// defaultVariants lists recognized variants per canonical skill term.
var defaultVariants = map[string][]string{
	"react":                   {"reactjs", "react.js"},
	"javascript":              {"js", "java script"},
	"typescript":              {"ts"},
	"node":                    {"nodejs", "node.js"},
	"python":                  {"python3", "py"},
	"css":                     {"css3"},
	"html":                    {"html5"},
	"postgresql":              {"postgres", "psql"},
	"mongodb":                 {"mongo"},
	"aws":                     {"amazon web services"},
	"gcp":                     {"google cloud platform"},
	"kubernetes":              {"k8s"},
	"docker":                  {"containerization"},
	"machine learning":        {"ml", "machinelearning"},
	"artificial intelligence": {"ai"},
}

// DefaultSynonyms builds the standard variant-to-canonical lookup table.
func DefaultSynonyms() Synonyms {
	table := make(Synonyms)
	for canonical, variants := range defaultVariants {
		table[canonical] = canonical
		for _, v := range variants {
			table[v] = canonical
		}
	}
	return table
}

// Normalize maps a free-text skill to its canonical lowercase token. It is
// deterministic and never fails; normalizing an already-normalized string
// returns the same string.
func (s Synonyms) Normalize(skill string) string {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := s[normalized]; ok {
		return canonical
	}
	return normalized
}

// NormalizeAll normalizes every skill in the list, preserving order.
func (s Synonyms) NormalizeAll(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}
	normalized := make([]string, len(skills))
	for i, skill := range skills {
		normalized[i] = s.Normalize(skill)
	}
	return normalized
}
