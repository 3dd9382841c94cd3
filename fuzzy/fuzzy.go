// Package fuzzy scores free-text input against code/description reference
// pairs and ranks the closest candidates. It is used to suggest corrections
// for near-miss user input before a query is sent anywhere.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/xrash/smetrics"
)

const (
	// descriptionWeight dampens description similarity; a description hit is
	// a noisier signal than a direct code hit.
	descriptionWeight = 0.7

	// Jaro-Winkler parameters: standard boost threshold and prefix length.
	boostThreshold = 0.7
	prefixSize     = 4
)

// Candidate is one valid (code, description) reference entry.
type Candidate struct {
	Code        string
	Description string
}

// Match is a scored candidate. Score is in [0, 1], 1 meaning identical.
type Match struct {
	Code        string
	Description string
	Score       float64
}

// Rank scores input against every candidate and returns matches at or above
// threshold, best first, truncated to maxResults. Candidates with equal
// scores keep their original order.
//
// The score per candidate is the maximum of the code similarity and the
// dampened description similarity, both case-insensitive Jaro-Winkler.
func Rank(input string, candidates []Candidate, threshold float64, maxResults int) []Match {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return nil
	}

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		score := similarity(needle, c)
		if score < threshold {
			continue
		}
		matches = append(matches, Match{
			Code:        c.Code,
			Description: c.Description,
			Score:       score,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if maxResults > 0 && len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// similarity computes the candidate score for an already-lowercased needle.
func similarity(needle string, c Candidate) float64 {
	codeScore := smetrics.JaroWinkler(needle, strings.ToLower(c.Code), boostThreshold, prefixSize)

	score := codeScore
	if c.Description != "" {
		descScore := smetrics.JaroWinkler(needle, strings.ToLower(c.Description), boostThreshold, prefixSize)
		if weighted := descScore * descriptionWeight; weighted > score {
			score = weighted
		}
	}
	return score
}
