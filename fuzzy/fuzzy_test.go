package fuzzy

import "testing"

var geoAreas = []Candidate{
	{Code: "USA", Description: "United States of America"},
	{Code: "GBR", Description: "United Kingdom of Great Britain and Northern Ireland"},
	{Code: "BRA", Description: "Brazil"},
	{Code: "WLD", Description: "World"},
}

func TestRankExactSelfMatchScoresOne(t *testing.T) {
	for _, c := range geoAreas {
		matches := Rank(c.Code, geoAreas, 0.5, 5)
		if len(matches) == 0 {
			t.Fatalf("Rank(%q) returned no matches", c.Code)
		}
		if matches[0].Code != c.Code {
			t.Errorf("Rank(%q) best match = %q, want %q", c.Code, matches[0].Code, c.Code)
		}
		if matches[0].Score != 1.0 {
			t.Errorf("Rank(%q) best score = %f, want 1.0", c.Code, matches[0].Score)
		}
	}
}

func TestRankIsCaseInsensitive(t *testing.T) {
	matches := Rank("usa", geoAreas, 0.5, 1)
	if len(matches) != 1 || matches[0].Code != "USA" || matches[0].Score != 1.0 {
		t.Fatalf("Rank(\"usa\") = %+v, want exact USA match", matches)
	}
}

func TestRankBelowThresholdReturnsEmpty(t *testing.T) {
	matches := Rank("zzzzqqqq", geoAreas, 0.8, 5)
	if len(matches) != 0 {
		t.Fatalf("expected no matches for disjoint input, got %+v", matches)
	}
}

func TestRankEmptyInputReturnsNothing(t *testing.T) {
	if matches := Rank("   ", geoAreas, 0.1, 5); len(matches) != 0 {
		t.Fatalf("expected no matches for blank input, got %+v", matches)
	}
}

func TestRankMatchesDescriptions(t *testing.T) {
	matches := Rank("World", geoAreas, 0.6, 3)
	if len(matches) == 0 || matches[0].Code != "WLD" {
		t.Fatalf("Rank(\"World\") = %+v, want WLD first", matches)
	}
	// The code "WLD" shares little with the input, so the hit comes from the
	// dampened description score and can never exceed the weight.
	if matches[0].Score > descriptionWeight {
		t.Errorf("description-driven score = %f, want <= %f", matches[0].Score, descriptionWeight)
	}
}

func TestRankTruncatesToMaxResults(t *testing.T) {
	matches := Rank("U", geoAreas, 0.0, 2)
	if len(matches) > 2 {
		t.Fatalf("expected at most 2 matches, got %d", len(matches))
	}
}

func TestRankPrefersSharedPrefix(t *testing.T) {
	candidates := []Candidate{
		{Code: "SI_POV_DAY1", Description: ""},
		{Code: "DAY1_POV_SI", Description: ""},
	}

	matches := Rank("SI_POV_DAY", candidates, 0.1, 2)
	if len(matches) < 2 {
		t.Fatalf("expected both candidates above threshold, got %+v", matches)
	}
	if matches[0].Code != "SI_POV_DAY1" {
		t.Errorf("prefix-sharing candidate should rank first, got %q", matches[0].Code)
	}
}

func TestRankEqualScoresKeepOrder(t *testing.T) {
	candidates := []Candidate{
		{Code: "AAA", Description: ""},
		{Code: "AAB", Description: ""},
		{Code: "AAC", Description: ""},
	}

	matches := Rank("AA", candidates, 0.0, 3)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	// All three differ only in a character the input does not contain, so
	// their scores tie and the original order must survive.
	for i, want := range []string{"AAA", "AAB", "AAC"} {
		if matches[i].Code != want {
			t.Fatalf("equal-score candidates reordered: %+v", matches)
		}
	}
}
