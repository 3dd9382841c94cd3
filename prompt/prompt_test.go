package prompt

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/justin4957/UNStatsExplorer/fuzzy"
)

var countryCandidates = []fuzzy.Candidate{
	{Code: "USA", Description: "United States of America"},
	{Code: "GBR", Description: "United Kingdom of Great Britain and Northern Ireland"},
	{Code: "FRA", Description: "France"},
	{Code: "DEU", Description: "Germany"},
}

// scripted builds a prompter fed by the given input lines.
func scripted(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	p := New(NewReader(strings.NewReader(input)), out, zerolog.Nop())
	return p, out
}

func TestResolveOneExactMatch(t *testing.T) {
	p, out := scripted("usa\n")

	code, ok, err := p.ResolveOne("Country code", countryCandidates, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || code != "USA" {
		t.Errorf("got (%q, %v), want (USA, true)", code, ok)
	}
	// An exact match must resolve without any suggestion round.
	if strings.Contains(out.String(), "Did you mean") {
		t.Error("exact match should not trigger suggestions")
	}
}

func TestResolveOneEmptyInput(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		p, _ := scripted("\n")
		code, ok, err := p.ResolveOne("Country code", countryCandidates, Options{AllowEmpty: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok || code != "" {
			t.Errorf("got (%q, %v), want absent", code, ok)
		}
	})

	t.Run("re-prompted", func(t *testing.T) {
		p, out := scripted("\ngbr\n")
		code, ok, err := p.ResolveOne("Country code", countryCandidates, Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || code != "GBR" {
			t.Errorf("got (%q, %v), want (GBR, true)", code, ok)
		}
		if !strings.Contains(out.String(), "A value is required.") {
			t.Error("expected re-prompt notice")
		}
	})
}

func TestResolveOneSuggestions(t *testing.T) {
	t.Run("pick by number", func(t *testing.T) {
		p, out := scripted("usaa\n1\n")
		code, ok, err := p.ResolveOne("Country code", countryCandidates, Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || code != "USA" {
			t.Errorf("got (%q, %v), want (USA, true)", code, ok)
		}
		if !strings.Contains(out.String(), "Did you mean") {
			t.Error("expected suggestion list")
		}
	})

	t.Run("re-enter", func(t *testing.T) {
		p, _ := scripted("usaa\nr\ngbr\n")
		code, ok, err := p.ResolveOne("Country code", countryCandidates, Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || code != "GBR" {
			t.Errorf("got (%q, %v), want (GBR, true)", code, ok)
		}
	})

	t.Run("invalid selection re-asks", func(t *testing.T) {
		p, out := scripted("usaa\n99\n1\n")
		code, ok, err := p.ResolveOne("Country code", countryCandidates, Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || code != "USA" {
			t.Errorf("got (%q, %v), want (USA, true)", code, ok)
		}
		if !strings.Contains(out.String(), "Enter a number between") {
			t.Error("expected selection help text")
		}
	})

	t.Run("list all then resolve", func(t *testing.T) {
		p, out := scripted("usaa\nl\nfra\n")
		code, ok, err := p.ResolveOne("Country code", countryCandidates, Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || code != "FRA" {
			t.Errorf("got (%q, %v), want (FRA, true)", code, ok)
		}
		if !strings.Contains(out.String(), "DEU") {
			t.Error("expected full code listing")
		}
	})
}

func TestResolveOneNoSuggestions(t *testing.T) {
	t.Run("decline retry", func(t *testing.T) {
		p, out := scripted("qqqqqq\n\n")
		code, ok, err := p.ResolveOne("Country code", countryCandidates, Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok || code != "" {
			t.Errorf("got (%q, %v), want absent", code, ok)
		}
		if !strings.Contains(out.String(), "No close matches") {
			t.Error("expected no-match notice")
		}
	})

	t.Run("accept retry", func(t *testing.T) {
		p, _ := scripted("qqqqqq\ny\ndeu\n")
		code, ok, err := p.ResolveOne("Country code", countryCandidates, Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || code != "DEU" {
			t.Errorf("got (%q, %v), want (DEU, true)", code, ok)
		}
	})
}

func TestResolveMany(t *testing.T) {
	p, out := scripted("")

	codes := p.ResolveMany("usa, gbrx, , qqqqqq, fra", countryCandidates, Options{})

	want := []string{"USA", "GBR", "FRA"}
	if len(codes) != len(want) {
		t.Fatalf("got %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("codes[%d] = %q, want %q", i, codes[i], want[i])
		}
	}
	if !strings.Contains(out.String(), `Interpreted "gbrx" as GBR`) {
		t.Error("expected auto-accept notice for near-exact token")
	}
	if !strings.Contains(out.String(), `Skipping "qqqqqq"`) {
		t.Error("expected skip notice for unresolvable token")
	}
}

func TestListCodesPaging(t *testing.T) {
	candidates := make([]fuzzy.Candidate, 45)
	for i := range candidates {
		candidates[i] = fuzzy.Candidate{
			Code:        fmt.Sprintf("C%02d", i),
			Description: fmt.Sprintf("Candidate %d", i),
		}
	}

	t.Run("walk all pages", func(t *testing.T) {
		p, out := scripted("\n\n")
		if err := p.listCodes(candidates); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := strings.Count(out.String(), "Candidate "); got != 45 {
			t.Errorf("listed %d candidates, want 45", got)
		}
		if got := strings.Count(out.String(), "Press Enter for more"); got != 2 {
			t.Errorf("expected 2 page breaks, got %d", got)
		}
	})

	t.Run("quit after first page", func(t *testing.T) {
		p, out := scripted("q\n")
		if err := p.listCodes(candidates); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := strings.Count(out.String(), "Candidate "); got != 20 {
			t.Errorf("listed %d candidates, want 20", got)
		}
	})
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"whatever\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			p, _ := scripted(tt.input)
			got, err := p.Confirm("Proceed?")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseYears(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{name: "empty means all", input: "", want: nil},
		{name: "single year", input: "2015", want: []int{2015}},
		{name: "list", input: "2015, 2017", want: []int{2015, 2017}},
		{name: "range", input: "2010-2012", want: []int{2010, 2011, 2012}},
		{name: "range plus year", input: "2010-2012,2020", want: []int{2010, 2011, 2012, 2020}},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "half range", input: "2010-", wantErr: true},
		{name: "reversed range", input: "2019-2015", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseYears(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("year[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	in := "Côte d'Ivoire " + strings.Repeat("é", 60)
	got := truncate(in, 20)

	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: %q", got)
	}
	if want := string([]rune(in)[:17]) + "..."; got != want {
		t.Errorf("truncate = %q, want %q", got, want)
	}

	// Short strings pass through untouched even when multi-byte.
	if got := truncate("Côte d'Ivoire", 60); got != "Côte d'Ivoire" {
		t.Errorf("truncate shortened a fitting string: %q", got)
	}
}
