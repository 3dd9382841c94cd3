package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/justin4957/UNStatsExplorer/fuzzy"
)

// ResolveOne prompts for a single code and validates it against the
// candidates. Near-miss input is answered with ranked suggestions to pick
// from; the caller gets either a valid code or absent (ok=false).
//
// Exact matches (case-insensitive) return the canonical code immediately,
// without consulting the matcher.
func (p *Prompter) ResolveOne(label string, candidates []fuzzy.Candidate, opts Options) (string, bool, error) {
	for {
		input, err := p.Ask(label)
		if err != nil {
			return "", false, err
		}

		if input == "" {
			if opts.AllowEmpty {
				return "", false, nil
			}
			fmt.Fprintln(p.out, "A value is required.")
			continue
		}

		if code, ok := exactMatch(input, candidates); ok {
			return code, true, nil
		}

		matches := fuzzy.Rank(input, candidates, opts.threshold(), opts.maxSuggestions())
		if len(matches) == 0 {
			retry, err := p.Confirm(fmt.Sprintf("No close matches for %q. Try again?", input))
			if err != nil {
				return "", false, err
			}
			if !retry {
				return "", false, nil
			}
			continue
		}

		code, picked, err := p.pickSuggestion(input, matches, candidates)
		if err != nil {
			return "", false, err
		}
		if picked {
			p.logger.Debug().Str("input", input).Str("resolved", code).Msg("Accepted fuzzy correction")
			return code, true, nil
		}
		// Re-enter from the top.
	}
}

// pickSuggestion shows ranked suggestions and interprets the selection.
// Returns picked=false when the user chose to re-enter the code.
func (p *Prompter) pickSuggestion(input string, matches []fuzzy.Match, candidates []fuzzy.Candidate) (string, bool, error) {
	fmt.Fprintf(p.out, "No exact match for %q. Did you mean:\n", input)
	for i, m := range matches {
		fmt.Fprintf(p.out, "  %d. %-15s %s\n", i+1, m.Code, truncate(m.Description, 60))
	}

	for {
		choice, err := p.Ask("Pick a number, [r]e-enter, or [l]ist all codes")
		if err != nil {
			return "", false, err
		}

		switch strings.ToLower(choice) {
		case "r", "":
			return "", false, nil
		case "l":
			if err := p.listCodes(candidates); err != nil {
				return "", false, err
			}
			return "", false, nil
		}

		if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(matches) {
			return matches[n-1].Code, true, nil
		}
		fmt.Fprintf(p.out, "Enter a number between 1 and %d, r, or l.\n", len(matches))
	}
}

// listCodes pages the full candidate list 20 at a time.
func (p *Prompter) listCodes(candidates []fuzzy.Candidate) error {
	for i, c := range candidates {
		fmt.Fprintf(p.out, "  %-15s %s\n", c.Code, truncate(c.Description, 60))
		if (i+1)%listPageSize == 0 && i+1 < len(candidates) {
			line, err := p.Ask("Press Enter for more, q to stop")
			if err != nil {
				return err
			}
			if strings.EqualFold(line, "q") {
				return nil
			}
		}
	}
	return nil
}

// ResolveMany splits comma-separated input and resolves each token on its
// own: exact matches pass through, strong fuzzy matches (score >= 0.85) are
// auto-accepted, everything else is skipped with a notice. Partial success
// is a valid outcome.
func (p *Prompter) ResolveMany(input string, candidates []fuzzy.Candidate, opts Options) []string {
	var codes []string
	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if code, ok := exactMatch(token, candidates); ok {
			codes = append(codes, code)
			continue
		}

		matches := fuzzy.Rank(token, candidates, opts.threshold(), 1)
		if len(matches) > 0 && matches[0].Score >= autoAcceptScore {
			fmt.Fprintf(p.out, "Interpreted %q as %s (%s)\n", token, matches[0].Code, truncate(matches[0].Description, 50))
			codes = append(codes, matches[0].Code)
			continue
		}

		fmt.Fprintf(p.out, "Skipping %q: no close match\n", token)
		p.logger.Debug().Str("token", token).Msg("Dropped unresolvable token")
	}
	return codes
}

// exactMatch finds a case-insensitive code match and returns the canonical
// spelling.
func exactMatch(input string, candidates []fuzzy.Candidate) (string, bool) {
	for _, c := range candidates {
		if strings.EqualFold(input, c.Code) {
			return c.Code, true
		}
	}
	return "", false
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Cut on rune boundaries so multi-byte names never split mid-rune.
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
