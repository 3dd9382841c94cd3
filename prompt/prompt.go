// Package prompt resolves free-text console input into valid reference
// codes. Near-miss input gets fuzzy suggestions to pick from instead of a
// flat rejection.
package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

const (
	defaultThreshold      = 0.6
	defaultMaxSuggestions = 5

	// autoAcceptScore is the bar for accepting a fuzzy match without
	// human confirmation in the multi-value flow.
	autoAcceptScore = 0.85

	// listPageSize is how many codes a "list all" page shows.
	listPageSize = 20
)

// Options tune code resolution.
type Options struct {
	// AllowEmpty makes empty input return absent instead of re-prompting.
	AllowEmpty bool
	// Threshold is the minimum fuzzy score for a suggestion; 0 means the
	// default of 0.6.
	Threshold float64
	// MaxSuggestions caps the suggestion list; 0 means the default of 5.
	MaxSuggestions int
}

func (o Options) threshold() float64 {
	if o.Threshold > 0 {
		return o.Threshold
	}
	return defaultThreshold
}

func (o Options) maxSuggestions() int {
	if o.MaxSuggestions > 0 {
		return o.MaxSuggestions
	}
	return defaultMaxSuggestions
}

// Prompter owns one side of a console conversation: it writes prompts to
// out and reads replies from in.
type Prompter struct {
	in     *Reader
	out    io.Writer
	logger zerolog.Logger
}

// New creates a prompter over the given streams.
func New(in *Reader, out io.Writer, logger zerolog.Logger) *Prompter {
	return &Prompter{in: in, out: out, logger: logger}
}

// Ask prints a label and returns the trimmed reply line.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question; only an explicit y/yes counts as yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	line, err := p.in.ReadLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
