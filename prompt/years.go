package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseYears parses comma-separated years and inclusive ranges, e.g.
// "2015" or "2010-2012,2020". Empty input means no year restriction and
// returns nil. Malformed input is an error for the caller to re-prompt on,
// never a fatal condition.
func ParseYears(input string) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	var years []int
	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		lo, hi, ok := strings.Cut(token, "-")
		if !ok {
			year, err := strconv.Atoi(token)
			if err != nil {
				return nil, fmt.Errorf("invalid year %q", token)
			}
			years = append(years, year)
			continue
		}

		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("invalid year range %q", token)
		}
		end, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return nil, fmt.Errorf("invalid year range %q", token)
		}
		if start > end {
			return nil, fmt.Errorf("year range %q is reversed", token)
		}
		for y := start; y <= end; y++ {
			years = append(years, y)
		}
	}
	return years, nil
}
