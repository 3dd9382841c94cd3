// Package table defines the tabular result model shared by the API client,
// the row filter, the pager, and the export writers. A Result is an ordered
// sequence of rows over a fixed column set; each cell is a string, a number,
// or the explicit missing marker.
package table

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind discriminates the scalar variants a cell can hold.
type Kind int

const (
	// KindMissing marks a cell with no usable value.
	KindMissing Kind = iota
	// KindString marks a textual cell.
	KindString
	// KindNumber marks a numeric cell.
	KindNumber
)

// Value is a single table cell.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
}

// String returns a textual Value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Number returns a numeric Value.
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// Missing returns the missing marker.
func Missing() Value { return Value{Kind: KindMissing} }

// ParseValue classifies raw API cell text. Empty strings and the source's
// not-available spellings become Missing, numeric text becomes a Number,
// anything else stays a string.
func ParseValue(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToUpper(trimmed) {
	case "", "NAN", "N/A", "NA", "NULL":
		return Missing()
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Number(f)
	}
	return String(trimmed)
}

// IsMissing reports whether the cell holds no value.
func (v Value) IsMissing() bool { return v.Kind == KindMissing }

// Format renders the cell for console and CSV output. Missing cells render
// as the empty string; numbers use the shortest exact representation.
func (v Value) Format() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindString:
		return v.Str
	default:
		return ""
	}
}

// Any returns the cell as a plain Go value: string, float64, or nil for
// Missing. Used for filter environments and spreadsheet cells.
func (v Value) Any() any {
	switch v.Kind {
	case KindNumber:
		return v.Num
	case KindString:
		return v.Str
	default:
		return nil
	}
}

// MarshalJSON encodes numbers as JSON numbers, strings as JSON strings, and
// Missing as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumber:
		return json.Marshal(v.Num)
	case KindString:
		return json.Marshal(v.Str)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts null, numbers, and strings.
func (v *Value) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*v = Missing()
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*v = String(str)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("cell is neither null, string, nor number: %s", s)
	}
	*v = Number(f)
	return nil
}

// Row maps column names to cell values.
type Row map[string]Value

// Result is an ordered row set over a fixed column list. Duplicate rows are
// passed through as returned by the source.
type Result struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Len returns the number of rows.
func (r Result) Len() int { return len(r.Rows) }

// Empty reports whether the result holds no rows. An empty result is a
// valid outcome, not an error.
func (r Result) Empty() bool { return len(r.Rows) == 0 }

// Slice returns the rows in [lo, hi), clamped to the valid range. The
// returned result shares backing storage with the receiver.
func (r Result) Slice(lo, hi int) Result {
	if lo < 0 {
		lo = 0
	}
	if hi > len(r.Rows) {
		hi = len(r.Rows)
	}
	if lo >= hi {
		return Result{Columns: r.Columns}
	}
	return Result{Columns: r.Columns, Rows: r.Rows[lo:hi]}
}

// Column returns the named column's cells in row order. Rows without the
// column yield Missing.
func (r Result) Column(name string) []Value {
	out := make([]Value, len(r.Rows))
	for i, row := range r.Rows {
		if v, ok := row[name]; ok {
			out[i] = v
		} else {
			out[i] = Missing()
		}
	}
	return out
}

// SortBy stably sorts rows by the named column. Both-numeric cells compare
// numerically, otherwise the formatted text compares lexically; missing
// cells sort last.
func (r *Result) SortBy(column string) {
	sort.SliceStable(r.Rows, func(i, j int) bool {
		a, b := r.Rows[i][column], r.Rows[j][column]
		switch {
		case a.IsMissing():
			return false
		case b.IsMissing():
			return true
		case a.Kind == KindNumber && b.Kind == KindNumber:
			return a.Num < b.Num
		default:
			return a.Format() < b.Format()
		}
	})
}
