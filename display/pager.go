// Package display renders results as console tables, one page at a time
// for anything larger than a screenful.
package display

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/justin4957/UNStatsExplorer/table"
)

// Action is the outcome of a paging session.
type Action int

const (
	// ActionNone means the viewer quit or the result fit on one page.
	ActionNone Action = iota
	// ActionExport means the viewer asked to export the result.
	ActionExport
)

// DefaultPageSize is the number of rows per interactive page.
const DefaultPageSize = 15

// maxColumnWidth caps a rendered column; longer cells are truncated.
const maxColumnWidth = 40

// LineReader yields console input lines.
type LineReader interface {
	ReadLine() (string, error)
}

// Pager shows a result page by page, driven by single-letter commands:
// n/p move one page, f/l jump to the ends, e exports, q quits.
type Pager struct {
	in  LineReader
	out io.Writer
}

// NewPager creates a pager over the given streams.
func NewPager(in LineReader, out io.Writer) *Pager {
	return &Pager{in: in, out: out}
}

// Show pages through the result. Results that fit on a single page render
// once without entering the command loop. Input ending (EOF) counts as
// quitting.
func (p *Pager) Show(res table.Result, pageSize int) (Action, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	if res.Empty() {
		fmt.Fprintln(p.out, "No data to display.")
		return ActionNone, nil
	}

	totalPages := (res.Len() + pageSize - 1) / pageSize
	if totalPages == 1 {
		Render(p.out, res)
		return ActionNone, nil
	}

	page := 1
	for {
		lo := (page - 1) * pageSize
		hi := lo + pageSize
		if hi > res.Len() {
			hi = res.Len()
		}
		renderRows(p.out, res.Slice(lo, hi), lo)

		fmt.Fprintf(p.out, "Page %d/%d (%d rows) | [n]ext [p]rev [f]irst [l]ast [e]xport [q]uit: ",
			page, totalPages, res.Len())

		line, err := p.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ActionNone, nil
			}
			return ActionNone, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "n":
			if page == totalPages {
				fmt.Fprintln(p.out, "Already on the last page.")
			} else {
				page++
			}
		case "p":
			if page == 1 {
				fmt.Fprintln(p.out, "Already on the first page.")
			} else {
				page--
			}
		case "f":
			page = 1
		case "l":
			page = totalPages
		case "q":
			return ActionNone, nil
		case "e":
			return ActionExport, nil
		default:
			fmt.Fprintf(p.out, "Unknown command %q.\n", strings.TrimSpace(line))
		}
	}
}

// Render writes the whole result as one table.
func Render(w io.Writer, res table.Result) {
	if res.Empty() {
		fmt.Fprintln(w, "No data to display.")
		return
	}
	renderRows(w, res, 0)
}

// renderRows draws one table of rows. offset shifts the row numbering so
// paged output keeps absolute row numbers.
func renderRows(w io.Writer, res table.Result, offset int) {
	columns := res.Columns
	widths := columnWidths(res, columns)

	ruleWidth := 5
	for _, cw := range widths {
		ruleWidth += cw + 1
	}
	rule := strings.Repeat("━", ruleWidth)

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-4s ", "#")
	for i, col := range columns {
		fmt.Fprintf(w, "%-*s ", widths[i], truncate(col, widths[i]))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)

	for r, row := range res.Rows {
		fmt.Fprintf(w, "%-4d ", offset+r+1)
		for i, col := range columns {
			fmt.Fprintf(w, "%-*s ", widths[i], truncate(row[col].Format(), widths[i]))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, rule)
}

// columnWidths sizes each column to its widest cell, capped.
func columnWidths(res table.Result, columns []string) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
		for _, row := range res.Rows {
			if n := len(row[col].Format()); n > widths[i] {
				widths[i] = n
			}
		}
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}
	return widths
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
