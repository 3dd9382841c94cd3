package sdg

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/justin4957/UNStatsExplorer/table"
)

// Wire records for the SDG endpoints. Only the fields surfaced as result
// columns are decoded; the source carries more (URIs, release tags,
// dimension maps) that nothing downstream consumes.

type goalRecord struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r goalRecord) row() table.Row {
	return table.Row{
		"GoalCode":    textCell(r.Code),
		"Title":       textCell(r.Title),
		"Description": textCell(r.Description),
	}
}

type targetRecord struct {
	Code        string `json:"code"`
	Goal        string `json:"goal"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r targetRecord) row() table.Row {
	return table.Row{
		"TargetCode":  textCell(r.Code),
		"GoalCode":    textCell(r.Goal),
		"Title":       textCell(r.Title),
		"Description": textCell(r.Description),
	}
}

// The source lists parent references as arrays even though indicators and
// series belong to a single target in practice.
type indicatorRecord struct {
	Code        string   `json:"code"`
	Target      []string `json:"target"`
	Description string   `json:"description"`
	Tier        string   `json:"tier"`
}

func (r indicatorRecord) row() table.Row {
	return table.Row{
		"IndicatorCode": textCell(r.Code),
		"TargetCode":    textCell(strings.Join(r.Target, ", ")),
		"Description":   textCell(r.Description),
		"Tier":          textCell(r.Tier),
	}
}

type seriesRecord struct {
	Code        string   `json:"code"`
	Indicator   []string `json:"indicator"`
	Description string   `json:"description"`
}

func (r seriesRecord) row() table.Row {
	return table.Row{
		"SeriesCode":    textCell(r.Code),
		"IndicatorCode": textCell(strings.Join(r.Indicator, ", ")),
		"Description":   textCell(r.Description),
	}
}

type geoAreaRecord struct {
	Code string `json:"geoAreaCode"`
	Name string `json:"geoAreaName"`
}

func (r geoAreaRecord) row() table.Row {
	return table.Row{
		"GeoAreaCode": textCell(r.Code),
		"GeoAreaName": textCell(r.Name),
	}
}

type observation struct {
	Series            string            `json:"series"`
	SeriesDescription string            `json:"seriesDescription"`
	GeoAreaCode       string            `json:"geoAreaCode"`
	GeoAreaName       string            `json:"geoAreaName"`
	TimePeriodStart   float64           `json:"timePeriodStart"`
	Value             string            `json:"value"`
	Source            string            `json:"source"`
	Attributes        map[string]string `json:"attributes"`
}

func (o observation) row() table.Row {
	period := table.Missing()
	if o.TimePeriodStart != 0 {
		period = table.Number(o.TimePeriodStart)
	}
	return table.Row{
		"SeriesCode":        textCell(o.Series),
		"SeriesDescription": textCell(o.SeriesDescription),
		"GeoAreaCode":       textCell(o.GeoAreaCode),
		"GeoAreaName":       textCell(o.GeoAreaName),
		"TimePeriod":        period,
		"Value":             table.ParseValue(o.Value),
		"Unit":              textCell(o.Attributes["Units"]),
		"Source":            textCell(o.Source),
	}
}

type rower interface {
	row() table.Row
}

// toResult decodes raw records into a result with the given column order.
func toResult[T rower](items []json.RawMessage, columns []string) (table.Result, error) {
	rows := make([]table.Row, 0, len(items))
	for i, raw := range items {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return table.Result{}, fmt.Errorf("failed to parse record %d: %w", i, err)
		}
		rows = append(rows, rec.row())
	}
	return table.Result{Columns: columns, Rows: rows}, nil
}

// textCell keeps codes and labels as strings so values like goal code "1"
// never turn into numbers; only observation values get numeric parsing.
func textCell(s string) table.Value {
	if s == "" {
		return table.Missing()
	}
	return table.String(s)
}
