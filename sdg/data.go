package sdg

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/justin4957/UNStatsExplorer/table"
)

var observationColumns = []string{
	"SeriesCode", "SeriesDescription", "GeoAreaCode", "GeoAreaName",
	"TimePeriod", "Value", "Unit", "Source",
}

// DataQuery selects observations for exactly one series or indicator,
// optionally narrowed by geographic area and time period. Empty slices
// mean "all areas" and "all years".
type DataQuery struct {
	IndicatorCode string
	SeriesCode    string
	GeoAreaCodes  []string
	TimePeriods   []int
}

func (q DataQuery) validate() error {
	switch {
	case q.IndicatorCode == "" && q.SeriesCode == "":
		return fmt.Errorf("%w: an indicator or series code is required", ErrInvalidQuery)
	case q.IndicatorCode != "" && q.SeriesCode != "":
		return fmt.Errorf("%w: indicator and series codes are mutually exclusive", ErrInvalidQuery)
	}
	return nil
}

// Data fetches all observations matching the query. Results are never
// cached; observation sets are too large and too volatile for that.
func (c *Client) Data(ctx context.Context, query DataQuery) (table.Result, error) {
	if err := query.validate(); err != nil {
		return table.Result{}, err
	}

	endpoint := "/v1/sdg/Series/Data"
	params := url.Values{}
	if query.SeriesCode != "" {
		params.Set("seriesCode", query.SeriesCode)
	} else {
		endpoint = "/v1/sdg/Indicator/Data"
		params.Set("indicator", query.IndicatorCode)
	}
	if len(query.GeoAreaCodes) > 0 {
		params.Set("geoAreaCode", strings.Join(query.GeoAreaCodes, ","))
	}
	if len(query.TimePeriods) > 0 {
		params.Set("timePeriod", joinYears(query.TimePeriods))
	}

	items, err := c.fetchAll(ctx, http.MethodGet, endpoint, params, nil)
	if err != nil {
		return table.Result{}, err
	}
	return toResult[observation](items, observationColumns)
}

// CompareSeries fetches observations for several series at once through the
// comparison endpoint, which takes its selection as a POST body.
func (c *Client) CompareSeries(ctx context.Context, seriesCodes, geoAreaCodes []string, timePeriods []int) (table.Result, error) {
	if len(seriesCodes) == 0 {
		return table.Result{}, fmt.Errorf("%w: at least one series code is required", ErrInvalidQuery)
	}

	body := map[string]any{
		"seriesCodes": seriesCodes,
	}
	if len(geoAreaCodes) > 0 {
		body["geoAreaCodes"] = geoAreaCodes
	}
	if len(timePeriods) > 0 {
		periods := make([]string, 0, len(timePeriods))
		for _, year := range timePeriods {
			periods = append(periods, strconv.Itoa(year))
		}
		body["timePeriods"] = periods
	}

	items, err := c.fetchAll(ctx, http.MethodPost, "/v1/sdg/Series/DataRequest", nil, body)
	if err != nil {
		return table.Result{}, err
	}
	return toResult[observation](items, observationColumns)
}

func joinYears(years []int) string {
	parts := make([]string, 0, len(years))
	for _, year := range years {
		parts = append(parts, strconv.Itoa(year))
	}
	return strings.Join(parts, ",")
}
