package sdg

import (
	"context"
	"net/http"
	"net/url"

	"github.com/justin4957/UNStatsExplorer/table"
)

var (
	goalColumns      = []string{"GoalCode", "Title", "Description"}
	targetColumns    = []string{"TargetCode", "GoalCode", "Title", "Description"}
	indicatorColumns = []string{"IndicatorCode", "TargetCode", "Description", "Tier"}
	seriesColumns    = []string{"SeriesCode", "IndicatorCode", "Description"}
	geoAreaColumns   = []string{"GeoAreaCode", "GeoAreaName"}
)

// Goals returns the goal list, served from the cache unless forceRefresh
// is set or the collection has not been fetched yet.
func (c *Client) Goals(ctx context.Context, forceRefresh bool) (table.Result, error) {
	return c.cached(ctx, "goals", "", forceRefresh, func(ctx context.Context) (table.Result, error) {
		items, err := c.fetchAll(ctx, http.MethodGet, "/v1/sdg/Goal/List", nil, nil)
		if err != nil {
			return table.Result{}, err
		}
		return toResult[goalRecord](items, goalColumns)
	})
}

// Targets returns targets, optionally narrowed to a single goal code.
func (c *Client) Targets(ctx context.Context, goal string, forceRefresh bool) (table.Result, error) {
	return c.cached(ctx, "targets", goal, forceRefresh, func(ctx context.Context) (table.Result, error) {
		params := url.Values{}
		if goal != "" {
			params.Set("goal", goal)
		}
		items, err := c.fetchAll(ctx, http.MethodGet, "/v1/sdg/Target/List", params, nil)
		if err != nil {
			return table.Result{}, err
		}
		return toResult[targetRecord](items, targetColumns)
	})
}

// Indicators returns indicators, optionally narrowed to a single goal code.
func (c *Client) Indicators(ctx context.Context, goal string, forceRefresh bool) (table.Result, error) {
	return c.cached(ctx, "indicators", goal, forceRefresh, func(ctx context.Context) (table.Result, error) {
		params := url.Values{}
		if goal != "" {
			params.Set("goal", goal)
		}
		items, err := c.fetchAll(ctx, http.MethodGet, "/v1/sdg/Indicator/List", params, nil)
		if err != nil {
			return table.Result{}, err
		}
		return toResult[indicatorRecord](items, indicatorColumns)
	})
}

// Series returns the full series list.
func (c *Client) Series(ctx context.Context, forceRefresh bool) (table.Result, error) {
	return c.cached(ctx, "series", "", forceRefresh, func(ctx context.Context) (table.Result, error) {
		items, err := c.fetchAll(ctx, http.MethodGet, "/v1/sdg/Series/List", nil, nil)
		if err != nil {
			return table.Result{}, err
		}
		return toResult[seriesRecord](items, seriesColumns)
	})
}

// GeoAreas returns the geographic area list.
func (c *Client) GeoAreas(ctx context.Context, forceRefresh bool) (table.Result, error) {
	return c.cached(ctx, "geoareas", "", forceRefresh, func(ctx context.Context) (table.Result, error) {
		items, err := c.fetchAll(ctx, http.MethodGet, "/v1/sdg/GeoArea/List", nil, nil)
		if err != nil {
			return table.Result{}, err
		}
		return toResult[geoAreaRecord](items, geoAreaColumns)
	})
}
