package menu

import (
	"context"
	"fmt"

	"github.com/justin4957/UNStatsExplorer/fuzzy"
	"github.com/justin4957/UNStatsExplorer/prompt"
	"github.com/justin4957/UNStatsExplorer/sdg"
	"github.com/justin4957/UNStatsExplorer/table"
)

// browseGoals lists the goals and optionally drills into one goal's
// targets and indicators.
func (c *Controller) browseGoals(ctx context.Context) error {
	goals, err := c.client.Goals(ctx, false)
	if err != nil {
		return err
	}
	if err := c.present(goals); err != nil {
		return err
	}

	code, ok, err := c.prompter.ResolveOne(
		"Goal code to drill into (Enter to skip)",
		candidatesFrom(goals, "GoalCode", "Title"),
		prompt.Options{AllowEmpty: true},
	)
	if err != nil || !ok {
		return err
	}

	targets, err := c.client.Targets(ctx, code, false)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "\nTargets for goal %s:\n", code)
	if err := c.present(targets); err != nil {
		return err
	}

	indicators, err := c.client.Indicators(ctx, code, false)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "\nIndicators for goal %s:\n", code)
	if err := c.present(indicators); err != nil {
		return err
	}

	return c.promptWorkbook(map[string]table.Result{
		"targets":    targets,
		"indicators": indicators,
	})
}

// indicatorData resolves an indicator code and fetches its observations,
// optionally narrowed by areas and years.
func (c *Controller) indicatorData(ctx context.Context) error {
	indicators, err := c.client.Indicators(ctx, "", false)
	if err != nil {
		return err
	}

	code, ok, err := c.prompter.ResolveOne(
		"Indicator code (Enter to cancel)",
		candidatesFrom(indicators, "IndicatorCode", "Description"),
		prompt.Options{AllowEmpty: true},
	)
	if err != nil || !ok {
		return err
	}

	areas, err := c.resolveAreas(ctx, false)
	if err != nil {
		return err
	}
	years, err := c.promptYears()
	if err != nil {
		return err
	}

	res, err := c.client.Data(ctx, sdg.DataQuery{
		IndicatorCode: code,
		GeoAreaCodes:  areas,
		TimePeriods:   years,
	})
	if err != nil {
		return err
	}
	if res.Empty() {
		fmt.Fprintln(c.out, "No data for this selection.")
		return nil
	}
	res, err = c.maybeFilter(res)
	if err != nil {
		return err
	}
	return c.present(res)
}

// seriesData is the indicator workflow shaped around a series code.
func (c *Controller) seriesData(ctx context.Context) error {
	series, err := c.client.Series(ctx, false)
	if err != nil {
		return err
	}

	code, ok, err := c.prompter.ResolveOne(
		"Series code (Enter to cancel)",
		candidatesFrom(series, "SeriesCode", "Description"),
		prompt.Options{AllowEmpty: true},
	)
	if err != nil || !ok {
		return err
	}

	areas, err := c.resolveAreas(ctx, false)
	if err != nil {
		return err
	}
	years, err := c.promptYears()
	if err != nil {
		return err
	}

	res, err := c.client.Data(ctx, sdg.DataQuery{
		SeriesCode:   code,
		GeoAreaCodes: areas,
		TimePeriods:  years,
	})
	if err != nil {
		return err
	}
	if res.Empty() {
		fmt.Fprintln(c.out, "No data for this selection.")
		return nil
	}
	res, err = c.maybeFilter(res)
	if err != nil {
		return err
	}
	return c.present(res)
}

// seriesTrend fetches a series over its full time range for one or more
// areas, sorted by time period. Several areas go through the comparison
// endpoint in one request.
func (c *Controller) seriesTrend(ctx context.Context) error {
	series, err := c.client.Series(ctx, false)
	if err != nil {
		return err
	}

	code, ok, err := c.prompter.ResolveOne(
		"Series code (Enter to cancel)",
		candidatesFrom(series, "SeriesCode", "Description"),
		prompt.Options{AllowEmpty: true},
	)
	if err != nil || !ok {
		return err
	}

	areas, err := c.resolveAreas(ctx, true)
	if err != nil {
		return err
	}
	if len(areas) == 0 {
		fmt.Fprintln(c.out, "A trend needs at least one geographic area.")
		return nil
	}

	var res table.Result
	if len(areas) > 1 {
		res, err = c.client.CompareSeries(ctx, []string{code}, areas, nil)
	} else {
		res, err = c.client.Data(ctx, sdg.DataQuery{SeriesCode: code, GeoAreaCodes: areas})
	}
	if err != nil {
		return err
	}
	if res.Empty() {
		fmt.Fprintln(c.out, "No data for this selection.")
		return nil
	}
	res, err = c.maybeFilter(res)
	if err != nil {
		return err
	}

	res.SortBy("TimePeriod")
	return c.present(res)
}

// resolveAreas asks for comma-separated area codes. With required=false an
// empty reply means no area restriction.
func (c *Controller) resolveAreas(ctx context.Context, required bool) ([]string, error) {
	label := "Geo areas (comma-separated, Enter for all)"
	if required {
		label = "Geo areas (comma-separated)"
	}

	input, err := c.prompter.Ask(label)
	if err != nil {
		return nil, err
	}
	if input == "" {
		return nil, nil
	}

	geoAreas, err := c.client.GeoAreas(ctx, false)
	if err != nil {
		return nil, err
	}
	return c.prompter.ResolveMany(input, candidatesFrom(geoAreas, "GeoAreaCode", "GeoAreaName"), prompt.Options{}), nil
}

// promptYears asks for years until the input parses; garbage re-prompts
// instead of failing the workflow.
func (c *Controller) promptYears() ([]int, error) {
	for {
		input, err := c.prompter.Ask("Years (e.g. 2015 or 2010-2015, Enter for all)")
		if err != nil {
			return nil, err
		}
		years, perr := prompt.ParseYears(input)
		if perr != nil {
			fmt.Fprintf(c.out, "%v. Try again.\n", perr)
			continue
		}
		return years, nil
	}
}

func candidatesFrom(res table.Result, codeCol, descCol string) []fuzzy.Candidate {
	out := make([]fuzzy.Candidate, 0, res.Len())
	for _, row := range res.Rows {
		out = append(out, fuzzy.Candidate{
			Code:        row[codeCol].Format(),
			Description: row[descCol].Format(),
		})
	}
	return out
}
