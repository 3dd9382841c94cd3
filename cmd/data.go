package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justin4957/UNStatsExplorer/filter"
	"github.com/justin4957/UNStatsExplorer/prompt"
	"github.com/justin4957/UNStatsExplorer/sdg"
)

var (
	indicatorCode string
	seriesCode    string
	areaCodes     []string
	yearSpec      string
	filterExpr    string
)

// dataCmd represents the data command
var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Download observation data for an indicator or series",
	Long: `Download all observations for exactly one indicator or one series,
optionally restricted to geographic areas and years. The full result is
aggregated across pages before display, so large series can take a while.

Rows can be narrowed with a filter expression over the column names
(spaces become underscores), e.g.:

  unstats data --series SI_POV_DAY1 --filter 'Value > 10 and TimePeriod >= 2015'
  unstats data --indicator 1.1.1 --area 4,8 --filter 'contains(GeoAreaName, "Republic")'`,
	PreRunE: initializeApp,
	RunE:    runData,
}

func init() {
	rootCmd.AddCommand(dataCmd)

	dataCmd.Flags().StringVar(&indicatorCode, "indicator", "", "indicator code, e.g. 1.1.1")
	dataCmd.Flags().StringVar(&seriesCode, "series", "", "series code, e.g. SI_POV_DAY1")
	dataCmd.Flags().StringSliceVarP(&areaCodes, "area", "a", nil, "geographic area codes (M49)")
	dataCmd.Flags().StringVar(&yearSpec, "year", "", "years, e.g. 2015, 2010-2012 or 2000,2005")
	dataCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "row filter expression")
	dataCmd.Flags().StringSliceVarP(&outputPaths, "output", "o", nil, "write the result to file(s) instead of displaying it")
}

func runData(cmd *cobra.Command, args []string) error {
	years, err := prompt.ParseYears(yearSpec)
	if err != nil {
		return err
	}

	query := sdg.DataQuery{
		IndicatorCode: indicatorCode,
		SeriesCode:    seriesCode,
		GeoAreaCodes:  areaCodes,
		TimePeriods:   years,
	}

	res, err := client.Data(context.Background(), query)
	if err != nil {
		return err
	}

	if filterExpr != "" {
		rf, err := filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		res, err = rf.Apply(res)
		if err != nil {
			return err
		}
	}

	return showResult(res)
}
