package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// goalsCmd represents the goals command
var goalsCmd = &cobra.Command{
	Use:     "goals",
	Short:   "List the Sustainable Development Goals",
	PreRunE: initializeApp,
	RunE:    runGoals,
}

// targetsCmd represents the targets command
var targetsCmd = &cobra.Command{
	Use:     "targets",
	Short:   "List targets, optionally restricted to one goal",
	PreRunE: initializeApp,
	RunE:    runTargets,
}

// indicatorsCmd represents the indicators command
var indicatorsCmd = &cobra.Command{
	Use:     "indicators",
	Short:   "List indicators, optionally restricted to one goal",
	PreRunE: initializeApp,
	RunE:    runIndicators,
}

// seriesCmd represents the series command
var seriesCmd = &cobra.Command{
	Use:     "series",
	Short:   "List data series",
	PreRunE: initializeApp,
	RunE:    runSeries,
}

// geoareasCmd represents the geoareas command
var geoareasCmd = &cobra.Command{
	Use:     "geoareas",
	Short:   "List geographic areas and their M49 codes",
	PreRunE: initializeApp,
	RunE:    runGeoAreas,
}

func init() {
	listCommands := []*cobra.Command{goalsCmd, targetsCmd, indicatorsCmd, seriesCmd, geoareasCmd}
	for _, c := range listCommands {
		c.Flags().BoolVar(&forceRefresh, "force-refresh", false, "bypass the metadata cache")
		c.Flags().StringSliceVarP(&outputPaths, "output", "o", nil, "write the result to file(s) instead of displaying it")
		rootCmd.AddCommand(c)
	}

	targetsCmd.Flags().StringVar(&goalFilter, "goal", "", "only list targets belonging to this goal code")
	indicatorsCmd.Flags().StringVar(&goalFilter, "goal", "", "only list indicators belonging to this goal code")
}

func runGoals(cmd *cobra.Command, args []string) error {
	res, err := client.Goals(context.Background(), forceRefresh)
	if err != nil {
		return err
	}
	return showResult(res)
}

func runTargets(cmd *cobra.Command, args []string) error {
	res, err := client.Targets(context.Background(), goalFilter, forceRefresh)
	if err != nil {
		return err
	}
	return showResult(res)
}

func runIndicators(cmd *cobra.Command, args []string) error {
	res, err := client.Indicators(context.Background(), goalFilter, forceRefresh)
	if err != nil {
		return err
	}
	return showResult(res)
}

func runSeries(cmd *cobra.Command, args []string) error {
	res, err := client.Series(context.Background(), forceRefresh)
	if err != nil {
		return err
	}
	return showResult(res)
}

func runGeoAreas(cmd *cobra.Command, args []string) error {
	res, err := client.GeoAreas(context.Background(), forceRefresh)
	if err != nil {
		return err
	}
	return showResult(res)
}
