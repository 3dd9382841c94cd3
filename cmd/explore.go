package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/justin4957/UNStatsExplorer/menu"
)

// exploreCmd represents the explore command
var exploreCmd = &cobra.Command{
	Use:     "explore",
	Short:   "Browse goals, indicators and data interactively",
	Long:    `Start an interactive session with numbered workflows for browsing goals, pulling indicator or series data, and charting a series over time.`,
	PreRunE: initializeApp,
	RunE:    runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("explore needs an interactive terminal; use the list and data commands in scripts")
	}

	ctrl := menu.New(client, os.Stdin, os.Stdout, logger, menu.WithPageSize(cfg.Display.PageSize))
	return ctrl.Run(context.Background())
}
