package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// updateRepo is the GitHub repository releases are published to.
const updateRepo = "justin4957/UNStatsExplorer"

var checkOnly bool

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update unstats to the latest release",
	Long:  `Check GitHub for a newer release and replace the running binary with it.`,
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only check whether a newer version exists")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	current, err := semver.ParseTolerant(version)
	if err != nil {
		return fmt.Errorf("cannot parse version %q, this looks like a source build: %w", version, err)
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(updateRepo))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", updateRepo)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Printf("✓ Already on the latest version: %s\n", version)
		return nil
	}

	fmt.Printf("New version available: %s (current: %s)\n", latest.Version(), current)
	if checkOnly {
		fmt.Println("Run 'unstats update' to install it.")
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}

	fmt.Printf("→ Downloading %s... ", latest.AssetName)
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		fmt.Println("✗ Failed")
		return fmt.Errorf("failed to update binary: %w", err)
	}
	fmt.Println("✓ Done")

	fmt.Printf("✓ Updated to %s\n", latest.Version())
	return nil
}
