package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/justin4957/UNStatsExplorer/cache"
	"github.com/justin4957/UNStatsExplorer/config"
	"github.com/justin4957/UNStatsExplorer/display"
	"github.com/justin4957/UNStatsExplorer/export"
	"github.com/justin4957/UNStatsExplorer/prompt"
	"github.com/justin4957/UNStatsExplorer/sdg"
	"github.com/justin4957/UNStatsExplorer/table"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *sdg.Client

	// Command flags
	forceRefresh bool
	goalFilter   string
	outputPaths  []string
)

// Build metadata, stamped in by the linker via main.
var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown"
)

// SetVersion records the build metadata injected by main.
func SetVersion(v, c, b string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if b != "" {
		buildTime = b
	}
	rootCmd.Version = version
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "unstats",
	Short: "Explore statistics from the UN SDG Global Database",
	Long: `unstats is a CLI for the United Nations SDG Global Database. It lists
goals, targets, indicators, series and geographic areas, downloads
observation data with optional area/year filters, and exports results
to CSV, JSON, Arrow or Excel files.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads the configuration and builds the API client. It runs
// as PreRunE on every command that talks to the API, so version and update
// keep working with a broken or absent config file.
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	clientCfg := sdg.Config{
		BaseURL:    cfg.API.BaseURL,
		Timeout:    time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		RateLimit:  time.Duration(cfg.API.RateLimitMs) * time.Millisecond,
		MaxRetries: cfg.API.MaxRetries,
		PageSize:   cfg.API.PageSize,
	}

	var opts []sdg.Option

	// Persist metadata across invocations when a cache directory is set.
	if cfg.Cache.Dir != "" {
		store, err := cache.NewFile(cfg.Cache.Dir, time.Duration(cfg.Cache.MaxAgeHours)*time.Hour)
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		opts = append(opts, sdg.WithCache(store))
	}

	if isatty.IsTerminal(os.Stderr.Fd()) {
		opts = append(opts, sdg.WithProgress(showProgress))
	}

	client, err = sdg.NewClient(clientCfg, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// progressShown tracks whether a running fetch count is on the current
// stderr line, so endProgress can terminate it before normal output.
var progressShown bool

func showProgress(fetched int) {
	progressShown = true
	fmt.Fprintf(os.Stderr, "\rFetched %d records...", fetched)
}

func endProgress() {
	if progressShown {
		fmt.Fprintln(os.Stderr)
		progressShown = false
	}
}

// showResult routes a result to the export targets from --output, or to the
// interactive pager when stdout is a terminal, or to a plain dump otherwise.
func showResult(res table.Result) error {
	endProgress()

	if len(outputPaths) > 0 {
		return exportAll(outputPaths, res)
	}

	if res.Empty() {
		fmt.Println("No data to display.")
		return nil
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		display.Render(os.Stdout, res)
		return nil
	}

	in := prompt.NewReader(os.Stdin)
	action, err := display.NewPager(in, os.Stdout).Show(res, cfg.Display.PageSize)
	if err != nil {
		return err
	}
	if action == display.ActionExport {
		return promptExport(in, res)
	}
	return nil
}

func exportAll(paths []string, res table.Result) error {
	if err := export.WriteFiles(paths, res); err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Printf("Wrote %s (%d rows)\n", path, res.Len())
	}
	return nil
}

// promptExport asks for a destination until a write succeeds or the user
// gives up with an empty reply.
func promptExport(in *prompt.Reader, res table.Result) error {
	prompter := prompt.New(in, os.Stdout, logger)
	for {
		path, err := prompter.Ask("Destination file (.csv, .json, .arrow or .xlsx, Enter to cancel)")
		if err != nil || path == "" {
			return nil
		}
		if err := export.WriteFile(path, res); err != nil {
			fmt.Printf("Export failed: %v\n", err)
			continue
		}
		fmt.Printf("Wrote %s (%d rows)\n", path, res.Len())
		return nil
	}
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("unstats %s (commit %s, built %s)\n", version, commit, buildTime)
	},
}
