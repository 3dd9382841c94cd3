// Package menu drives the interactive explorer: a numbered main menu over
// goal browsing, indicator and series queries, and trend comparison.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/justin4957/UNStatsExplorer/display"
	"github.com/justin4957/UNStatsExplorer/export"
	"github.com/justin4957/UNStatsExplorer/filter"
	"github.com/justin4957/UNStatsExplorer/prompt"
	"github.com/justin4957/UNStatsExplorer/sdg"
	"github.com/justin4957/UNStatsExplorer/table"
)

// Client is the slice of the SDG client the menu needs.
type Client interface {
	Goals(ctx context.Context, forceRefresh bool) (table.Result, error)
	Targets(ctx context.Context, goal string, forceRefresh bool) (table.Result, error)
	Indicators(ctx context.Context, goal string, forceRefresh bool) (table.Result, error)
	Series(ctx context.Context, forceRefresh bool) (table.Result, error)
	GeoAreas(ctx context.Context, forceRefresh bool) (table.Result, error)
	Data(ctx context.Context, query sdg.DataQuery) (table.Result, error)
	CompareSeries(ctx context.Context, seriesCodes, geoAreaCodes []string, timePeriods []int) (table.Result, error)
}

// filterProgramCache bounds the compiled filter programs kept per session.
const filterProgramCache = 32

// Controller owns one interactive session over a console.
type Controller struct {
	client   Client
	prompter *prompt.Prompter
	pager    *display.Pager
	filters  *filter.Compiler
	exporter func(path string, res table.Result) error
	workbook func(path string, sheets map[string]table.Result) error
	logger   zerolog.Logger
	out      io.Writer
	pageSize int
}

// Option configures a Controller.
type Option func(*Controller)

// WithExporter replaces the file exporter.
func WithExporter(exporter func(path string, res table.Result) error) Option {
	return func(c *Controller) {
		if exporter != nil {
			c.exporter = exporter
		}
	}
}

// WithWorkbookExporter replaces the multi-sheet workbook writer.
func WithWorkbookExporter(workbook func(path string, sheets map[string]table.Result) error) Option {
	return func(c *Controller) {
		if workbook != nil {
			c.workbook = workbook
		}
	}
}

// WithPageSize overrides the rows shown per page.
func WithPageSize(pageSize int) Option {
	return func(c *Controller) {
		if pageSize > 0 {
			c.pageSize = pageSize
		}
	}
}

// New creates a controller over the given streams. The prompter and pager
// share one line reader, so prompt replies and pager commands never steal
// each other's input.
func New(client Client, in io.Reader, out io.Writer, logger zerolog.Logger, opts ...Option) *Controller {
	reader := prompt.NewReader(in)

	c := &Controller{
		client:   client,
		prompter: prompt.New(reader, out, logger),
		pager:    display.NewPager(reader, out),
		filters:  filter.NewCompiler(filter.WithCache(filterProgramCache)),
		exporter: export.WriteFile,
		workbook: export.WriteWorkbook,
		logger:   logger,
		out:      out,
		pageSize: display.DefaultPageSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Run loops the main menu until the user quits or input ends. Failed
// operations are reported and the menu continues; only I/O breakage ends
// the session with an error.
func (c *Controller) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "UN SDG Data Explorer")

	for {
		c.printMenu()

		choice, err := c.prompter.Ask("Choice")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		var workErr error
		switch strings.ToLower(choice) {
		case "1":
			workErr = c.browseGoals(ctx)
		case "2":
			workErr = c.indicatorData(ctx)
		case "3":
			workErr = c.seriesData(ctx)
		case "4":
			workErr = c.seriesTrend(ctx)
		case "5", "q", "quit":
			fmt.Fprintln(c.out, "Bye.")
			return nil
		case "":
			continue
		default:
			fmt.Fprintf(c.out, "Unknown choice %q.\n", choice)
			continue
		}

		if workErr != nil {
			if errors.Is(workErr, io.EOF) {
				return nil
			}
			c.logger.Error().Err(workErr).Msg("Operation failed")
			fmt.Fprintf(c.out, "Error: %v\n", workErr)
		}
	}
}

func (c *Controller) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, strings.Repeat("━", 40))
	fmt.Fprintln(c.out, "1. Browse goals")
	fmt.Fprintln(c.out, "2. Indicator data")
	fmt.Fprintln(c.out, "3. Series data")
	fmt.Fprintln(c.out, "4. Series trend")
	fmt.Fprintln(c.out, "5. Quit")
	fmt.Fprintln(c.out, strings.Repeat("━", 40))
}

// present pages a result and handles an export request from the pager.
func (c *Controller) present(res table.Result) error {
	action, err := c.pager.Show(res, c.pageSize)
	if err != nil {
		return err
	}
	if action == display.ActionExport {
		return c.promptExport(res)
	}
	return nil
}

// maybeFilter offers an optional row filter over a fetched result. An empty
// reply keeps every row; a bad expression re-prompts. Compiled programs are
// cached on the controller, so a repeated expression in the same session
// skips compilation.
func (c *Controller) maybeFilter(res table.Result) (table.Result, error) {
	for {
		input, err := c.prompter.Ask("Filter expression (e.g. Value > 10, Enter for none)")
		if err != nil {
			return table.Result{}, err
		}
		if input == "" {
			return res, nil
		}

		rf, err := c.filters.Compile(input)
		if err != nil {
			fmt.Fprintf(c.out, "Invalid filter: %v. Try again.\n", err)
			continue
		}
		filtered, err := rf.Apply(res)
		if err != nil {
			fmt.Fprintf(c.out, "Filter failed: %v. Try again.\n", err)
			continue
		}

		fmt.Fprintf(c.out, "Filter kept %d of %d rows.\n", filtered.Len(), res.Len())
		return filtered, nil
	}
}

// promptExport asks for a destination until a write succeeds or the user
// cancels with an empty line.
func (c *Controller) promptExport(res table.Result) error {
	for {
		path, err := c.prompter.Ask("Output path (.csv/.json/.arrow/.xlsx, Enter to cancel)")
		if err != nil {
			return err
		}
		if path == "" {
			return nil
		}

		if err := c.exporter(path, res); err != nil {
			fmt.Fprintf(c.out, "Export failed: %v\n", err)
			continue
		}

		c.logger.Info().Str("path", path).Int("rows", res.Len()).Msg("Exported result")
		fmt.Fprintf(c.out, "Wrote %s (%d rows)\n", path, res.Len())
		return nil
	}
}

// promptWorkbook asks for a workbook destination until a write succeeds or
// the user skips with an empty line.
func (c *Controller) promptWorkbook(sheets map[string]table.Result) error {
	for {
		path, err := c.prompter.Ask("Workbook path for targets and indicators (.xlsx, Enter to skip)")
		if err != nil {
			return err
		}
		if path == "" {
			return nil
		}

		if err := c.workbook(path, sheets); err != nil {
			fmt.Fprintf(c.out, "Export failed: %v\n", err)
			continue
		}

		c.logger.Info().Str("path", path).Int("sheets", len(sheets)).Msg("Exported workbook")
		fmt.Fprintf(c.out, "Wrote %s (%d sheets)\n", path, len(sheets))
		return nil
	}
}
