// Package filter compiles boolean expressions over result rows using the
// expr language. Column names are identifiers (spaces become underscores),
// missing cells evaluate as nil, and a handful of case-insensitive string
// helpers are available.
package filter

import (
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/justin4957/UNStatsExplorer/table"
)

// RowFilter is a compiled boolean expression over rows.
type RowFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithCache enables program caching with the specified size.
func WithCache(size int) Option {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// Compiler compiles row filter expressions. With a cache enabled, repeated
// expressions reuse the compiled program.
type Compiler struct {
	helpers map[string]any
	cache   *lruCache
}

// NewCompiler creates a filter compiler.
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		helpers: helperFunctions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles an expression into an executable row filter.
func (c *Compiler) Compile(expression string) (*RowFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Column identifiers are not known statically, so undefined variables
	// stay legal; they evaluate as nil at runtime.
	program, err := expr.Compile(expression,
		expr.Env(c.helpers),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &RowFilter{
		expression: expression,
		program:    program,
		helpers:    c.helpers,
	}

	if c.cache != nil {
		c.cache.Put(expression, f)
	}

	return f, nil
}

// Size returns the number of cached programs.
func (c *Compiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Compile compiles an expression with a fresh default compiler.
func Compile(expression string) (*RowFilter, error) {
	return NewCompiler().Compile(expression)
}

// Expression returns the original expression text.
func (f *RowFilter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single row.
func (f *RowFilter) Match(row table.Row) (bool, error) {
	result, err := expr.Run(f.program, f.environment(row))
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Err: err}
	}
	// AsBool at compile time guarantees the assertion.
	return result.(bool), nil
}

// Apply returns a result holding only the rows the filter matches. Column
// order is preserved; a row that fails evaluation aborts the whole pass.
func (f *RowFilter) Apply(res table.Result) (table.Result, error) {
	filtered := table.Result{Columns: res.Columns}
	for _, row := range res.Rows {
		ok, err := f.Match(row)
		if err != nil {
			return table.Result{}, err
		}
		if ok {
			filtered.Rows = append(filtered.Rows, row)
		}
	}
	return filtered, nil
}

// environment exposes one row's cells as identifiers alongside the helpers.
func (f *RowFilter) environment(row table.Row) map[string]any {
	env := make(map[string]any, len(row)+len(f.helpers))
	maps.Copy(env, f.helpers)
	for column, value := range row {
		env[identifier(column)] = value.Any()
	}
	return env
}

func identifier(column string) string {
	return strings.ReplaceAll(column, " ", "_")
}

// helperFunctions are the string helpers available in every expression.
// Comparisons are case-insensitive.
func helperFunctions() map[string]any {
	return map[string]any{
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}
