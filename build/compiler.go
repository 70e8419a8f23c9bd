package build

import (
	"sync"

	"mocha/ast"
	"mocha/config"
	"mocha/logging"
	"mocha/resolve"
	"mocha/sem"
	"mocha/walk"
)

// Compiler is the data structure responsible for maintaining all high-level
// state of a mocha analysis run
type Compiler struct {
	// cfg is the configuration the analysis is run with
	cfg *config.Config
}

// NewCompiler creates a new compiler for a given configuration.  The global
// logger is initialized with the configured log level.
func NewCompiler(cfg *config.Config) *Compiler {
	logging.Initialize(cfg.Analysis.LogLevel)
	return &Compiler{cfg: cfg}
}

// Result is the outcome of analyzing one program.
type Result struct {
	// Errors are ordered by source position.
	Errors   []*logging.CompileMessage
	Warnings []*logging.CompileMessage

	// Global is the root of the program's scope tree.
	Global *sem.Scope

	// Types maps each checked expression to its inferred type.
	Types walk.TypeTable
}

// OK indicates whether analysis found no errors.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

// Unit is a program paired with the source it was parsed from.  Context may
// be nil when the source is not available.
type Unit struct {
	Context *logging.LogContext
	Prog    *ast.Program
}

// Analyze runs the full analysis algorithm on a program and displays its
// errors as the configured log level allows.
func (c *Compiler) Analyze(prog *ast.Program) *Result {
	return c.AnalyzeUnit(Unit{Prog: prog})
}

// AnalyzeUnit is Analyze for a program whose source is known: displayed
// messages carry a selection of the offending code.
func (c *Compiler) AnalyzeUnit(u Unit) *Result {
	logging.LogHeader(unitName(u))

	logging.LogBeginPhase("Resolving")
	table, errs := resolve.Resolve(u.Prog, c.resolveOptions())
	logging.LogEndPhase()

	logging.LogBeginPhase("Checking")
	types, werrs := walk.Check(u.Prog, table, c.walkOptions())
	logging.LogEndPhase()

	res := c.collect(table, types, errs, werrs)
	logging.LogAnalysisResult(u.Context, res.Errors, res.Warnings)
	logging.LogFinished()

	return res
}

// AnalyzeAll analyzes several independent programs.  Each program is analyzed
// concurrently; the results are displayed afterwards in the order of units.
func (c *Compiler) AnalyzeAll(units []Unit) []*Result {
	results := make([]*Result, len(units))

	logging.LogBeginPhase("Analyzing")

	// every analysis owns its table and error lists so nothing needs to be
	// synchronized beyond waiting for the batch
	wg := &sync.WaitGroup{}
	for i, u := range units {
		wg.Add(1)
		go func(i int, u Unit) {
			defer wg.Done()
			results[i] = c.analyze(u.Prog)
		}(i, u)
	}

	wg.Wait()
	logging.LogEndPhase()

	for i, res := range results {
		logging.LogAnalysisResult(units[i].Context, res.Errors, res.Warnings)
	}

	logging.LogFinished()
	return results
}

// analyze runs both passes without displaying anything.
func (c *Compiler) analyze(prog *ast.Program) *Result {
	table, errs := resolve.Resolve(prog, c.resolveOptions())
	types, werrs := walk.Check(prog, table, c.walkOptions())
	return c.collect(table, types, errs, werrs)
}

// collect merges the messages of both passes into a result.
func (c *Compiler) collect(table *resolve.Table, types walk.TypeTable, errs, werrs *logging.ErrorList) *Result {
	errs.Merge(werrs)
	errs.SortByPosition()

	res := &Result{
		Errors:   errs.Errors(),
		Warnings: errs.Warnings(),
		Global:   table.Global,
		Types:    types,
	}

	if max := c.cfg.Analysis.MaxErrors; max > 0 && len(res.Errors) > max {
		res.Errors = res.Errors[:max]
	}

	return res
}

func (c *Compiler) resolveOptions() resolve.Options {
	return resolve.Options{Builtins: c.cfg.Analysis.Builtins}
}

func (c *Compiler) walkOptions() walk.Options {
	return walk.Options{
		StrictOverloads:     c.cfg.Analysis.StrictOverloads,
		WarnHiddenOverloads: c.cfg.Analysis.WarnHiddenOverloads,
	}
}

func unitName(u Unit) string {
	if u.Context != nil && u.Context.FilePath != "" {
		return u.Context.FilePath
	}

	return "program"
}
