package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"mocha/common"
	"mocha/config"
	"mocha/logging"

	"github.com/ComedicChimera/olive"
	"github.com/pterm/pterm"
)

// Execute runs the main `mocha` application
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("mocha", "mocha is the semantic analyzer for Mocha projects", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the analyzer log level", false, logging.LogLevelNames)
	logLvlArg.SetDefaultValue("verbose")

	initCmd := cli.AddSubcommand("init", "create a default configuration file", true)
	initCmd.AddPrimaryArg("project-path", "the path to the project directory", false)

	configCmd := cli.AddSubcommand("config", "display the effective configuration", true)
	configCmd.AddPrimaryArg("project-path", "the path to the project directory", false)

	cli.AddSubcommand("kinds", "list the semantic error kinds", false)
	cli.AddSubcommand("version", "print the mocha version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		return
	}

	logging.Initialize(result.Arguments["loglevel"].(string))

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "init":
		execInitCommand(subResult)
	case "config":
		execConfigCommand(subResult)
	case "kinds":
		execKindsCommand()
	case "version":
		logging.PrintInfoMessage("Mocha Version", common.MochaVersion)
	}
}

// execInitCommand executes the init subcommand and handles all errors
func execInitCommand(result *olive.ArgParseResult) {
	dir, ok := projectPath(result)
	if !ok {
		return
	}

	if err := config.Init(dir); err != nil {
		logging.PrintErrorMessage("Config Init Error", err)
		return
	}

	logging.LogInfo("Config", "created "+filepath.Join(dir, common.ConfigFileName))
}

// execConfigCommand loads the configuration of a project and displays the
// value of every setting
func execConfigCommand(result *olive.ArgParseResult) {
	dir, ok := projectPath(result)
	if !ok {
		return
	}

	cfg, err := config.Load(dir)
	if err != nil {
		logging.LogConfigError("Config", err.Error())
		return
	}

	a := cfg.Analysis
	renderTable(pterm.TableData{
		{"Key", "Value"},
		{"strict-overloads", strconv.FormatBool(a.StrictOverloads)},
		{"warn-hidden-overloads", strconv.FormatBool(a.WarnHiddenOverloads)},
		{"max-errors", strconv.Itoa(a.MaxErrors)},
		{"log-level", a.LogLevel},
		{"builtins", strconv.FormatBool(a.Builtins)},
		{"version", a.Version},
	})
}

// execKindsCommand lists every error kind the analyzer can report
func execKindsCommand() {
	data := pterm.TableData{{"Kind", "Description"}}
	for _, kind := range logging.AllKinds() {
		data = append(data, []string{kind.String(), kind.Description()})
	}

	renderTable(data)
}

// -----------------------------------------------------------------------------

// projectPath returns the absolute project directory named by the primary
// argument, defaulting to the working directory.
func projectPath(result *olive.ArgParseResult) (string, bool) {
	relPath, _ := result.PrimaryArg()
	if relPath == "" {
		relPath = "."
	}

	dir, err := filepath.Abs(relPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return "", false
	}

	if finfo, err := os.Stat(dir); err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return "", false
	} else if !finfo.IsDir() {
		logging.PrintErrorMessage("Path Error", fmt.Errorf("`%s` is not a directory", dir))
		return "", false
	}

	return dir, true
}

func renderTable(data pterm.TableData) {
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		logging.PrintErrorMessage("Display Error", err)
	}
}
