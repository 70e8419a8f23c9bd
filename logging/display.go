package logging

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mocha/common"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the user
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------

func (ce *ConfigError) display() {
	PrintErrorMessage(ce.Kind+" Error", errors.New(ce.Message))
}

func (cm *CompileMessage) display() {
	cm.displayBanner()
	fmt.Println(cm.Message)

	if cm.Suggestion != "" {
		InfoColorFG.Print("suggestion: ")
		fmt.Println(cm.Suggestion)
	}

	if cm.Position != nil && cm.Context != nil && cm.Context.Source != "" {
		cm.displayCodeSelection()
	}
}

// displayBanner displays the banner on top of all compilation messages
func (cm *CompileMessage) displayBanner() {
	fmt.Print("\n\n-- ")
	kindStr := cm.Kind.String()
	kindLen := len(kindStr)
	if cm.isError() {
		ErrorStyleBG.Print(kindStr)
	} else {
		WarnStyleBG.Print(kindStr + " (warning)")
		kindLen += 10
	}

	fmt.Print(" ")

	fileName := "<input>"
	if cm.Context != nil && cm.Context.FilePath != "" {
		fileName = filepath.Base(cm.Context.FilePath)
	}

	if cm.Position != nil {
		fileName += fmt.Sprintf(":%d:%d", cm.Position.StartLn, cm.Position.StartCol)
	}

	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 60 {
		bannerLen = 60
	}

	dashCount := bannerLen - len(fileName) - kindLen - 1
	if dashCount < 2 {
		dashCount = 2
	}

	fmt.Print(strings.Repeat("-", dashCount) + " ")
	InfoColorFG.Println(fileName)
}

// displayCodeSelection displays the erroneous code (with line numbers) and
// highlights the appropriate sections
func (cm *CompileMessage) displayCodeSelection() {
	srcLines := strings.Split(cm.Context.Source, "\n")

	startLn, endLn := cm.Position.StartLn, cm.Position.EndLn
	if endLn < startLn {
		endLn = startLn
	}

	if startLn < 1 || startLn > len(srcLines) {
		return
	} else if endLn > len(srcLines) {
		endLn = len(srcLines)
	}

	fmt.Println()

	// capture the lines first so we can determine how much whitespace to trim
	// before printing
	lines := make([]string, endLn-startLn+1)
	for i := range lines {
		lines[i] = strings.ReplaceAll(strings.TrimRight(srcLines[startLn+i-1], "\r"), "\t", "    ")
	}

	minWhitespace := -1
	for _, line := range lines {
		leadingWhitespace := len(line) - len(strings.TrimLeft(line, " "))

		if minWhitespace == -1 || minWhitespace > leadingWhitespace {
			minWhitespace = leadingWhitespace
		}
	}

	// calculate the amount to pad line numbers by and use it to build a padding
	// format string (so we can use it to print out line numbers neatly)
	maxLineNumberWidth := len(strconv.Itoa(endLn)) + 1
	lineNumberFmtStr := "%-" + strconv.Itoa(maxLineNumberWidth) + "v"

	// columns are 1-based
	startCol := cm.Position.StartCol - 1 - minWhitespace
	if startCol < 0 {
		startCol = 0
	}

	endCol := cm.Position.EndCol - 1 - minWhitespace

	for i, line := range lines {
		trimmed := line[minWhitespace:]

		InfoColorFG.Print(fmt.Sprintf(lineNumberFmtStr, i+startLn))
		fmt.Print("|  ")
		fmt.Println(trimmed)

		// print the carrets
		fmt.Print(strings.Repeat(" ", maxLineNumberWidth), "|  ")
		from, to := 0, len(trimmed)
		if i == 0 {
			from = startCol
		}

		if i == len(lines)-1 && endCol > from {
			to = endCol
		}

		if from > len(trimmed) {
			from = len(trimmed)
		}

		if to <= from {
			to = from + 1
		}

		fmt.Print(strings.Repeat(" ", from))
		ErrorColorFG.Println(strings.Repeat("^", to-from))
	}

	fmt.Println()
}

// -----------------------------------------------------------------------------

// displayHeader displays the analyzer information before starting analysis
func displayHeader(target string) {
	fmt.Print("mocha ")
	InfoColorFG.Print("v" + common.MochaVersion)
	fmt.Print(" -- checking: ")
	InfoColorFG.Println(target)
}

// phaseSpinner stores the current phase spinner
var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Resolving")

func padPhase(phase string) string {
	padding := maxPhaseLength - len(phase) + 2
	if padding < 1 {
		padding = 1
	}

	return phase + strings.Repeat(" ", padding)
}

// displayBeginPhase displays the beginning of an analysis phase
func displayBeginPhase(phase string) {
	currentPhase = phase
	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	phaseSpinner.Start(padPhase(phase + "..."))
	phaseStartTime = time.Now()
}

// displayEndPhase displays the end of an analysis phase
func displayEndPhase(success bool) {
	if phaseSpinner != nil {
		if success {
			phaseSpinner.Success(
				padPhase(currentPhase),
				fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()),
			)
		} else {
			phaseSpinner.Fail(padPhase(currentPhase))
		}

		phaseSpinner = nil
	}
}

// displayFinished displays the summary line closing an analysis
func displayFinished(success bool, errorCount, warningCount int) {
	fmt.Print("\n")

	if success {
		SuccessColorFG.Print("No problems found ")
	} else {
		ErrorColorFG.Print("Analysis failed ")
	}

	fmt.Print("(")
	printCount(errorCount, "error", ErrorColorFG)
	fmt.Print(", ")
	printCount(warningCount, "warning", WarnColorFG)
	fmt.Println(")")
}

// printCount prints a count followed by its noun, pluralized as needed.  Zero
// counts are always shown in the success color.
func printCount(n int, noun string, color pterm.Color) {
	if n == 0 {
		SuccessColorFG.Print(0)
	} else {
		color.Print(n)
	}

	if n != 1 {
		noun += "s"
	}

	fmt.Print(" " + noun)
}
