// Package report handles all console output for the gomlir tool: tagged
// status messages, phase spinners, and fatal errors.
package report

import (
	"fmt"
	"os"

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

// quiet suppresses informational output, leaving errors and warnings.
var quiet bool

// SetQuiet controls whether informational messages and phase spinners are
// displayed.
func SetQuiet(q bool) {
	quiet = q
}

// PrintErrorMessage prints a standard Go error to the console.
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console.
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the user.
func PrintInfoMessage(tag, msg string) {
	if quiet {
		return
	}

	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// Fatal prints an error message and exits the program.  It also
// automatically formats error messages as necessary.
func Fatal(msg string, args ...interface{}) {
	PrintErrorMessage("Fatal Error", fmt.Errorf(msg, args...))
	os.Exit(1)
}
