// Package cliutil holds the small pieces of CLI decoration shared across
// commands: colored status lines and the startup banner.
package cliutil

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	errorColor   = color.New(color.FgHiRed)
	successColor = color.New(color.FgHiGreen)
	infoColor    = color.New(color.FgHiBlue)
	warnColor    = color.New(color.FgHiYellow)
	searchColor  = color.New(color.FgHiMagenta)
)

// PrintError prints a red "[ERROR]"-tagged status line to standard
// output.
func PrintError(text string) {
	errorColor.Println("[ERROR] " + text)
}

// PrintSuccess prints a green "[OK]"-tagged status line.
func PrintSuccess(text string) {
	successColor.Println("[OK] " + text)
}

// PrintInfo prints a blue "[INFO]"-tagged status line.
func PrintInfo(text string) {
	infoColor.Println("[INFO] " + text)
}

// PrintWarning prints a yellow "[WARN]"-tagged status line.
func PrintWarning(text string) {
	warnColor.Println("[WARN] " + text)
}

// PrintSearch prints a magenta "[SEARCH]"-tagged status line, used while
// locators are scanning the system.
func PrintSearch(text string) {
	searchColor.Println("[SEARCH] " + text)
}

// SprintSearch renders the "[SEARCH]" prefix without printing it,
// for composing into a single line with other segments.
func SprintSearch(text string) string {
	return searchColor.Sprint(fmt.Sprintf("[SEARCH] %s", text))
}
