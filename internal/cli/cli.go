// Package cli holds colored output helpers for the non-interactive
// subcommands. The TUI never prints through these.
package cli

import (
	"fmt"
	"strings"

	"github.com/buger/goterm"
	"github.com/fatih/color"
)

var (
	titleColor     = color.New(color.FgMagenta, color.Bold)
	separatorColor = color.New(color.FgHiBlack)
	sessionColor   = color.New(color.FgCyan)
	mutedColor     = color.New(color.FgHiBlack)
	errorColor     = color.New(color.FgRed, color.Bold)
	successColor   = color.New(color.FgGreen)

	width = goterm.Width()
)

// Separator printed to cli.
func Separator() {
	separatorColor.Println(strings.Repeat("-", width))
}

// Title printed to cli.
func Title(text string, args ...any) {
	title := "      " + fmt.Sprintf(text, args...) + "      "
	leftWidth := (width - len(title)) / 2
	if leftWidth < 0 {
		leftWidth = 0
	}
	rightWidth := width - len(title) - leftWidth
	if rightWidth < 0 {
		rightWidth = 0
	}
	titleColor.Println(strings.Repeat("-", leftWidth) + title + strings.Repeat("-", rightWidth))
}

// Session prints a session line.
func Session(text string, args ...any) {
	sessionColor.Printf(text, args...)
}

// Muted prints secondary information.
func Muted(text string, args ...any) {
	mutedColor.Printf(text, args...)
}

// Success prints a confirmation.
func Success(text string, args ...any) {
	successColor.Printf(text, args...)
}

// Error prints a failure.
func Error(text string, args ...any) {
	errorColor.Printf(text, args...)
}
