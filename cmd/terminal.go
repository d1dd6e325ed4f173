package cmd

import (
	"os"

	"github.com/fatih/color"
	isatty "github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// ColorMode specifies when colorized output should be used.
type ColorMode string

const (
	// ColorModeAuto enables color only when standard error is a terminal.
	ColorModeAuto ColorMode = "auto"
	// ColorModeAlways enables color unconditionally.
	ColorModeAlways ColorMode = "always"
	// ColorModeNever disables color unconditionally.
	ColorModeNever ColorMode = "never"
)

// isTerminal returns whether or not the file is attached to a terminal,
// including Cygwin/MSYS2 pseudo-terminals.
func isTerminal(file *os.File) bool {
	descriptor := file.Fd()
	return isatty.IsTerminal(descriptor) || isatty.IsCygwinTerminal(descriptor)
}

// ConfigureColor configures colorized output according to the specified mode.
// Colorized output is only ever used for diagnostic messages on standard
// error, so that's the stream considered in auto mode.
func ConfigureColor(mode ColorMode) error {
	switch mode {
	case ColorModeAuto, "":
		color.NoColor = !isTerminal(os.Stderr)
	case ColorModeAlways:
		color.NoColor = false
	case ColorModeNever:
		color.NoColor = true
	default:
		return errors.Errorf("invalid color mode: %s", mode)
	}
	return nil
}
