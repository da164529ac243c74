package util

import (
	"os"

	"github.com/fatih/color"
)

// IsTTY reports whether stdout is attached to a terminal. Piped or
// redirected output gets plain text and no progress UI.
func IsTTY() bool {
	info, err := os.Stdout.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// InitColor disables colored output when the --no-color flag is set, the
// NO_COLOR convention is in effect, or stdout is not a terminal.
func InitColor(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		noColor = true
	}
	if noColor || !IsTTY() {
		color.NoColor = true
	}
}
