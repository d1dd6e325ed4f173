package logging

import (
	"strings"

	"github.com/pkg/errors"
)

// Level represents a log level. Its value hierarchy is designed to be ordered
// and comparable by value.
type Level uint

const (
	// LevelDisabled indicates that logging is completely disabled.
	LevelDisabled Level = iota
	// LevelError indicates that only fatal errors are logged.
	LevelError
	// LevelWarn indicates that both fatal and non-fatal errors are logged.
	LevelWarn
	// LevelInfo indicates that basic execution information is logged (in
	// addition to all errors).
	LevelInfo
	// LevelDebug indicates that advanced execution information is logged (in
	// addition to basic information and all errors).
	LevelDebug
	// LevelTrace indicates that low-level execution information is logged (in
	// addition to all other execution information and all errors).
	LevelTrace
)

// levelNames are the names of all levels, indexed by level value.
var levelNames = [...]string{
	LevelDisabled: "disabled",
	LevelError:    "error",
	LevelWarn:     "warn",
	LevelInfo:     "info",
	LevelDebug:    "debug",
	LevelTrace:    "trace",
}

// NameToLevel converts a string-based representation of a log level to the
// appropriate Level value. It returns a boolean indicating whether or not the
// conversion was valid. If the name is invalid, LevelDisabled is returned.
func NameToLevel(name string) (Level, bool) {
	for level, candidate := range levelNames {
		if name == candidate {
			return Level(level), true
		}
	}
	return LevelDisabled, false
}

// String provides a human-readable representation of a log level.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// Set implements pflag.Value.Set, allowing a Level to be bound directly to a
// command line flag.
func (l *Level) Set(name string) error {
	level, ok := NameToLevel(name)
	if !ok {
		return errors.Errorf("invalid log level (must be one of %s)", LevelNames())
	}
	*l = level
	return nil
}

// Type implements pflag.Value.Type.
func (l *Level) Type() string {
	return "level"
}

// LevelNames returns a comma-separated list of valid level names, suitable
// for inclusion in help and error messages.
func LevelNames() string {
	return strings.Join(levelNames[:], ", ")
}
