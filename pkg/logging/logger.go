package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. Output is filtered by level
// and written line-by-line to the underlying writer. It is safe for concurrent
// usage.
type Logger struct {
	// level is the maximum level that the logger will output.
	level Level
	// prefix is any prefix specified for the logger.
	prefix string
	// writerLock serializes access to writer. It is shared between a logger
	// and all of its subloggers.
	writerLock *sync.Mutex
	// writer is the underlying output stream.
	writer io.Writer
}

// NewLogger creates a new root logger that writes entries at or below the
// specified level to the specified writer.
func NewLogger(level Level, writer io.Writer) *Logger {
	return &Logger{
		level:      level,
		writerLock: &sync.Mutex{},
		writer:     writer,
	}
}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		level:      l.level,
		prefix:     prefix,
		writerLock: l.writerLock,
		writer:     l.writer,
	}
}

// Level returns the logger's level. A nil logger reports LevelDisabled.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelDisabled
	}
	return l.level
}

// output is the internal logging method.
func (l *Logger) output(level Level, line string) {
	// Bail if the level is filtered.
	if l == nil || level > l.level {
		return
	}

	// Add a prefix if necessary.
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}

	// Write the line. Write failures on a log stream aren't actionable.
	l.writerLock.Lock()
	fmt.Fprintln(l.writer, line)
	l.writerLock.Unlock()
}

// Error logs error information with an error prefix and red color.
func (l *Logger) Error(err error) {
	l.output(LevelError, color.RedString("Error: %v", err))
}

// Errorf logs error information with semantics equivalent to fmt.Printf, with
// an error prefix and red color.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.output(LevelError, color.RedString("Error: "+format, v...))
}

// Warn logs error information with a warning prefix and yellow color.
func (l *Logger) Warn(err error) {
	l.output(LevelWarn, color.YellowString("Warning: %v", err))
}

// Warnf logs information with semantics equivalent to fmt.Printf, with a
// warning prefix and yellow color.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.output(LevelWarn, color.YellowString("Warning: "+format, v...))
}

// Info logs information with semantics equivalent to fmt.Print.
func (l *Logger) Info(v ...interface{}) {
	l.output(LevelInfo, fmt.Sprint(v...))
}

// Infof logs information with semantics equivalent to fmt.Printf.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.output(LevelInfo, fmt.Sprintf(format, v...))
}

// Debug logs information with semantics equivalent to fmt.Print, but only if
// the debug level is enabled.
func (l *Logger) Debug(v ...interface{}) {
	l.output(LevelDebug, fmt.Sprint(v...))
}

// Debugf logs information with semantics equivalent to fmt.Printf, but only
// if the debug level is enabled.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.output(LevelDebug, fmt.Sprintf(format, v...))
}

// Trace logs information with semantics equivalent to fmt.Print, but only if
// the trace level is enabled.
func (l *Logger) Trace(v ...interface{}) {
	l.output(LevelTrace, fmt.Sprint(v...))
}

// Tracef logs information with semantics equivalent to fmt.Printf, but only
// if the trace level is enabled.
func (l *Logger) Tracef(format string, v ...interface{}) {
	l.output(LevelTrace, fmt.Sprintf(format, v...))
}
