// Package ucum is the public API for embedding the unit engine,
// generalised from github.com/sambeau/basil's pkg/parsley/parsley
// package: a small façade over the lower-level packages (catalog,
// parser, engine) plus the Logger types an embedder wires up for
// verbose/diagnostic output.
package ucum

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Logger receives diagnostic output from a System: catalog reloads,
// parser advisories an embedder wants surfaced, and anything a CLI's
// verbose mode wants to print.
type Logger interface {
	Log(values ...any)
	LogLine(values ...any)
}

type stdoutLogger struct{}

func (stdoutLogger) Log(values ...any)     { fmt.Print(formatLogValues(values...)) }
func (stdoutLogger) LogLine(values ...any) { fmt.Println(formatLogValues(values...)) }

// StdoutLogger returns a logger that writes to stdout.
func StdoutLogger() Logger { return stdoutLogger{} }

type nullLogger struct{}

func (nullLogger) Log(values ...any)     {}
func (nullLogger) LogLine(values ...any) {}

// NullLogger returns a logger that discards all output.
func NullLogger() Logger { return nullLogger{} }

type writerLogger struct{ w io.Writer }

func (l writerLogger) Log(values ...any)     { fmt.Fprint(l.w, formatLogValues(values...)) }
func (l writerLogger) LogLine(values ...any) { fmt.Fprintln(l.w, formatLogValues(values...)) }

// WriterLogger returns a logger that writes to w.
func WriterLogger(w io.Writer) Logger { return writerLogger{w: w} }

// BufferedLogger captures log output for later retrieval, e.g. in
// tests that want to assert on what a hot-reload cycle logged.
type BufferedLogger struct {
	mu    sync.Mutex
	lines []string
}

// NewBufferedLogger creates an empty BufferedLogger.
func NewBufferedLogger() *BufferedLogger {
	return &BufferedLogger{}
}

func (l *BufferedLogger) Log(values ...any) { l.LogLine(values...) }

func (l *BufferedLogger) LogLine(values ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, formatLogValues(values...))
}

// Lines returns a copy of every captured line.
func (l *BufferedLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

func formatLogValues(values ...any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
