// Package logging writes the application log: every record goes to an
// append-mode file, to stdout and to an in-memory buffer shown by the GUI console.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// Level is the severity of a log record.
type Level int

const (
	Debug Level = iota
	Info
	Warning
	Error
)

const timestampLayout = "2006-01-02 15:04:05"

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is safe to share between the render loop and the shutdown handler.
type Logger struct {
	mu     sync.Mutex
	file   *os.File
	out    *termenv.Output
	stderr io.Writer
	now    func() time.Time
	buf    *TextBuffer
}

// Option configures a Logger.
type Option func(*Logger)

// WithStdout mirrors log lines to w instead of os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(l *Logger) { l.out = termenv.NewOutput(w) }
}

// WithStderr reports log-file failures to w instead of os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(l *Logger) { l.stderr = w }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// New opens path in append mode, creating it if absent. If the file cannot be
// opened the failure is reported on stderr and the logger keeps writing to
// stdout and the buffer.
func New(path string, opts ...Option) *Logger {
	l := &Logger{
		stderr: os.Stderr,
		now:    time.Now,
		buf:    &TextBuffer{},
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.out == nil {
		l.out = termenv.NewOutput(os.Stdout)
	}

	if path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(l.stderr, "Error opening log file: %v\n", err)
		} else {
			l.file = f
		}
	}
	return l
}

// Buffer returns the in-memory view buffer.
func (l *Logger) Buffer() *TextBuffer {
	return l.buf
}

// Log appends one record to the file, stdout and the view buffer.
func (l *Logger) Log(level Level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.now().Format(timestampLayout)
	sev := level.String()

	fmt.Fprintf(l.out, "[%s] %s: %s\n", ts, l.styled(level, sev), msg)
	l.buf.Append(sev + ": " + msg + "\n")

	if l.file != nil {
		fmt.Fprintf(l.file, "[%s] %s: %s\n", ts, sev, msg)
	}
}

func (l *Logger) styled(level Level, sev string) string {
	s := l.out.String(sev)
	switch level {
	case Debug:
		s = s.Faint()
	case Warning:
		s = s.Foreground(l.out.Color("3"))
	case Error:
		s = s.Foreground(l.out.Color("1")).Bold()
	}
	return s.String()
}

func (l *Logger) Debugf(format string, args ...any) { l.Log(Debug, fmt.Sprintf(format, args...)) }
func (l *Logger) Infof(format string, args ...any)  { l.Log(Info, fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...any)  { l.Log(Warning, fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...any) { l.Log(Error, fmt.Sprintf(format, args...)) }

// Close closes the log file. Later records still reach stdout and the buffer.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
