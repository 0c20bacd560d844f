// Package logger provides leveled logging for kwscan. Implementations are
// thread-safe: every search worker logs through the same instance.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ValidLevels lists the accepted level names.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Console writes "[HH:MM:SS] LEVEL message" lines to a writer.
// Color output is enabled only when the writer is a terminal.
type Console struct {
	writer      io.Writer
	level       int
	mu          sync.Mutex
	colorOutput bool
	now         func() time.Time
}

// NewConsole creates a Console logger writing to w.
// If w is nil, messages are silently discarded.
// Empty or unknown levels default to "info".
func NewConsole(w io.Writer, level string) *Console {
	return &Console{
		writer:      w,
		level:       logLevelToInt(NormalizeLevel(level)),
		colorOutput: isTerminal(w),
		now:         time.Now,
	}
}

// isTerminal reports whether w is a terminal file. NO_COLOR disables color.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NormalizeLevel lowercases level and maps empty or unknown values to "info".
func NormalizeLevel(level string) string {
	l := strings.ToLower(strings.TrimSpace(level))
	for _, v := range ValidLevels {
		if l == v {
			return l
		}
	}
	return "info"
}

// IsValidLevel reports whether level names a known level (case-insensitive).
func IsValidLevel(level string) bool {
	l := strings.ToLower(strings.TrimSpace(level))
	for _, v := range ValidLevels {
		if l == v {
			return true
		}
	}
	return false
}

func logLevelToInt(level string) int {
	switch level {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogDebug logs a debug-level message.
func (c *Console) LogDebug(message string) {
	c.logWithLevel(levelDebug, "DEBUG", message)
}

// LogInfo logs an info-level message.
func (c *Console) LogInfo(message string) {
	c.logWithLevel(levelInfo, "INFO", message)
}

// LogWarn logs a warn-level message.
func (c *Console) LogWarn(message string) {
	c.logWithLevel(levelWarn, "WARN", message)
}

// LogError logs an error-level message.
func (c *Console) LogError(message string) {
	c.logWithLevel(levelError, "ERROR", message)
}

func (c *Console) logWithLevel(level int, name, message string) {
	if c.writer == nil || level < c.level {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.now().Format("15:04:05")
	if c.colorOutput {
		fmt.Fprintf(c.writer, "[%s] %s %s\n", ts, colorize(level, name), message)
		return
	}
	fmt.Fprintf(c.writer, "[%s] %s %s\n", ts, name, message)
}

func colorize(level int, name string) string {
	var c *color.Color
	switch level {
	case levelDebug:
		c = color.New(color.FgHiBlack)
	case levelWarn:
		c = color.New(color.FgYellow)
	case levelError:
		c = color.New(color.FgRed, color.Bold)
	default:
		c = color.New(color.FgCyan)
	}
	c.EnableColor()
	return c.Sprint(name)
}

// NoOp discards every message.
type NoOp struct{}

// NewNoOp returns a logger that discards everything.
func NewNoOp() *NoOp { return &NoOp{} }

func (*NoOp) LogDebug(string) {}
func (*NoOp) LogInfo(string)  {}
func (*NoOp) LogWarn(string)  {}
func (*NoOp) LogError(string) {}
