package internal

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Status label styles, bold on basic ANSI colors.
var (
	readyStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	compilingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	finishedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

// consoleLogger prints build lifecycle events as colored status lines.
// Workers report concurrently, so each line is written under a mutex.
type consoleLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func newConsoleLogger(w io.Writer) *consoleLogger {
	return &consoleLogger{w: w}
}

func (l *consoleLogger) ShadersGathered(n int) {
	l.printf("%s to compile %d shaders\n", readyStyle.Render("Ready"), n)
}

func (l *consoleLogger) Compiling(shader string) {
	l.printf("%s %s\n", compilingStyle.Render("Compiling"), shader)
}

func (l *consoleLogger) CompileError(shader string, err error) {
	l.printf("%s while compiling %s: %v\n", errorStyle.Render("Error"), shader, err)
}

func (l *consoleLogger) Completed() {
	l.printf("%s\n", finishedStyle.Render("Finished"))
}

func (l *consoleLogger) printf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format, args...)
}
