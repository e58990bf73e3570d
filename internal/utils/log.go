package utils

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"charm.land/lipgloss/v2"
)

var (
	logMu    sync.Mutex
	debugOut io.Writer = io.Discard
	warnOut  io.Writer = os.Stderr

	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// SetDebugOutput routes Debug lines to w. A nil writer disables them.
func SetDebugOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	if w == nil {
		w = io.Discard
	}
	debugOut = w
}

// SetWarnOutput routes Warn lines to w. A nil writer restores stderr.
func SetWarnOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	warnOut = w
}

// OpenDebugLog appends Debug lines to the file at path in addition to the
// current debug output. The returned func closes the file and restores the
// previous output.
func OpenDebugLog(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}

	logMu.Lock()
	prev := debugOut
	if prev == io.Discard {
		debugOut = f
	} else {
		debugOut = io.MultiWriter(prev, f)
	}
	logMu.Unlock()

	return func() error {
		logMu.Lock()
		debugOut = prev
		logMu.Unlock()
		return f.Close()
	}, nil
}

// Debug writes a timestamped line when debug output is enabled.
func Debug(format string, args ...any) {
	logMu.Lock()
	defer logMu.Unlock()
	if debugOut == io.Discard {
		return
	}
	fmt.Fprintf(debugOut, "[%s] %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}

// Warn writes a warning line. Warnings are never suppressed.
func Warn(format string, args ...any) {
	logMu.Lock()
	defer logMu.Unlock()
	lipgloss.Fprintf(warnOut, "%s %s\n", warnStyle.Render("Warning:"), fmt.Sprintf(format, args...))
}

// PrintError writes err to w with the same prefix the commands use.
func PrintError(w io.Writer, err error) {
	lipgloss.Fprintf(w, "%s %v\n", errorStyle.Render("Error:"), err)
}
