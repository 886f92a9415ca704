package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles for colored text output.
// Literal bodies are never styled: lipgloss expands tabs, which would alter
// the Java layout.
type Styles struct {
	Comment lipgloss.Style
	Source  lipgloss.Style
}

// NewStyles creates the default color styles.
func NewStyles() Styles {
	return Styles{
		Comment: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),           // green
		Source:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true), // bold magenta
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{
		Comment: lipgloss.NewStyle(),
		Source:  lipgloss.NewStyle(),
	}
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
