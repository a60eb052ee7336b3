// Package logging builds the structured stderr logger shared by all commands.
package logging

import (
	"io"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/branding"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// New returns a logger writing to w. Verbose enables debug output.
func New(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
		Level:  log.InfoLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportCaller(true)
	}
	logger.SetStyles(styles())
	return logger
}

// Discard returns a logger that drops everything. Used by tests and by
// callers that do not care about progress output.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(lipgloss.Color("214"))
	s.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("196"))
	s.Keys["path"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	s.Values["path"] = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return s
}
