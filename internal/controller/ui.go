// Package controller provides output adapters for presenting test reports:
// the XHTML document and the console feedback printed around a run.
package controller

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "htmlreport.dev/pkg/htmlreport/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRender StartMode = iota
	ModeRun
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode     StartMode
	packages []string
}

// WithRenderMode sets the UI to render a recorded event stream.
func WithRenderMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRender
	}
}

// WithRunMode sets the UI to test execution mode for packages.
func WithRunMode(packages []string) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
		c.packages = packages
	}
}

// UI defines console feedback around report generation.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	// Progress is the real stderr that receives per-test progress markers.
	Progress() io.Writer
	// MarkerStyler decorates progress markers for the progress writer.
	MarkerStyler() func(outcome m.Outcome, marker string) string
	DisplaySummary(ctx context.Context, report m.Report) error
	DisplayElapsed(ctx context.Context, elapsed time.Duration)
	DisplayReportPath(ctx context.Context, path m.Path)
}

// NewUI returns the console UI writing to cmd's error stream, so that a
// report written to stdout stays clean.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	return NewSimpleUI(cmd, useTTY)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
