package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "htmlreport.dev/pkg/htmlreport/internal/model"
)

// SimpleUI implements UI by printing to the cobra command's error stream.
type SimpleUI struct {
	cmd     *cobra.Command
	palette palette
}

// NewSimpleUI creates a new SimpleUI. Colours are used when useTTY is true.
func NewSimpleUI(cmd *cobra.Command, useTTY bool) *SimpleUI {
	return &SimpleUI{
		cmd:     cmd,
		palette: newPalette(cmd.ErrOrStderr(), useTTY),
	}
}

// Start announces the run.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := &StartConfig{}
	for _, opt := range options {
		opt(cfg)
	}

	if cfg.mode == ModeRun {
		s.printf("Running go test -json %s\n", strings.Join(cfg.packages, " "))
	}

	return nil
}

// Close terminates the progress line.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n")
}

// Progress returns the error stream used for progress markers.
func (s *SimpleUI) Progress() io.Writer {
	return s.cmd.ErrOrStderr()
}

// MarkerStyler colours markers by outcome when attached to a terminal.
func (s *SimpleUI) MarkerStyler() func(outcome m.Outcome, marker string) string {
	return s.palette.paint
}

// DisplaySummary prints one table row per group and the totals.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", s.renderSummaryTable(report))
	s.printf("Status: %s\n", s.palette.paint(summaryOutcome(report.Totals), report.Attributes.Status))

	return nil
}

func (s *SimpleUI) renderSummaryTable(report m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Group", "Count", "Pass", "Fail", "Error"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, group := range report.Groups {
		table.Append([]string{
			s.palette.paint(summaryOutcome(group.Counts), group.Name),
			fmt.Sprintf("%d", group.Counts.Total()),
			fmt.Sprintf("%d", group.Counts.Success),
			fmt.Sprintf("%d", group.Counts.Failure),
			fmt.Sprintf("%d", group.Counts.Error),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Groups %d", len(report.Groups)),
		fmt.Sprintf("%d", report.Totals.Total()),
		fmt.Sprintf("%d", report.Totals.Success),
		fmt.Sprintf("%d", report.Totals.Failure),
		fmt.Sprintf("%d", report.Totals.Error),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayElapsed prints the wall time of the run.
func (s *SimpleUI) DisplayElapsed(ctx context.Context, elapsed time.Duration) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Time Elapsed: %s\n", elapsed)
}

// DisplayReportPath prints where the report went.
func (s *SimpleUI) DisplayReportPath(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Report written to %s\n", path)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
