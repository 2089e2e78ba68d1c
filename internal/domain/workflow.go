package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"htmlreport.dev/pkg/htmlreport/internal/adapter"
	"htmlreport.dev/pkg/htmlreport/internal/controller"
	m "htmlreport.dev/pkg/htmlreport/internal/model"
)

// Generator is written into the generator meta tag of every report.
const Generator = "htmlreport"

// DefaultPackages is the package pattern run when none is given.
var DefaultPackages = []string{"./..."}

// ErrTestsFailed is returned by Run when at least one test failed or errored.
// The report has been written when it is returned.
var ErrTestsFailed = errors.New("tests failed")

// ReportArgs holds the settings shared by every command that writes a report.
type ReportArgs struct {
	Output       m.Path
	Title        string
	Description  string
	Verbosity    int
	GroupBy      GroupBy
	EntryModule  string
	Descriptions m.Path
}

// RenderArgs contains the arguments for rendering a recorded event stream.
type RenderArgs struct {
	ReportArgs
	Input m.Path
}

// RunArgs contains the arguments for running go test and reporting on it.
type RunArgs struct {
	ReportArgs
	WorkDir  string
	Packages []string
}

// Workflow produces HTML test reports.
type Workflow interface {
	Render(ctx context.Context, args RenderArgs) error
	Run(ctx context.Context, args RunArgs) error
}

type workflow struct {
	adapter.TestRunnerAdapter
	adapter.EventSource
	adapter.DescriptionStore
	adapter.ReportStore
	controller.UI

	renderer *controller.HTMLRenderer
	now      func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	testAdapter adapter.TestRunnerAdapter,
	eventSource adapter.EventSource,
	descriptionStore adapter.DescriptionStore,
	reportStore adapter.ReportStore,
	ui controller.UI,
	renderer *controller.HTMLRenderer,
) Workflow {
	return &workflow{
		TestRunnerAdapter: testAdapter,
		EventSource:       eventSource,
		DescriptionStore:  descriptionStore,
		ReportStore:       reportStore,
		UI:                ui,
		renderer:          renderer,
		now:               time.Now,
	}
}

// Render replays a recorded go test -json stream into a report. Start and
// stop times come from the event timestamps.
func (w *workflow) Render(ctx context.Context, args RenderArgs) error {
	stream, err := w.OpenEvents(args.Input)
	if err != nil {
		return fmt.Errorf("open events: %w", err)
	}
	defer stream.Close()

	replayer, rec, err := w.replay(ctx, args.ReportArgs, func(replayer *EventReplayer) error {
		malformed, err := adapter.DecodeEvents(ctx, stream, replayer.Handle)
		if malformed > 0 {
			slog.Warn("skipped malformed event lines", "input", args.Input, "count", malformed)
		}

		return err
	}, controller.WithRenderMode())
	if err != nil {
		return fmt.Errorf("decode events: %w", err)
	}

	_, err = w.publish(ctx, args.ReportArgs, rec, replayer.Start(), replayer.Stop())

	return err
}

// Run executes go test for the packages and reports on the results.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	packages := args.Packages
	if len(packages) == 0 {
		packages = DefaultPackages
	}

	started := w.now()

	_, rec, err := w.replay(ctx, args.ReportArgs, func(replayer *EventReplayer) error {
		return w.RunGoTest(ctx, args.WorkDir, packages, replayer.Handle)
	}, controller.WithRunMode(packages))
	if err != nil {
		return fmt.Errorf("run go test: %w", err)
	}

	stopped := w.now()

	summary, err := w.publish(ctx, args.ReportArgs, rec, started, stopped)
	if err != nil {
		return err
	}

	w.DisplayElapsed(ctx, stopped.Sub(started))

	if summary.Failed() {
		return ErrTestsFailed
	}

	return nil
}

// replay feeds events through a fresh replayer and recorder while the
// console shows progress.
func (w *workflow) replay(
	ctx context.Context,
	args ReportArgs,
	feed func(*EventReplayer) error,
	mode controller.StartOption,
) (*EventReplayer, *Recorder, error) {
	descriptions, err := w.LoadDescriptions(args.Descriptions)
	if err != nil {
		return nil, nil, fmt.Errorf("load descriptions: %w", err)
	}

	if err := w.Start(ctx, mode); err != nil {
		return nil, nil, fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	rec := NewRecorder(
		WithProgress(w.Progress(), args.Verbosity),
		WithMarkerStyler(w.MarkerStyler()),
	)
	replayer := NewEventReplayer(rec, args.GroupBy, descriptions)

	if err := feed(replayer); err != nil {
		slog.Error("event stream aborted", "error", err)
		return nil, nil, err
	}

	replayer.Flush()

	return replayer, rec, nil
}

// publish builds, renders and stores the report, then prints its summary.
func (w *workflow) publish(ctx context.Context, args ReportArgs, rec *Recorder, start, stop time.Time) (m.RunSummary, error) {
	summary := rec.Summary()

	report := BuildReport(ReportInput{
		Title:       args.Title,
		Description: args.Description,
		Generator:   Generator,
		EntryModule: args.EntryModule,
		Start:       start,
		Stop:        stop,
		Records:     rec.Records(),
		Summary:     summary,
	})

	document, err := w.renderer.Render(report)
	if err != nil {
		return summary, fmt.Errorf("render report: %w", err)
	}

	if err := w.SaveReport(args.Output, document); err != nil {
		return summary, fmt.Errorf("save report: %w", err)
	}

	if err := w.DisplaySummary(ctx, report); err != nil {
		return summary, fmt.Errorf("display summary: %w", err)
	}

	if args.Output != adapter.StdoutPath && args.Output != "" {
		w.DisplayReportPath(ctx, args.Output)
	}

	slog.Info("report generated", "output", args.Output, "tests", summary.Total(), "status", summary.Status())

	return summary, nil
}
