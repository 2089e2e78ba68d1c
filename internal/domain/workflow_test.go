package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"htmlreport.dev/pkg/htmlreport/internal/adapter"
	adaptermocks "htmlreport.dev/pkg/htmlreport/internal/adapter/mocks"
	"htmlreport.dev/pkg/htmlreport/internal/controller"
	controllermocks "htmlreport.dev/pkg/htmlreport/internal/controller/mocks"
	m "htmlreport.dev/pkg/htmlreport/internal/model"
)

type workflowMocks struct {
	runner       *adaptermocks.MockTestRunnerAdapter
	events       *adaptermocks.MockEventSource
	descriptions *adaptermocks.MockDescriptionStore
	reports      *adaptermocks.MockReportStore
	ui           *controllermocks.MockUI
	progress     *bytes.Buffer
}

func newTestWorkflow(t *testing.T) (*workflow, *workflowMocks) {
	t.Helper()

	mocks := &workflowMocks{
		runner:       adaptermocks.NewMockTestRunnerAdapter(t),
		events:       adaptermocks.NewMockEventSource(t),
		descriptions: adaptermocks.NewMockDescriptionStore(t),
		reports:      adaptermocks.NewMockReportStore(t),
		ui:           controllermocks.NewMockUI(t),
		progress:     &bytes.Buffer{},
	}

	wf := NewWorkflow(
		mocks.runner,
		mocks.events,
		mocks.descriptions,
		mocks.reports,
		mocks.ui,
		controller.NewHTMLRenderer(),
	).(*workflow)

	return wf, mocks
}

func (w *workflowMocks) expectConsole() {
	w.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	w.ui.EXPECT().Close(mock.Anything).Return()
	w.ui.EXPECT().Progress().Return(w.progress)
	w.ui.EXPECT().MarkerStyler().Return(nil)
}

func eventStream(t *testing.T, events ...adapter.TestEvent) string {
	t.Helper()

	var sb strings.Builder

	for _, event := range events {
		line, err := json.Marshal(event)
		require.NoError(t, err)

		sb.Write(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

func mixedEvents() []adapter.TestEvent {
	start := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

	return []adapter.TestEvent{
		{Time: start, Action: adapter.ActionRun, Package: shopPkg, Test: "TestTotal"},
		{Time: start, Action: adapter.ActionOutput, Package: shopPkg, Test: "TestTotal", Output: "<script>alert(1)</script>\n"},
		{Time: start.Add(time.Second), Action: adapter.ActionPass, Package: shopPkg, Test: "TestTotal"},
		{Time: start.Add(time.Second), Action: adapter.ActionRun, Package: shopPkg, Test: "TestDiscount"},
		{Time: start.Add(time.Second), Action: adapter.ActionOutput, Package: shopPkg, Test: "TestDiscount", Output: "    cart_test.go:9: wrong total\n"},
		{Time: start.Add(2 * time.Second), Action: adapter.ActionFail, Package: shopPkg, Test: "TestDiscount"},
		{Time: start.Add(2 * time.Second), Action: adapter.ActionFail, Package: shopPkg},
	}
}

func TestWorkflow_Render(t *testing.T) {
	ctx := context.Background()
	wf, mocks := newTestWorkflow(t)
	mocks.expectConsole()

	input := m.Path("events.json")
	output := m.Path("out/report.html")
	desc := m.Descriptions{Groups: map[string]string{shopPkg: "Shop package."}}

	mocks.events.EXPECT().OpenEvents(input).
		Return(io.NopCloser(strings.NewReader(eventStream(t, mixedEvents()...)+"garbage\n")), nil)
	mocks.descriptions.EXPECT().LoadDescriptions(m.Path("desc.yaml")).Return(desc, nil)

	var document []byte

	mocks.reports.EXPECT().SaveReport(output, mock.Anything).
		Run(func(_ m.Path, doc []byte) { document = doc }).
		Return(nil)

	var shown m.Report

	mocks.ui.EXPECT().DisplaySummary(ctx, mock.Anything).
		Run(func(_ context.Context, report m.Report) { shown = report }).
		Return(nil)
	mocks.ui.EXPECT().DisplayReportPath(ctx, output).Return()

	err := wf.Render(ctx, RenderArgs{
		ReportArgs: ReportArgs{
			Output:       output,
			Title:        "Shop",
			Verbosity:    1,
			GroupBy:      GroupByPackage,
			Descriptions: "desc.yaml",
		},
		Input: input,
	})
	require.NoError(t, err, "failing tests do not fail a render")

	assert.Equal(t, ".F", mocks.progress.String())

	assert.Equal(t, "Shop", shown.Title)
	assert.Equal(t, "2026-10-14 09:30:00", shown.Attributes.StartTime)
	assert.Equal(t, "2s", shown.Attributes.Duration)
	assert.Equal(t, "Pass 1 Failure 1", shown.Attributes.Status)
	require.Len(t, shown.Groups, 1)
	assert.Equal(t, shopPkg+": Shop package.", shown.Groups[0].Name)

	html := string(document)
	assert.Contains(t, html, "<title>Shop</title>")
	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, html, "wrong total")
	assert.Contains(t, html, `content="htmlreport"`)
}

func TestWorkflow_Render_OpenError(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.events.EXPECT().OpenEvents(m.Path("missing.json")).Return(nil, errors.New("no such file"))

	err := wf.Render(context.Background(), RenderArgs{Input: "missing.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open events")
}

func TestWorkflow_Run_FailuresReturnErrTestsFailed(t *testing.T) {
	ctx := context.Background()
	wf, mocks := newTestWorkflow(t)
	mocks.expectConsole()

	tick := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	wf.now = func() time.Time {
		tick = tick.Add(1500 * time.Millisecond)
		return tick
	}

	mocks.descriptions.EXPECT().LoadDescriptions(m.Path("")).Return(m.Descriptions{}, nil)
	mocks.runner.EXPECT().RunGoTest(ctx, "examples/mixed", []string{"./cart"}, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ []string, fn adapter.EventFunc) error {
			for _, event := range mixedEvents() {
				fn(event)
			}

			return nil
		})
	mocks.reports.EXPECT().SaveReport(adapter.StdoutPath, mock.Anything).Return(nil)
	mocks.ui.EXPECT().DisplaySummary(ctx, mock.Anything).Return(nil)
	mocks.ui.EXPECT().DisplayElapsed(ctx, 1500*time.Millisecond).Return()

	err := wf.Run(ctx, RunArgs{
		ReportArgs: ReportArgs{Output: adapter.StdoutPath, Verbosity: 2},
		WorkDir:    "examples/mixed",
		Packages:   []string{"./cart"},
	})
	require.ErrorIs(t, err, ErrTestsFailed)

	assert.Equal(t, "ok TestTotal\nF  TestDiscount\n", mocks.progress.String())
}

func TestWorkflow_Run_DefaultPackagesAllPassing(t *testing.T) {
	ctx := context.Background()
	wf, mocks := newTestWorkflow(t)
	mocks.expectConsole()

	mocks.descriptions.EXPECT().LoadDescriptions(m.Path("")).Return(m.Descriptions{}, nil)
	mocks.runner.EXPECT().RunGoTest(ctx, "", DefaultPackages, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ []string, fn adapter.EventFunc) error {
			fn(adapter.TestEvent{Action: adapter.ActionRun, Package: shopPkg, Test: "TestTotal"})
			fn(adapter.TestEvent{Action: adapter.ActionPass, Package: shopPkg, Test: "TestTotal"})

			return nil
		})
	mocks.reports.EXPECT().SaveReport(m.Path("report.html"), mock.Anything).Return(nil)
	mocks.ui.EXPECT().DisplaySummary(ctx, mock.Anything).Return(nil)
	mocks.ui.EXPECT().DisplayReportPath(ctx, m.Path("report.html")).Return()
	mocks.ui.EXPECT().DisplayElapsed(ctx, mock.Anything).Return()

	err := wf.Run(ctx, RunArgs{ReportArgs: ReportArgs{Output: "report.html"}})
	require.NoError(t, err)
}

func TestWorkflow_Run_RunnerError(t *testing.T) {
	ctx := context.Background()
	wf, mocks := newTestWorkflow(t)
	mocks.expectConsole()

	mocks.descriptions.EXPECT().LoadDescriptions(m.Path("")).Return(m.Descriptions{}, nil)
	mocks.runner.EXPECT().RunGoTest(ctx, "", DefaultPackages, mock.Anything).Return(errors.New("go not found"))

	err := wf.Run(ctx, RunArgs{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTestsFailed)
	assert.Contains(t, err.Error(), "go not found")
}

func TestWorkflow_Run_DescriptionsError(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.descriptions.EXPECT().LoadDescriptions(m.Path("broken.yaml")).Return(m.Descriptions{}, errors.New("bad yaml"))

	err := wf.Run(context.Background(), RunArgs{ReportArgs: ReportArgs{Descriptions: "broken.yaml"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load descriptions")
}

func TestWorkflow_Run_SaveError(t *testing.T) {
	ctx := context.Background()
	wf, mocks := newTestWorkflow(t)
	mocks.expectConsole()

	mocks.descriptions.EXPECT().LoadDescriptions(m.Path("")).Return(m.Descriptions{}, nil)
	mocks.runner.EXPECT().RunGoTest(ctx, "", DefaultPackages, mock.Anything).Return(nil)
	mocks.reports.EXPECT().SaveReport(m.Path("/read-only/report.html"), mock.Anything).Return(errors.New("permission denied"))

	err := wf.Run(ctx, RunArgs{ReportArgs: ReportArgs{Output: "/read-only/report.html"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save report")
}

func TestWorkflow_Run_UIStartError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	wf, mocks := newTestWorkflow(t)

	mocks.descriptions.EXPECT().LoadDescriptions(m.Path("")).Return(m.Descriptions{}, nil)
	mocks.ui.EXPECT().Start(ctx, mock.Anything).Return(context.Canceled)

	err := wf.Run(ctx, RunArgs{})
	require.ErrorIs(t, err, context.Canceled)
}
