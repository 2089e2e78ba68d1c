package domain

import (
	"fmt"
	"io"
	"log/slog"

	m "htmlreport.dev/pkg/htmlreport/internal/model"
	"htmlreport.dev/pkg/htmlreport/pkg/capture"
)

// StreamSwitcher substitutes the process-wide stdout/stderr while a test
// is being captured. capture.ProcessStreams is the production implementation.
type StreamSwitcher interface {
	Install(stdout, stderr io.Writer) error
	Restore()
}

// MarkerStyler decorates a progress marker for display.
type MarkerStyler func(outcome m.Outcome, marker string) string

type recorderState int

const (
	stateIdle recorderState = iota
	stateCapturing
	stateFinalized
)

// Recorder accumulates test records. For every test it starts capture,
// receives exactly one outcome, stops capture and appends a record.
//
// A Recorder serves one test at a time. Its two proxies share a single
// buffer that is rebound per test, so it must not be driven by
// concurrently running tests.
type Recorder struct {
	stdout   *capture.Redirector
	stderr   *capture.Redirector
	buffer   *capture.Buffer
	streams  StreamSwitcher
	progress io.Writer
	styler   MarkerStyler

	verbosity int
	state     recorderState
	installed bool

	summary m.RunSummary
	records []m.TestRecord
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithProgress sets where progress markers go and how verbose they are.
// Verbosity 0 is quiet, 1 writes one character per test and 2 or more
// writes one line per test.
func WithProgress(w io.Writer, verbosity int) RecorderOption {
	return func(r *Recorder) {
		r.progress = w
		r.verbosity = verbosity
	}
}

// WithMarkerStyler decorates progress markers, e.g. with terminal colours.
func WithMarkerStyler(styler MarkerStyler) RecorderOption {
	return func(r *Recorder) {
		r.styler = styler
	}
}

// WithStreamSwitcher makes the recorder install its proxies as the
// process-wide stdout/stderr for the duration of every test.
func WithStreamSwitcher(streams StreamSwitcher) RecorderOption {
	return func(r *Recorder) {
		r.streams = streams
	}
}

// NewRecorder creates an idle Recorder.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{
		stdout:    capture.NewRedirector(nil),
		stderr:    capture.NewRedirector(nil),
		buffer:    capture.NewBuffer(),
		verbosity: 1,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Stdout returns the proxy a harness hands to a test as its standard output.
func (r *Recorder) Stdout() io.Writer {
	return r.stdout
}

// Stderr returns the proxy a harness hands to a test as its standard error.
func (r *Recorder) Stderr() io.Writer {
	return r.stderr
}

// StartTest begins capture for test with a fresh empty buffer.
func (r *Recorder) StartTest(test m.TestIdentity) {
	if r.state == stateCapturing {
		slog.Warn("test started while another capture is open", "test", test.ID)
		r.restore()
	}

	r.buffer = capture.NewBuffer()
	r.stdout.SetTarget(r.buffer)
	r.stderr.SetTarget(r.buffer)
	r.state = stateCapturing

	if r.streams != nil {
		if err := r.streams.Install(r.stdout, r.stderr); err != nil {
			slog.Error("failed to install stream capture", "test", test.ID, "error", err)
		} else {
			r.installed = true
		}
	}

	slog.Debug("test started", "test", test.ID, "group", test.Group.Key())
}

// AddSuccess records a passed test.
func (r *Recorder) AddSuccess(test m.TestIdentity) {
	r.summary.Success++
	r.finish(m.Passed, test, "")
}

// AddFailure records a failed test with its formatted failure text.
func (r *Recorder) AddFailure(test m.TestIdentity, errText string) {
	r.summary.Failure++
	r.finish(m.Failed, test, errText)
}

// AddError records a test that aborted unexpectedly.
func (r *Recorder) AddError(test m.TestIdentity, errText string) {
	r.summary.Error++
	r.finish(m.Errored, test, errText)
}

// StopTest ends capture for test. It restores the real streams even when
// no outcome was reported.
func (r *Recorder) StopTest(test m.TestIdentity) {
	if r.state == stateCapturing {
		slog.Debug("test stopped without outcome", "test", test.ID)
	}

	r.restore()
	r.state = stateIdle
}

// Records returns the records appended so far, in execution order.
func (r *Recorder) Records() []m.TestRecord {
	out := make([]m.TestRecord, len(r.records))
	copy(out, r.records)

	return out
}

// Summary returns the current counters.
func (r *Recorder) Summary() m.RunSummary {
	return r.summary
}

func (r *Recorder) finish(outcome m.Outcome, test m.TestIdentity, errText string) {
	r.restore()

	output := ""
	if r.state == stateCapturing {
		output = r.buffer.String()
	}

	r.state = stateFinalized

	r.records = append(r.records, m.TestRecord{
		Outcome:   outcome,
		Test:      test,
		Output:    output,
		ErrorText: capture.NormalizeString(errText),
	})

	slog.Debug("test finished", "test", test.ID, "outcome", outcome.String(), "output_bytes", len(output))

	r.writeMarker(outcome, test)
}

// restore detaches the proxies from the process streams. Calling it again
// is a no-op.
func (r *Recorder) restore() {
	if r.installed {
		r.streams.Restore()
		r.installed = false
	}
}

func (r *Recorder) writeMarker(outcome m.Outcome, test m.TestIdentity) {
	if r.progress == nil || r.verbosity <= 0 {
		return
	}

	marker, end := shortMarker(outcome), ""
	if r.verbosity > 1 {
		marker, end = fmt.Sprintf("%s%s", verboseMarker(outcome), test.ID), "\n"
	}

	if r.styler != nil {
		marker = r.styler(outcome, marker)
	}

	_, _ = io.WriteString(r.progress, marker+end)
}

func shortMarker(outcome m.Outcome) string {
	switch outcome {
	case m.Passed:
		return "."
	case m.Failed:
		return "F"
	default:
		return "E"
	}
}

func verboseMarker(outcome m.Outcome) string {
	switch outcome {
	case m.Passed:
		return "ok "
	case m.Failed:
		return "F  "
	default:
		return "E  "
	}
}
