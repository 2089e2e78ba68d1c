package domain

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"htmlreport.dev/pkg/htmlreport/internal/adapter"
	m "htmlreport.dev/pkg/htmlreport/internal/model"
)

// GroupBy selects what a report group is for go test results.
type GroupBy string

const (
	// GroupByPackage makes every package one group.
	GroupByPackage GroupBy = "package"
	// GroupByTest makes every top-level test function one group, with its
	// subtests as members.
	GroupByTest GroupBy = "test"
)

// ParseGroupBy maps a config value to a GroupBy, defaulting to packages.
func ParseGroupBy(value string) GroupBy {
	if GroupBy(strings.ToLower(strings.TrimSpace(value))) == GroupByTest {
		return GroupByTest
	}

	return GroupByPackage
}

// BuildFailedTest is the test id recorded for a package that failed
// without running any test.
const BuildFailedTest = "[build failed]"

const incompleteText = "test did not complete\n"

var (
	// testing.T log lines: "    cart_test.go:21: message".
	testLogLine = regexp.MustCompile(`^\s+[^\s]+\.go:\d+: `)
	framingLine = regexp.MustCompile(`^\s*(=== (RUN|PAUSE|CONT|NAME)|--- (PASS|FAIL|SKIP):)`)
)

type lineKind int

const (
	lineOutput lineKind = iota
	lineLog
	linePanic
)

type eventLine struct {
	text string
	kind lineKind
}

type eventKey struct {
	pkg  string
	test string
}

type pendingTest struct {
	lines    []eventLine
	panicked bool
	lastLog  bool
}

type packageState struct {
	recorded int
	output   []string
}

// EventReplayer turns go test -json events into Recorder call sequences.
//
// Events of parallel tests and packages interleave. The replayer buffers
// each test until its terminal action and then replays it in one
// uninterrupted StartTest..StopTest sequence, so the recorder only ever
// captures one test at a time.
type EventReplayer struct {
	recorder     *Recorder
	groupBy      GroupBy
	descriptions m.Descriptions

	pending  map[eventKey]*pendingTest
	order    []eventKey
	done     map[eventKey]bool
	packages map[string]*packageState
	builds   map[string][]string

	first time.Time
	last  time.Time
}

// NewEventReplayer creates a replayer feeding recorder.
func NewEventReplayer(recorder *Recorder, groupBy GroupBy, descriptions m.Descriptions) *EventReplayer {
	return &EventReplayer{
		recorder:     recorder,
		groupBy:      groupBy,
		descriptions: descriptions,
		pending:      make(map[eventKey]*pendingTest),
		done:         make(map[eventKey]bool),
		packages:     make(map[string]*packageState),
		builds:       make(map[string][]string),
	}
}

// Handle consumes one event.
func (e *EventReplayer) Handle(event adapter.TestEvent) {
	e.trackTime(event.Time)

	if event.Action == adapter.ActionBuildOutput {
		e.builds[event.ImportPath] = append(e.builds[event.ImportPath], event.Output)
		return
	}

	if event.Test == "" {
		e.handlePackage(event)
		return
	}

	key := eventKey{pkg: event.Package, test: event.Test}
	if event.Action == adapter.ActionRun && e.done[key] {
		// -count=N reruns the same test.
		delete(e.done, key)
	}

	if e.done[key] {
		// Output after the result, such as a panic trace, belongs to the
		// package failure.
		if event.Action == adapter.ActionOutput {
			state := e.packageFor(event.Package)
			state.output = append(state.output, event.Output)
		}

		return
	}

	switch event.Action {
	case adapter.ActionRun:
		e.pendingFor(key)
	case adapter.ActionOutput:
		e.pendingFor(key).add(event.Output)
	case adapter.ActionPass:
		e.replay(key, m.Passed, "")
	case adapter.ActionFail:
		outcome := m.Failed
		if e.pendingFor(key).panicked {
			outcome = m.Errored
		}

		e.replay(key, outcome, "")
	case adapter.ActionSkip:
		e.drop(key)
		e.done[key] = true
		slog.Debug("test skipped", "package", event.Package, "test", event.Test)
	}
}

// Flush records tests that never reached a terminal action as errored.
func (e *EventReplayer) Flush() {
	keys := append([]eventKey(nil), e.order...)
	for _, key := range keys {
		if _, ok := e.pending[key]; ok {
			slog.Warn("test did not complete", "package", key.pkg, "test", key.test)
			e.replay(key, m.Errored, incompleteText)
		}
	}
}

// Start returns the time of the first timestamped event.
func (e *EventReplayer) Start() time.Time {
	return e.first
}

// Stop returns the time of the last timestamped event.
func (e *EventReplayer) Stop() time.Time {
	return e.last
}

func (e *EventReplayer) trackTime(t time.Time) {
	if t.IsZero() {
		return
	}

	if e.first.IsZero() || t.Before(e.first) {
		e.first = t
	}

	if t.After(e.last) {
		e.last = t
	}
}

func (e *EventReplayer) handlePackage(event adapter.TestEvent) {
	state := e.packageFor(event.Package)

	switch event.Action {
	case adapter.ActionOutput:
		state.output = append(state.output, event.Output)
	case adapter.ActionFail:
		text := strings.Join(e.builds[event.FailedBuild], "") + strings.Join(state.output, "")

		running := e.pendingInPackage(event.Package)
		for _, key := range running {
			e.replay(key, m.Errored, text)
		}

		if state.recorded == 0 {
			e.recordBuildFailure(event.Package, text)
		}
	}
}

func (e *EventReplayer) recordBuildFailure(pkg, text string) {
	id := m.TestIdentity{
		ID:    BuildFailedTest,
		Group: e.group(pkg, BuildFailedTest),
	}

	e.recorder.StartTest(id)
	e.recorder.AddError(id, text)
	e.recorder.StopTest(id)
	e.packageFor(pkg).recorded++

	slog.Debug("package failed without tests", "package", pkg)
}

func (e *EventReplayer) replay(key eventKey, outcome m.Outcome, extraText string) {
	test := e.pendingFor(key)
	e.drop(key)
	e.done[key] = true

	id := e.identity(key)
	output, failText := test.split(outcome == m.Passed)
	failText += extraText

	if outcome == m.Failed && failText == "" {
		failText = fmt.Sprintf("--- FAIL: %s\n", key.test)
	}

	e.recorder.StartTest(id)
	_, _ = io.WriteString(e.recorder.Stdout(), output)

	switch outcome {
	case m.Passed:
		e.recorder.AddSuccess(id)
	case m.Failed:
		e.recorder.AddFailure(id, failText)
	default:
		e.recorder.AddError(id, failText)
	}

	e.recorder.StopTest(id)
	e.packageFor(key.pkg).recorded++
}

func (e *EventReplayer) identity(key eventKey) m.TestIdentity {
	return m.TestIdentity{
		ID:          key.test,
		Description: e.descriptions.TestDescription(key.pkg, key.test),
		Group:       e.group(key.pkg, key.test),
	}
}

func (e *EventReplayer) group(pkg, test string) m.Group {
	var group m.Group

	if e.groupBy == GroupByTest {
		top, _, _ := strings.Cut(test, "/")
		group = m.Group{Module: pkg, Name: top}
	} else {
		group = m.Group{Name: pkg}
	}

	group.Doc = e.descriptions.GroupDoc(group.Key())

	return group
}

func (e *EventReplayer) pendingFor(key eventKey) *pendingTest {
	test, ok := e.pending[key]
	if !ok {
		test = &pendingTest{}
		e.pending[key] = test
		e.order = append(e.order, key)
	}

	return test
}

func (e *EventReplayer) pendingInPackage(pkg string) []eventKey {
	var keys []eventKey

	for _, key := range e.order {
		if _, ok := e.pending[key]; ok && key.pkg == pkg {
			keys = append(keys, key)
		}
	}

	return keys
}

func (e *EventReplayer) drop(key eventKey) {
	delete(e.pending, key)

	for i, k := range e.order {
		if k == key {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

func (e *EventReplayer) packageFor(pkg string) *packageState {
	state, ok := e.packages[pkg]
	if !ok {
		state = &packageState{}
		e.packages[pkg] = state
	}

	return state
}

func (p *pendingTest) add(text string) {
	switch {
	case framingLine.MatchString(text):
		p.lastLog = false
		return
	case p.panicked:
		p.lines = append(p.lines, eventLine{text: text, kind: linePanic})
	case strings.HasPrefix(text, "panic: "):
		p.panicked = true
		p.lines = append(p.lines, eventLine{text: text, kind: linePanic})
	case testLogLine.MatchString(text):
		p.lastLog = true
		p.lines = append(p.lines, eventLine{text: text, kind: lineLog})

		return
	case p.lastLog && strings.HasPrefix(text, "        "):
		p.lines = append(p.lines, eventLine{text: text, kind: lineLog})

		return
	default:
		p.lines = append(p.lines, eventLine{text: text, kind: lineOutput})
	}

	p.lastLog = false
}

// split separates console output from failure text. For passed tests log
// lines stay in the output since there is no failure to attach them to.
func (p *pendingTest) split(passed bool) (output, failText string) {
	var out, fail strings.Builder

	for _, line := range p.lines {
		if line.kind == lineOutput || (passed && line.kind == lineLog) {
			out.WriteString(line.text)
			continue
		}

		fail.WriteString(line.text)
	}

	return out.String(), fail.String()
}
