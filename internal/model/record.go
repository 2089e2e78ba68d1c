package model

import (
	"fmt"
	"strings"
)

// Group identifies the container a test belongs to (a package or a
// top-level test function with subtests).
type Group struct {
	Module string
	Name   string
	Doc    string
}

// Key returns the module-qualified group name used for grouping.
func (g Group) Key() string {
	if g.Module == "" {
		return g.Name
	}

	return g.Module + "." + g.Name
}

// DisplayName returns the name shown in the summary table. The module is
// omitted when it is empty or equals entryModule. The first line of the
// group doc is appended when present.
func (g Group) DisplayName(entryModule string) string {
	name := g.Key()
	if g.Module == "" || g.Module == entryModule {
		name = g.Name
	}

	if doc := FirstLine(g.Doc); doc != "" {
		return name + ": " + doc
	}

	return name
}

// TestIdentity is the handle of one test: its qualifying id, an optional
// one-line description, and the group it belongs to.
type TestIdentity struct {
	ID          string
	Description string
	Group       Group
}

// ShortName returns the part of the test id below its group, e.g. "case"
// for "TestFoo/case" in group "TestFoo".
func (t TestIdentity) ShortName() string {
	if prefix := t.Group.Name + "/"; t.Group.Name != "" && strings.HasPrefix(t.ID, prefix) {
		return strings.TrimPrefix(t.ID, prefix)
	}

	return t.ID
}

// String implements fmt.Stringer.
func (t TestIdentity) String() string {
	if key := t.Group.Key(); key != "" {
		return fmt.Sprintf("%s (%s)", t.ID, key)
	}

	return t.ID
}

// TestRecord is the immutable result of one test execution.
type TestRecord struct {
	Outcome   Outcome
	Test      TestIdentity
	Output    string // captured stdout/stderr
	ErrorText string // formatted failure or panic text, empty on success
}

// RunSummary holds the aggregate counters of a run.
type RunSummary struct {
	Success int
	Failure int
	Error   int
}

// Total returns the number of recorded tests.
func (s RunSummary) Total() int {
	return s.Success + s.Failure + s.Error
}

// Status returns a human summary such as "Pass 3 Failure 1", or "none"
// when nothing ran.
func (s RunSummary) Status() string {
	var parts []string

	if s.Success > 0 {
		parts = append(parts, fmt.Sprintf("Pass %d", s.Success))
	}

	if s.Failure > 0 {
		parts = append(parts, fmt.Sprintf("Failure %d", s.Failure))
	}

	if s.Error > 0 {
		parts = append(parts, fmt.Sprintf("Error %d", s.Error))
	}

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, " ")
}

// Failed reports whether any test failed or errored.
func (s RunSummary) Failed() bool {
	return s.Failure > 0 || s.Error > 0
}

// FirstLine returns the first line of text with surrounding blanks trimmed.
func FirstLine(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}

	return strings.TrimSpace(text)
}
