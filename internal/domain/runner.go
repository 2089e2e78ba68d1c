package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	m "htmlreport.dev/pkg/htmlreport/internal/model"
)

// Case is one in-process test. Run receives explicit output sinks; writes
// to them are captured into the test's record.
type Case struct {
	Group       m.Group
	Name        string
	Description string
	Run         func(stdout, stderr io.Writer) error
}

// Identity returns the test handle recorded for the case.
func (c Case) Identity() m.TestIdentity {
	return m.TestIdentity{
		ID:          c.Name,
		Description: c.Description,
		Group:       c.Group,
	}
}

// FailureError marks an error returned by a Case as an assertion failure.
// Any other error, or a panic, records the case as errored.
type FailureError struct {
	Message string
}

// Error implements error.
func (e *FailureError) Error() string {
	return e.Message
}

// Failf builds a FailureError.
func Failf(format string, args ...any) error {
	return &FailureError{Message: fmt.Sprintf(format, args...)}
}

// Runner executes cases one after another, feeding a Recorder.
type Runner struct {
	recorder *Recorder
}

// NewRunner creates a Runner that records into recorder.
func NewRunner(recorder *Recorder) *Runner {
	return &Runner{recorder: recorder}
}

// Run executes cases in order. It stops before the next case when ctx is
// cancelled and returns the context error.
func (r *Runner) Run(ctx context.Context, cases []Case) error {
	for i, c := range cases {
		if err := ctx.Err(); err != nil {
			slog.Warn("run cancelled", "remaining", len(cases)-i, "error", err)
			return err
		}

		r.runCase(c)
	}

	return nil
}

func (r *Runner) runCase(c Case) {
	test := c.Identity()

	r.recorder.StartTest(test)
	defer r.recorder.StopTest(test)

	err := r.invoke(c)

	var failure *FailureError

	switch {
	case err == nil:
		r.recorder.AddSuccess(test)
	case errors.As(err, &failure):
		r.recorder.AddFailure(test, formatFailure(err))
	default:
		r.recorder.AddError(test, formatFailure(err))
	}
}

func (r *Runner) invoke(c Case) (err error) {
	if c.Run == nil {
		return errors.New("case has no body")
	}

	defer func() {
		if v := recover(); v != nil {
			err = &panicError{value: v, stack: debug.Stack()}
		}
	}()

	return c.Run(r.recorder.Stdout(), r.recorder.Stderr())
}

type panicError struct {
	value any
	stack []byte
}

func (p *panicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", p.value, p.stack)
}

func formatFailure(err error) string {
	var failure *FailureError
	if errors.As(err, &failure) {
		return "Failure: " + err.Error() + "\n"
	}

	var p *panicError
	if errors.As(err, &p) {
		return p.Error()
	}

	return "Error: " + err.Error() + "\n"
}
