package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
)

// TestRunnerAdapter abstracts running go test with JSON output.
type TestRunnerAdapter interface {
	// RunGoTest runs 'go test -json' for packages in workDir and streams the
	// decoded events to fn. Failing tests are not an error; a go command
	// that cannot start, whose output cannot be read, or that fails
	// without emitting a single event is.
	RunGoTest(ctx context.Context, workDir string, packages []string, fn EventFunc) error
}

// LocalTestRunnerAdapter provides a concrete implementation using os/exec.
type LocalTestRunnerAdapter struct {
	goBinary string
}

// NewLocalTestRunnerAdapter constructs a LocalTestRunnerAdapter that runs
// the go binary found in PATH.
func NewLocalTestRunnerAdapter() *LocalTestRunnerAdapter {
	return &LocalTestRunnerAdapter{goBinary: "go"}
}

// RunGoTest runs 'go test -json' and decodes its standard output.
func (a *LocalTestRunnerAdapter) RunGoTest(ctx context.Context, workDir string, packages []string, fn EventFunc) error {
	args := append([]string{"test", "-json"}, packages...)

	cmd := exec.CommandContext(ctx, a.goBinary, args...)
	cmd.Dir = workDir

	var stderr bytes.Buffer

	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("open go test output: %w", err)
	}

	if err := cmd.Start(); err != nil {
		slog.Error("Failed to start go test", "workDir", workDir, "error", err)
		return fmt.Errorf("start go test: %w", err)
	}

	events := 0

	malformed, decodeErr := DecodeEvents(ctx, stdout, func(event TestEvent) {
		if event.Package != "" {
			events++
		}

		fn(event)
	})
	if malformed > 0 {
		slog.Debug("go test emitted non-JSON lines", "count", malformed)
	}

	if decodeErr != nil {
		// Drain so the child does not block on a full pipe.
		_, _ = io.Copy(io.Discard, stdout)
	}

	waitErr := cmd.Wait()

	if decodeErr != nil {
		return fmt.Errorf("read go test output: %w", decodeErr)
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		slog.Error("go test did not finish", "error", waitErr, "stderr", stderr.String())
		return fmt.Errorf("wait for go test: %w", waitErr)
	}

	if exitErr != nil && events == 0 {
		slog.Error("go test produced no events", "code", exitErr.ExitCode(), "stderr", stderr.String())
		return fmt.Errorf("go test failed: %s: %w", bytes.TrimSpace(stderr.Bytes()), waitErr)
	}

	if exitErr != nil {
		slog.Debug("go test exited with failures", "code", exitErr.ExitCode(), "stderr", stderr.String())
	}

	return nil
}
