package adapter

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	m "htmlreport.dev/pkg/htmlreport/internal/model"
)

// StdinPath selects standard input as the event stream.
const StdinPath m.Path = "-"

// EventSource opens recorded go test -json streams.
type EventSource interface {
	OpenEvents(path m.Path) (io.ReadCloser, error)
}

type eventSource struct {
	stdin io.Reader
}

// NewEventSource creates an EventSource reading files, or stdin for "-".
func NewEventSource(stdin io.Reader) EventSource {
	return &eventSource{stdin: stdin}
}

// OpenEvents opens path. The caller closes the returned stream.
func (s *eventSource) OpenEvents(path m.Path) (io.ReadCloser, error) {
	if path == StdinPath || path == "" {
		return io.NopCloser(s.stdin), nil
	}

	file, err := os.Open(string(path))
	if err != nil {
		slog.Error("failed to open event stream", "path", path, "error", err)
		return nil, fmt.Errorf("open events %s: %w", path, err)
	}

	return file, nil
}
