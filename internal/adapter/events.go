// Package adapter contains infrastructure adapters: the go test event
// decoder and runner, the descriptions file loader and the report store.
package adapter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Actions emitted by go test -json that the replayer reacts to.
const (
	ActionRun    = "run"
	ActionOutput = "output"
	ActionPass   = "pass"
	ActionFail   = "fail"
	ActionSkip   = "skip"

	ActionBuildOutput = "build-output"
)

const maxEventLine = 1024 * 1024

// TestEvent is a single line of go test -json output.
type TestEvent struct {
	Time    time.Time `json:"Time"`
	Action  string    `json:"Action"`
	Package string    `json:"Package"`
	Test    string    `json:"Test"`
	Elapsed float64   `json:"Elapsed"`
	Output  string    `json:"Output"`

	// Set on build events and on the fail event of a package that did
	// not compile.
	ImportPath  string `json:"ImportPath,omitempty"`
	FailedBuild string `json:"FailedBuild,omitempty"`
}

// EventFunc receives decoded events in stream order.
type EventFunc func(event TestEvent)

// DecodeEvents reads NDJSON events from r and calls fn for each one.
// Lines that are not valid JSON events, or longer than maxEventLine, are
// skipped and counted. Decoding stops early when ctx is cancelled.
func DecodeEvents(ctx context.Context, r io.Reader, fn EventFunc) (int, error) {
	reader := bufio.NewReaderSize(r, 64*1024)
	malformed := 0

	for {
		if err := ctx.Err(); err != nil {
			return malformed, err
		}

		line, oversized, err := readEventLine(reader)
		if err != nil && !errors.Is(err, io.EOF) {
			slog.Error("failed to read test events", "error", err)
			return malformed, fmt.Errorf("read test events: %w", err)
		}

		switch {
		case oversized:
			malformed++

			slog.Debug("skipping oversized event line", "limit", maxEventLine)
		case len(bytes.TrimSpace(line)) > 0:
			var event TestEvent
			if jsonErr := json.Unmarshal(line, &event); jsonErr != nil || event.Action == "" {
				malformed++

				slog.Debug("skipping malformed event line", "line", string(line))
			} else {
				fn(event)
			}
		}

		if errors.Is(err, io.EOF) {
			return malformed, nil
		}
	}
}

// readEventLine returns the next line without its terminator. A line longer
// than maxEventLine is consumed in full and reported as oversized.
func readEventLine(reader *bufio.Reader) ([]byte, bool, error) {
	var line []byte

	oversized := false

	for {
		chunk, isPrefix, err := reader.ReadLine()
		if err != nil {
			return line, oversized, err
		}

		if !oversized {
			line = append(line, chunk...)
			if len(line) > maxEventLine {
				oversized = true
				line = nil
			}
		}

		if !isPrefix {
			return line, oversized, nil
		}
	}
}
