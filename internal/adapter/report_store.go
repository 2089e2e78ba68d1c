package adapter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	m "htmlreport.dev/pkg/htmlreport/internal/model"
)

// StdoutPath selects standard output as the report destination.
const StdoutPath m.Path = "-"

// ReportStore writes finished report documents.
type ReportStore interface {
	SaveReport(path m.Path, document []byte) error
}

type reportStore struct {
	stdout io.Writer
}

// NewReportStore creates a ReportStore writing files, or stdout for "-".
func NewReportStore(stdout io.Writer) ReportStore {
	return &reportStore{stdout: stdout}
}

// SaveReport writes document in one call, creating parent directories.
func (s *reportStore) SaveReport(path m.Path, document []byte) error {
	if path == StdoutPath || path == "" {
		if _, err := s.stdout.Write(document); err != nil {
			return fmt.Errorf("write report to stdout: %w", err)
		}

		return nil
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			slog.Error("failed to create report directory", "dir", dir, "error", err)
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	//nolint:gosec // reports are shared artifacts
	if err := os.WriteFile(string(path), document, 0o644); err != nil {
		slog.Error("failed to write report", "path", path, "error", err)
		return fmt.Errorf("write report: %w", err)
	}

	slog.Debug("report written", "path", path, "bytes", len(document))

	return nil
}
