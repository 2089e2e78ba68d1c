package capture

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// ErrAlreadyInstalled is returned when process streams are installed twice
// without an intervening Restore.
var ErrAlreadyInstalled = errors.New("process streams already installed")

const pumpChunkSize = 32 * 1024

// ProcessStreams substitutes os.Stdout and os.Stderr with pipes whose data
// is pumped into caller-supplied writers. Code that prints through the
// global streams (fmt.Println, log with os.Stderr) is captured that way.
//
// Only one substitution may be active per process at a time.
type ProcessStreams struct {
	mu        sync.Mutex
	installed bool
	savedOut  *os.File
	savedErr  *os.File
	pipes     []*os.File
	pumps     sync.WaitGroup
}

// NewProcessStreams returns an idle ProcessStreams.
func NewProcessStreams() *ProcessStreams {
	return &ProcessStreams{}
}

// Install saves the real streams and replaces them with pipes feeding
// stdout and stderr.
func (p *ProcessStreams) Install(stdout, stderr io.Writer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.installed {
		return ErrAlreadyInstalled
	}

	outR, outW, err := os.Pipe()
	if err != nil {
		slog.Error("failed to create stdout pipe", "error", err)
		return fmt.Errorf("create stdout pipe: %w", err)
	}

	errR, errW, err := os.Pipe()
	if err != nil {
		_ = outR.Close()
		_ = outW.Close()

		slog.Error("failed to create stderr pipe", "error", err)

		return fmt.Errorf("create stderr pipe: %w", err)
	}

	p.savedOut, p.savedErr = os.Stdout, os.Stderr
	os.Stdout, os.Stderr = outW, errW
	p.pipes = []*os.File{outW, errW}
	p.installed = true

	p.pump(outR, stdout)
	p.pump(errR, stderr)

	slog.Debug("installed process stream capture")

	return nil
}

// Restore reinstates the saved streams and waits until everything written
// to the pipes has reached the target writers. Calling it again, or
// without a prior Install, is a no-op.
func (p *ProcessStreams) Restore() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.installed {
		return
	}

	os.Stdout, os.Stderr = p.savedOut, p.savedErr

	for _, w := range p.pipes {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close capture pipe", "error", err)
		}
	}

	p.pumps.Wait()

	p.pipes = nil
	p.savedOut, p.savedErr = nil, nil
	p.installed = false

	slog.Debug("restored process streams")
}

// Installed reports whether a substitution is active.
func (p *ProcessStreams) Installed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.installed
}

func (p *ProcessStreams) pump(r *os.File, w io.Writer) {
	p.pumps.Add(1)

	go func() {
		defer p.pumps.Done()

		defer func() {
			if err := r.Close(); err != nil {
				slog.Warn("failed to close capture pipe reader", "error", err)
			}
		}()

		copyRunes(w, r)
	}()
}

// copyRunes copies r to w without splitting a UTF-8 sequence across two
// writes, so the receiving normalizer sees whole runes.
func copyRunes(w io.Writer, r io.Reader) {
	buf := make([]byte, pumpChunkSize)

	var pending []byte

	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := append(pending, buf[:n]...)

			complete, rest := splitIncomplete(chunk)
			if len(complete) > 0 && w != nil {
				_, _ = w.Write(complete)
			}

			pending = append([]byte(nil), rest...)
		}

		if err != nil {
			if len(pending) > 0 && w != nil {
				_, _ = w.Write(pending)
			}

			if !errors.Is(err, io.EOF) {
				slog.Warn("capture pipe read failed", "error", err)
			}

			return
		}
	}
}
