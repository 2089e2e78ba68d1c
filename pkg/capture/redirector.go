package capture

import (
	"bytes"
	"io"
	"sync"
)

// Redirector is a write sink that stands in for stdout or stderr and
// forwards normalized text to a swappable target.
type Redirector struct {
	mu     sync.Mutex
	target io.Writer
}

// NewRedirector creates a Redirector bound to target. A nil target discards.
func NewRedirector(target io.Writer) *Redirector {
	return &Redirector{target: target}
}

// SetTarget rebinds the backing writer without recreating the proxy.
func (r *Redirector) SetTarget(target io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.target = target
}

// Target returns the current backing writer.
func (r *Redirector) Target() io.Writer {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.target
}

// Write appends the normalized chunk to the target. Malformed byte
// sequences never produce an error; only a failing target does.
func (r *Redirector) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.target == nil {
		return len(p), nil
	}

	if _, err := io.WriteString(r.target, NormalizeToText(p)); err != nil {
		return 0, err
	}

	return len(p), nil
}

// WriteString implements io.StringWriter.
func (r *Redirector) WriteString(s string) (int, error) {
	return r.Write([]byte(s))
}

// WriteLines writes each chunk in order. No separators are added.
func (r *Redirector) WriteLines(lines []string) error {
	for _, line := range lines {
		if _, err := r.WriteString(line); err != nil {
			return err
		}
	}

	return nil
}

// Flush forwards to the target's Flush when it has one.
func (r *Redirector) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.target.(interface{ Flush() error }); ok {
		return f.Flush()
	}

	return nil
}

// Buffer is an in-memory capture target that is safe to share between
// the stdout and stderr proxies.
type Buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

// String returns everything written so far.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Len()
}
