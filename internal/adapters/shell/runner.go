// Package shell provides the child process runner adapter.
package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/kmpinstall/internal/core/domain"
	"go.trai.ch/kmpinstall/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec.
type Runner struct {
	// Stdin, Stdout and Stderr are the parent streams handed to children in
	// the inherit and tee modes. They default to the process streams and are
	// overridable for tests.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a Runner bound to the process's standard streams.
func NewRunner() *Runner {
	return &Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes the command, streaming captured output through a line
// reassembly buffer so the sink only ever sees whole lines, and waits for
// the child before returning its exit status.
func (r *Runner) Run(ctx context.Context, c ports.Command) (int, error) {
	if len(c.Argv) == 0 {
		return -1, zerr.With(domain.ErrCommandFailed, "reason", "empty argv")
	}

	cmd := exec.CommandContext(ctx, c.Argv[0], c.Argv[1:]...) //nolint:gosec // argv assembled by the adapters

	lines := &lineWriter{sink: c.Line}
	switch c.Mode {
	case ports.IOCapture:
		// Stdin and stderr stay nil: os/exec wires them to the null device,
		// so the child cannot block on a prompt.
		cmd.Stdout = lines
	case ports.IOCaptureTee:
		cmd.Stdin = r.Stdin
		cmd.Stdout = io.MultiWriter(r.Stdout, lines)
		cmd.Stderr = r.Stderr
	case ports.IOInherit:
		cmd.Stdin = r.Stdin
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
	}

	err := cmd.Run()
	// Flush any unterminated final line once the child is reaped.
	lines.Close()

	if err == nil {
		return 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return -1, zerr.With(zerr.Wrap(err, "failed to run command"), "command", c.Argv[0])
}

// lineWriter reassembles write chunks into whole lines for the sink. Output
// arrives in arbitrary fixed-size chunks; a line split across two writes is
// buffered until its newline shows up.
type lineWriter struct {
	sink func(string)
	buf  []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	if w.sink == nil {
		return len(p), nil
	}
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Close flushes a trailing line that never got its newline.
func (w *lineWriter) Close() {
	if w.sink != nil && len(w.buf) > 0 {
		w.emit(w.buf)
	}
	w.buf = nil
}

func (w *lineWriter) emit(line []byte) {
	w.sink(strings.TrimSuffix(string(line), "\r"))
}
