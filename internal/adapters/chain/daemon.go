package chain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Runner executes a chain daemon command and returns its stdout
type Runner interface {
	Run(ctx context.Context, stdin io.Reader, name string, args ...string) ([]byte, error)
}

// ExecRunner runs daemon commands as child processes. Stdout and stderr are
// kept apart so JSON output can be parsed while diagnostics go to the error.
type ExecRunner struct {
	log *slog.Logger
}

// NewExecRunner creates a new ExecRunner
func NewExecRunner(log *slog.Logger) *ExecRunner {
	return &ExecRunner{log: log.With("component", "ExecRunner")}
}

// Run executes name with args
func (r *ExecRunner) Run(ctx context.Context, stdin io.Reader, name string, args ...string) ([]byte, error) {
	start := time.Now()
	r.log.Debug("running daemon command", "cmd", name, "args", redactArgs(args))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	duration := time.Since(start)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		r.log.Debug("daemon command failed", "cmd", name, "error", err, "duration", duration)
		return nil, fmt.Errorf("%s %s failed: %w: %s", name, firstArgs(args), err, msg)
	}

	r.log.Debug("daemon command completed", "cmd", name, "duration", duration)
	return stdout.Bytes(), nil
}

// firstArgs names the subcommand for error messages, e.g. "tx wasm store"
func firstArgs(args []string) string {
	n := 0
	for n < len(args) && n < 3 && !strings.HasPrefix(args[n], "-") {
		n++
	}
	return strings.Join(args[:n], " ")
}

// redactArgs hides message payloads, which may be large, from debug logs
func redactArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if len(a) > 256 {
			a = a[:64] + "..."
		}
		out[i] = a
	}
	return out
}
