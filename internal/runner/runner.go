// Package runner executes a target Python file in an isolated subprocess
// bounded by a timeout and classifies the outcome: completed, threw, or
// timed out. Running arbitrary code is inherently unsafe; process isolation
// plus the deadline is the only containment applied here.
package runner

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/pythrow/pythrow/internal/types"
)

// DefaultTimeout matches the interpreter-side convention of 30s per run.
const DefaultTimeout = 30 * time.Second

// Options controls one dynamic execution.
type Options struct {
	Python  string        // interpreter path; resolved via ResolvePython when empty
	Timeout time.Duration // 0 means DefaultTimeout
	Dir     string        // working directory for the target
}

// ResolvePython picks the interpreter: explicit > $PYTHROW_PYTHON > python3.
func ResolvePython(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("PYTHROW_PYTHON"); env != "" {
		return env
	}
	return "python3"
}

// Run executes the target file under the configured interpreter. Exceptions
// raised by the target are captured in the result, never returned as errors;
// only failures to launch the interpreter are.
func Run(ctx context.Context, target string, opts Options) (types.DynamicResult, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(ctx, ResolvePython(opts.Python), target)
	cmd.Dir = opts.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := types.DynamicResult{
		Stdout:   strings.TrimSpace(stdout.String()),
		Stderr:   strings.TrimSpace(stderr.String()),
		Duration: time.Since(start),
	}

	if ctx.Err() == context.DeadlineExceeded {
		res.TimedOut = true
		res.ExitCode = 124
		return res, nil
	}

	if err == nil {
		return res, nil
	}

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		// Interpreter missing or not executable: the analyzer itself failed.
		return res, err
	}

	res.Threw = true
	res.ExitCode = exitErr.ExitCode()
	res.ExcType, res.ExcMessage = ParseTraceback(res.Stderr)
	return res, nil
}
