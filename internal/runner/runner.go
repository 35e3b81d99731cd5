// Package runner executes the path enumeration script through the host
// command interpreter with a bounded timeout.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/pathsnap/pathsnap/internal/apperr"
)

// DefaultTimeout bounds a single script execution.
const DefaultTimeout = 10 * time.Second

// Runner invokes scripts through the platform command interpreter
// (/bin/sh on Unix, cmd.exe /c on Windows).
type Runner struct {
	Timeout time.Duration // zero means DefaultTimeout
}

// Run executes script with the working directory set to dir and returns the
// captured stdout. The script path is stat-checked before execution; a
// missing script yields apperr.ErrNotFound and an elapsed deadline
// apperr.ErrTimeout. A non-zero exit status is not an error: whatever the
// script printed is still returned.
func (r *Runner) Run(ctx context.Context, script, dir string) (string, error) {
	if _, err := os.Stat(script); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("script not found at %s: %w", script, apperr.ErrNotFound)
		}
		return "", fmt.Errorf("stat script %s: %w", script, err)
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := append(interpreter(), script)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("script execution exceeded %s: %w", timeout, apperr.ErrTimeout)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.String(), nil
	}
	if err != nil {
		return "", fmt.Errorf("run script %s: %w", script, err)
	}
	return stdout.String(), nil
}

func interpreter() []string {
	if runtime.GOOS == "windows" {
		return []string{"cmd.exe", "/c"}
	}
	return []string{"/bin/sh"}
}
