package analyzers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

// rawOutput holds the captured streams of a tool subprocess.
type rawOutput struct {
	stdout string
	stderr string
}

// runOnSnippet writes code to a temporary file matching pattern, invokes the
// tool command built by argv, and captures its output. The temporary file is
// removed on every exit path. Nonzero exit codes are not treated as failures;
// linters exit nonzero whenever they report issues.
func (r *Runner) runOnSnippet(ctx context.Context, code, pattern string, argv func(path string) []string) (rawOutput, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return rawOutput{}, fmt.Errorf("creating temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(code); err != nil {
		f.Close()
		return rawOutput{}, fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return rawOutput{}, fmt.Errorf("closing temp file: %w", err)
	}

	cctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	args := argv(path)
	cmd := exec.CommandContext(cctx, args[0], args[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	out := rawOutput{stdout: stdout.String(), stderr: stderr.String()}

	r.log.Debug("tool finished",
		zap.String("tool", args[0]),
		zap.Int("stdoutBytes", stdout.Len()),
		zap.Error(runErr),
	)

	if runErr == nil {
		return out, nil
	}
	if errors.Is(cctx.Err(), context.DeadlineExceeded) {
		return out, ErrToolTimeout
	}
	if errors.Is(runErr, exec.ErrNotFound) {
		return out, ErrToolNotInstalled
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		// Exit code carries no signal; the JSON on stdout does.
		return out, nil
	}
	return out, runErr
}
