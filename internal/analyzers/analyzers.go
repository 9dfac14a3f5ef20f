package analyzers

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Tool names in their fixed reporting order.
const (
	ToolPylint = "pylint"
	ToolBandit = "bandit"
	ToolESLint = "eslint"
)

// DefaultTimeout bounds each tool subprocess.
const DefaultTimeout = 30 * time.Second

// Sentinel errors for subprocess failures. Adapters translate these into
// result error strings; they never escape the package.
var (
	// ErrToolNotInstalled indicates the tool executable was not found in PATH.
	ErrToolNotInstalled = errors.New("tool not installed")

	// ErrToolTimeout indicates the tool exceeded the configured timeout.
	ErrToolTimeout = errors.New("tool timed out")
)

// Status is the part of every analyzer result that is common across tools.
type Status struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	RawOutput string `json:"rawOutput,omitempty"`
	RawStderr string `json:"rawStderr,omitempty"`
}

// Runner invokes the external analysis tools. The zero value is not usable;
// construct with NewRunner.
type Runner struct {
	timeout time.Duration
	log     *zap.Logger
}

// NewRunner creates a Runner with the given subprocess timeout. A
// non-positive timeout falls back to DefaultTimeout; a nil logger is
// replaced with a no-op logger.
func NewRunner(timeout time.Duration, log *zap.Logger) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{timeout: timeout, log: log}
}

// Timeout returns the configured subprocess timeout.
func (r *Runner) Timeout() time.Duration { return r.timeout }

// failureMessage maps a subprocess error to the user-facing error string for
// the given tool. remedy is the install command suggested when the tool
// executable cannot be located.
func (r *Runner) failureMessage(tool, remedy string, err error) string {
	switch {
	case errors.Is(err, ErrToolTimeout):
		return fmt.Sprintf("%s timed out after %s", tool, r.timeout)
	case errors.Is(err, ErrToolNotInstalled):
		return fmt.Sprintf("%s not found. Run: %s", tool, remedy)
	default:
		return err.Error()
	}
}
