package analyzers

import (
	"context"
	"encoding/json"
	"strings"
)

const pylintRemedy = "pip install pylint"

// PylintIssue is one diagnostic as emitted by pylint's JSON output, one
// object per line of stdout.
type PylintIssue struct {
	Type      string `json:"type"`
	Module    string `json:"module"`
	Obj       string `json:"obj"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Path      string `json:"path"`
	Symbol    string `json:"symbol"`
	Message   string `json:"message"`
	MessageID string `json:"message-id"`
}

// PylintResult is the outcome of one pylint invocation.
type PylintResult struct {
	Status
	Issues []PylintIssue `json:"issues"`
}

// Count returns the number of diagnostics.
func (p *PylintResult) Count() int { return len(p.Issues) }

// Pylint runs the pylint style/quality linter over the snippet.
func (r *Runner) Pylint(ctx context.Context, code string) *PylintResult {
	out, err := r.runOnSnippet(ctx, code, "review-*.py", func(path string) []string {
		return []string{"pylint", path, "--output-format=json"}
	})
	res := &PylintResult{Status: Status{RawOutput: out.stdout, RawStderr: out.stderr}}
	if err != nil {
		res.Error = r.failureMessage(ToolPylint, pylintRemedy, err)
		return res
	}
	res.Success = true
	res.Issues = parsePylintOutput(out.stdout)
	return res
}

// parsePylintOutput parses line-delimited JSON objects. Lines that are not
// valid JSON (pylint banners, score footers) are skipped, never fatal.
func parsePylintOutput(stdout string) []PylintIssue {
	var issues []PylintIssue
	for _, line := range strings.Split(strings.TrimSpace(stdout), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, ","))
		// Tolerate a pretty-printed array by ignoring its brackets.
		if line == "" || line == "[" || line == "]" {
			continue
		}
		var issue PylintIssue
		if err := json.Unmarshal([]byte(line), &issue); err != nil {
			continue
		}
		issues = append(issues, issue)
	}
	return issues
}
