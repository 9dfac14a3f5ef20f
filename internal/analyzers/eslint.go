package analyzers

import (
	"context"
	"encoding/json"
)

const eslintRemedy = "install Node.js, then: npm install -g eslint"

// ESLintMessage is one diagnostic inside a per-file ESLint result.
// Severity is 1 for warnings and 2 for errors.
type ESLintMessage struct {
	RuleID   string `json:"ruleId"`
	Severity int    `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// ESLintFile is one entry of the JSON array ESLint emits, one per linted file.
type ESLintFile struct {
	FilePath     string          `json:"filePath"`
	ErrorCount   int             `json:"errorCount"`
	WarningCount int             `json:"warningCount"`
	Messages     []ESLintMessage `json:"messages"`
}

// ESLintResult is the outcome of one ESLint invocation.
type ESLintResult struct {
	Status
	Files []ESLintFile `json:"files"`
}

// Count returns the number of diagnostics across all files.
func (e *ESLintResult) Count() int {
	n := 0
	for _, f := range e.Files {
		n += len(f.Messages)
	}
	return n
}

// ESLint runs the ESLint JS linter over the snippet via the npx package
// runner, so a project-local or globally installed eslint both work.
func (r *Runner) ESLint(ctx context.Context, code string) *ESLintResult {
	out, err := r.runOnSnippet(ctx, code, "review-*.js", func(path string) []string {
		return []string{"npx", "eslint", path, "--format=json"}
	})
	res := &ESLintResult{Status: Status{RawOutput: out.stdout, RawStderr: out.stderr}}
	if err != nil {
		res.Error = r.failureMessage(ToolESLint, eslintRemedy, err)
		return res
	}
	res.Success = true
	// Unparseable stdout (npx noise, missing eslint package) degrades to an
	// empty result set.
	var files []ESLintFile
	if err := json.Unmarshal([]byte(out.stdout), &files); err == nil {
		res.Files = files
	}
	return res
}
