package analyzers

import (
	"context"
	"encoding/json"
)

const banditRemedy = "pip install bandit"

// BanditIssue is one security finding from bandit's JSON report.
type BanditIssue struct {
	LineNumber int    `json:"line_number"`
	IssueText  string `json:"issue_text"`
	Severity   string `json:"issue_severity"`
	Confidence string `json:"issue_confidence"`
	TestName   string `json:"test_name"`
	TestID     string `json:"test_id"`
	Code       string `json:"code"`
}

// BanditReport is the single JSON document bandit writes to stdout.
type BanditReport struct {
	GeneratedAt string        `json:"generated_at"`
	Results     []BanditIssue `json:"results"`
}

// BanditResult is the outcome of one bandit invocation.
type BanditResult struct {
	Status
	Report BanditReport `json:"report"`
}

// Count returns the number of diagnostics.
func (b *BanditResult) Count() int { return len(b.Report.Results) }

// Bandit runs the bandit security linter over the snippet.
func (r *Runner) Bandit(ctx context.Context, code string) *BanditResult {
	out, err := r.runOnSnippet(ctx, code, "review-*.py", func(path string) []string {
		return []string{"bandit", "-f", "json", "-r", path}
	})
	res := &BanditResult{Status: Status{RawOutput: out.stdout, RawStderr: out.stderr}}
	if err != nil {
		res.Error = r.failureMessage(ToolBandit, banditRemedy, err)
		return res
	}
	res.Success = true
	// Unparseable stdout degrades to an empty report; the raw text stays
	// available for debugging.
	var report BanditReport
	if err := json.Unmarshal([]byte(out.stdout), &report); err == nil {
		res.Report = report
	}
	return res
}
