package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AnanyaVY/code-reviewer/internal/analyzers"
	"github.com/AnanyaVY/code-reviewer/internal/review"
)

func pythonResult() *review.Result {
	sa := review.StaticAnalysis{
		Pylint: &analyzers.PylintResult{
			Status: analyzers.Status{Success: true},
			Issues: []analyzers.PylintIssue{
				{Type: "convention", Line: 1, Message: "Missing module docstring", Symbol: "missing-module-docstring"},
				{Type: "warning", Line: 3, Message: "Unused variable 'x'", Symbol: "unused-variable"},
			},
		},
		Bandit: &analyzers.BanditResult{
			Status: analyzers.Status{Success: true},
			Report: analyzers.BanditReport{Results: []analyzers.BanditIssue{
				{LineNumber: 2, IssueText: "Use of exec detected.", Severity: "MEDIUM", Confidence: "HIGH", TestName: "exec_used", TestID: "B102"},
			}},
		},
	}
	return &review.Result{
		Tool:      "codereview",
		Version:   "1.0",
		Language:  review.LangPython,
		Static:    sa,
		AI:        review.AIAnalysis{Success: true, Feedback: "This function shells out without validation.", Model: "Salesforce/codet5-base"},
		Summary:   review.ComputeSummary(sa),
		Timestamp: "2025-06-01T12:00:00Z",
	}
}

func TestTextWriter_SectionOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, pythonResult()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()

	markers := []string{
		"AI-Powered Code Review Report",
		"Generated: 2025-06-01T12:00:00Z",
		"Language: Python",
		"=== STATIC ANALYSIS RESULTS ===",
		"--- PYLINT RESULTS ---",
		"Line 1: Missing module docstring",
		"Line 3: Unused variable 'x'",
		"--- BANDIT SECURITY RESULTS ---",
		"Line 2: Use of exec detected. (MEDIUM)",
		"=== AI ANALYSIS RESULTS ===",
		"Model: Salesforce/codet5-base",
		"This function shells out without validation.",
	}
	pos := 0
	for _, m := range markers {
		idx := strings.Index(out[pos:], m)
		if idx < 0 {
			t.Fatalf("marker %q missing or out of order in report:\n%s", m, out)
		}
		pos += idx + len(m)
	}
	if strings.Contains(out, "ESLINT") {
		t.Error("absent eslint adapter must not produce a section")
	}
}

func TestTextWriter_FailedAnalyzer(t *testing.T) {
	sa := review.StaticAnalysis{
		Pylint: &analyzers.PylintResult{Status: analyzers.Status{Success: false, Error: "pylint not found. Run: pip install pylint"}},
		Bandit: &analyzers.BanditResult{Status: analyzers.Status{Success: true}},
	}
	res := &review.Result{
		Language: review.LangPython,
		Static:   sa,
		AI:       review.AIAnalysis{Success: true, Feedback: "fine", Model: "m"},
		Summary:  review.ComputeSummary(sa),
	}

	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, res); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "pip install pylint") {
		t.Error("failed analyzer should surface its remediation message")
	}
	if !strings.Contains(out, "No security issues found.") {
		t.Error("successful empty bandit result should say so")
	}
}

func TestTextWriter_AIFailureDemotedToContent(t *testing.T) {
	res := pythonResult()
	res.AI = review.AIAnalysis{
		Success:  false,
		Feedback: "AI analysis unavailable",
		Model:    "Salesforce/codet5-base",
		Error:    "model backend unavailable: inference server not reachable at http://127.0.0.1:8080",
	}

	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, res); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(buf.String(), "inference server not reachable") {
		t.Error("AI failure should be rendered as the feedback content")
	}
}

func TestTextWriter_JavaScript(t *testing.T) {
	sa := review.StaticAnalysis{
		ESLint: &analyzers.ESLintResult{
			Status: analyzers.Status{Success: true},
			Files: []analyzers.ESLintFile{{
				FilePath: "/tmp/review-1.js",
				Messages: []analyzers.ESLintMessage{
					{RuleID: "no-undef", Severity: 2, Message: "'a' is not defined.", Line: 1},
				},
			}},
		},
	}
	res := &review.Result{
		Language: review.LangJavaScript,
		Static:   sa,
		AI:       review.AIAnalysis{Success: true, Feedback: "ok", Model: "m"},
		Summary:  review.ComputeSummary(sa),
	}

	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, res); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "--- ESLINT RESULTS ---") {
		t.Error("eslint section missing")
	}
	if !strings.Contains(out, "Line 1: 'a' is not defined.") {
		t.Error("eslint diagnostic line missing")
	}
	if strings.Contains(out, "PYLINT") || strings.Contains(out, "BANDIT") {
		t.Error("python-only sections must be absent for JavaScript")
	}
}
