package output

import (
	"io"

	"github.com/AnanyaVY/code-reviewer/internal/review"
)

// MarkdownWriter outputs the grouped per-tool view: pylint by message type,
// bandit as an enumerated list with severity and confidence, eslint by file
// and message.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, res *review.Result) error {
	ew := &errWriter{w: w}

	ew.printf("## Code Review — %s\n\n", res.Language)
	if res.Summary.Total > 0 {
		ew.printf("**%d issue(s) across all analyses** (pylint: %d, bandit: %d, eslint: %d)\n\n",
			res.Summary.Total, res.Summary.Pylint, res.Summary.Bandit, res.Summary.ESLint)
	} else {
		ew.printf("No issues found in static analysis.\n\n")
	}

	if p := res.Static.Pylint; p != nil {
		ew.printf("### Pylint\n\n")
		if !p.Success {
			ew.printf("> %s\n\n", p.Error)
		} else if len(p.Issues) == 0 {
			ew.printf("No pylint issues found.\n\n")
		} else {
			for _, group := range GroupPylintByType(p) {
				ew.printf("#### %s (%d)\n\n", group.Type, len(group.Issues))
				for _, issue := range group.Issues {
					ew.printf("- Line %d: %s (`%s`)\n", issue.Line, issue.Message, issue.Symbol)
				}
				ew.printf("\n")
			}
		}
	}

	if b := res.Static.Bandit; b != nil {
		ew.printf("### Bandit security findings\n\n")
		if !b.Success {
			ew.printf("> %s\n\n", b.Error)
		} else if len(b.Report.Results) == 0 {
			ew.printf("No security issues found.\n\n")
		} else {
			for i, issue := range b.Report.Results {
				ew.printf("%d. **%s** — severity %s, confidence %s\n", i+1, issue.TestName, issue.Severity, issue.Confidence)
				ew.printf("   Line %d: %s\n", issue.LineNumber, issue.IssueText)
				if issue.Code != "" {
					ew.printf("   `%s`\n", issue.Code)
				}
			}
			ew.printf("\n")
		}
	}

	if e := res.Static.ESLint; e != nil {
		ew.printf("### ESLint\n\n")
		if !e.Success {
			ew.printf("> %s\n\n", e.Error)
		} else if e.Count() == 0 {
			ew.printf("No ESLint issues found.\n\n")
		} else {
			for _, file := range GroupESLintByFile(e) {
				ew.printf("#### %s (%d issues)\n\n", file.FilePath, file.Count)
				for _, group := range file.Groups {
					ew.printf("- **%s**", group.Message)
					if group.RuleID != "" {
						ew.printf(" (`%s`)", group.RuleID)
					}
					ew.printf("\n")
					for _, msg := range group.Messages {
						ew.printf("  - Line %d, %s\n", msg.Line, ESLintSeverityLabel(msg.Severity))
					}
				}
				ew.printf("\n")
			}
		}
	}

	ew.printf("### AI commentary (%s)\n\n", res.AI.Model)
	if res.AI.Success {
		ew.printf("%s\n", res.AI.Feedback)
	} else {
		ew.printf("> %s\n", res.AI.Error)
	}

	ew.printf("\n*Reviewed in %dms (static: %dms, model: %dms)*\n",
		res.Timing.TotalMs, res.Timing.StaticMs, res.Timing.ModelMs)

	return ew.err
}
