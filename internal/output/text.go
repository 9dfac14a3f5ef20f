package output

import (
	"io"

	"github.com/AnanyaVY/code-reviewer/internal/review"
)

// TextWriter outputs the flat plain-text report. Section order is part of the
// contract: static analysis first (pylint, bandit, eslint), AI last. Every
// diagnostic line and the AI feedback appear verbatim.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, res *review.Result) error {
	ew := &errWriter{w: w}

	ew.printf("AI-Powered Code Review Report\n")
	ew.printf("Generated: %s\n", res.Timestamp)
	ew.printf("Language: %s\n", res.Language)

	ew.printf("\n=== STATIC ANALYSIS RESULTS ===\n")

	if p := res.Static.Pylint; p != nil {
		ew.printf("\n--- PYLINT RESULTS ---\n")
		switch {
		case !p.Success:
			ew.printf("pylint unavailable: %s\n", p.Error)
		case len(p.Issues) == 0:
			ew.printf("No pylint issues found.\n")
		default:
			for _, issue := range p.Issues {
				ew.printf("Line %d: %s\n", issue.Line, issue.Message)
			}
		}
	}

	if b := res.Static.Bandit; b != nil {
		ew.printf("\n--- BANDIT SECURITY RESULTS ---\n")
		switch {
		case !b.Success:
			ew.printf("bandit unavailable: %s\n", b.Error)
		case len(b.Report.Results) == 0:
			ew.printf("No security issues found.\n")
		default:
			for _, issue := range b.Report.Results {
				ew.printf("Line %d: %s (%s)\n", issue.LineNumber, issue.IssueText, issue.Severity)
			}
		}
	}

	if e := res.Static.ESLint; e != nil {
		ew.printf("\n--- ESLINT RESULTS ---\n")
		switch {
		case !e.Success:
			ew.printf("eslint unavailable: %s\n", e.Error)
		case e.Count() == 0:
			ew.printf("No ESLint issues found.\n")
		default:
			for _, file := range e.Files {
				for _, msg := range file.Messages {
					ew.printf("Line %d: %s\n", msg.Line, msg.Message)
				}
			}
		}
	}

	ew.printf("\n=== AI ANALYSIS RESULTS ===\n")
	ew.printf("Model: %s\n\n", res.AI.Model)
	// A failed commentary call is demoted to feedback-style text here.
	if res.AI.Success {
		ew.printf("%s\n", res.AI.Feedback)
	} else {
		ew.printf("%s\n", res.AI.Error)
	}

	return ew.err
}
