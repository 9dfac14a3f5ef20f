package output

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/AnanyaVY/code-reviewer/internal/analyzers"
	"github.com/AnanyaVY/code-reviewer/internal/review"
)

// SARIFWriter outputs the static-analysis diagnostics in SARIF v2.1.0, one
// run per tool. This is the single place the heterogeneous tool shapes are
// normalized; the AI commentary has no SARIF representation and is omitted.
type SARIFWriter struct{}

func (s *SARIFWriter) Write(w io.Writer, res *review.Result) error {
	sarif := buildSARIF(res)
	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling SARIF: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing SARIF: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

// SARIF schema types (v2.1.0)

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name  string      `json:"name"`
	Rules []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

func buildSARIF(res *review.Result) sarifLog {
	var runs []sarifRun
	if p := res.Static.Pylint; p != nil && p.Success {
		runs = append(runs, pylintRun(p))
	}
	if b := res.Static.Bandit; b != nil && b.Success {
		runs = append(runs, banditRun(b))
	}
	if e := res.Static.ESLint; e != nil && e.Success {
		runs = append(runs, eslintRun(e, res.Language))
	}
	return sarifLog{
		Version: "2.1.0",
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		Runs:    runs,
	}
}

func pylintRun(p *analyzers.PylintResult) sarifRun {
	rb := newRuleBook()
	results := make([]sarifResult, 0, len(p.Issues))
	for _, issue := range p.Issues {
		ruleID := issue.Symbol
		if ruleID == "" {
			ruleID = issue.MessageID
		}
		rb.add(ruleID, issue.Type)
		results = append(results, sarifResult{
			RuleID:    ruleID,
			Level:     pylintLevel(issue.Type),
			Message:   sarifMessage{Text: issue.Message},
			Locations: snippetLocation(issue.Path, "snippet.py", issue.Line),
		})
	}
	return sarifRun{Tool: sarifTool{Driver: sarifDriver{Name: analyzers.ToolPylint, Rules: rb.rules}}, Results: results}
}

func banditRun(b *analyzers.BanditResult) sarifRun {
	rb := newRuleBook()
	results := make([]sarifResult, 0, len(b.Report.Results))
	for _, issue := range b.Report.Results {
		ruleID := issue.TestID
		if ruleID == "" {
			ruleID = issue.TestName
		}
		rb.add(ruleID, issue.TestName)
		results = append(results, sarifResult{
			RuleID:    ruleID,
			Level:     banditLevel(issue.Severity),
			Message:   sarifMessage{Text: issue.IssueText},
			Locations: snippetLocation("", "snippet.py", issue.LineNumber),
		})
	}
	return sarifRun{Tool: sarifTool{Driver: sarifDriver{Name: analyzers.ToolBandit, Rules: rb.rules}}, Results: results}
}

func eslintRun(e *analyzers.ESLintResult, _ review.Language) sarifRun {
	rb := newRuleBook()
	var results []sarifResult
	for _, file := range e.Files {
		for _, msg := range file.Messages {
			rb.add(msg.RuleID, msg.RuleID)
			results = append(results, sarifResult{
				RuleID:    msg.RuleID,
				Level:     eslintLevel(msg.Severity),
				Message:   sarifMessage{Text: msg.Message},
				Locations: snippetLocation(file.FilePath, "snippet.js", msg.Line),
			})
		}
	}
	if results == nil {
		results = []sarifResult{}
	}
	return sarifRun{Tool: sarifTool{Driver: sarifDriver{Name: analyzers.ToolESLint, Rules: rb.rules}}, Results: results}
}

// ruleBook deduplicates rule registrations in insertion order.
type ruleBook struct {
	seen  map[string]bool
	rules []sarifRule
}

func newRuleBook() *ruleBook {
	return &ruleBook{seen: make(map[string]bool), rules: []sarifRule{}}
}

func (rb *ruleBook) add(id, description string) {
	if id == "" || rb.seen[id] {
		return
	}
	rb.seen[id] = true
	rb.rules = append(rb.rules, sarifRule{ID: id, ShortDescription: sarifMessage{Text: description}})
}

func snippetLocation(path, fallback string, line int) []sarifLocation {
	uri := fallback
	if path != "" {
		// The tools saw a temporary file; only its base name is meaningful.
		uri = filepath.Base(path)
	}
	if line <= 0 {
		line = 1
	}
	return []sarifLocation{{
		PhysicalLocation: sarifPhysicalLocation{
			ArtifactLocation: sarifArtifactLocation{URI: uri},
			Region:           sarifRegion{StartLine: line},
		},
	}}
}

func pylintLevel(messageType string) string {
	switch messageType {
	case "error", "fatal":
		return "error"
	case "warning":
		return "warning"
	default:
		return "note"
	}
}

func banditLevel(severity string) string {
	switch severity {
	case "HIGH":
		return "error"
	case "MEDIUM":
		return "warning"
	default:
		return "note"
	}
}

func eslintLevel(severity int) string {
	if severity == 2 {
		return "error"
	}
	return "warning"
}
