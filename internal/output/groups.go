package output

import (
	"github.com/AnanyaVY/code-reviewer/internal/analyzers"
)

// Grouping here is purely presentational; the underlying results stay flat
// and tool-shaped. The markdown writer and the web UI share these views.

// PylintGroup collects pylint issues of one message type (convention,
// warning, error, refactor), in first-seen order.
type PylintGroup struct {
	Type   string
	Issues []analyzers.PylintIssue
}

// GroupPylintByType groups a successful pylint result by message type.
func GroupPylintByType(p *analyzers.PylintResult) []PylintGroup {
	if p == nil {
		return nil
	}
	index := make(map[string]int)
	var groups []PylintGroup
	for _, issue := range p.Issues {
		typ := issue.Type
		if typ == "" {
			typ = "unknown"
		}
		i, ok := index[typ]
		if !ok {
			i = len(groups)
			index[typ] = i
			groups = append(groups, PylintGroup{Type: typ})
		}
		groups[i].Issues = append(groups[i].Issues, issue)
	}
	return groups
}

// ESLintMessageGroup collects identical messages within one file.
type ESLintMessageGroup struct {
	Message  string
	RuleID   string
	Messages []analyzers.ESLintMessage
}

// ESLintFileGroup is one linted file with its messages grouped by text.
type ESLintFileGroup struct {
	FilePath string
	Count    int
	Groups   []ESLintMessageGroup
}

// GroupESLintByFile groups a successful ESLint result by file, sub-grouped
// by message text, both in first-seen order.
func GroupESLintByFile(e *analyzers.ESLintResult) []ESLintFileGroup {
	if e == nil {
		return nil
	}
	var files []ESLintFileGroup
	for _, f := range e.Files {
		fg := ESLintFileGroup{FilePath: f.FilePath, Count: len(f.Messages)}
		index := make(map[string]int)
		for _, msg := range f.Messages {
			i, ok := index[msg.Message]
			if !ok {
				i = len(fg.Groups)
				index[msg.Message] = i
				fg.Groups = append(fg.Groups, ESLintMessageGroup{Message: msg.Message, RuleID: msg.RuleID})
			}
			fg.Groups[i].Messages = append(fg.Groups[i].Messages, msg)
		}
		files = append(files, fg)
	}
	return files
}

// ESLintSeverityLabel translates ESLint's numeric severity (1|2).
func ESLintSeverityLabel(severity int) string {
	if severity == 2 {
		return "Error"
	}
	return "Warning"
}
