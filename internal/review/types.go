package review

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AnanyaVY/code-reviewer/internal/analyzers"
)

// Language identifies the declared language of a snippet.
type Language string

const (
	LangPython     Language = "Python"
	LangJavaScript Language = "JavaScript"
)

// SupportedLanguages returns the languages the reviewer accepts, in display order.
func SupportedLanguages() []Language {
	return []Language{LangPython, LangJavaScript}
}

// ParseLanguage maps user input (including common aliases and file
// extensions) to a Language. ok is false for anything unrecognized.
func ParseLanguage(s string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "python", "py", ".py":
		return LangPython, true
	case "javascript", "js", ".js":
		return LangJavaScript, true
	default:
		return "", false
	}
}

// Request is one review submission. It is immutable and discarded once a
// Result has been produced.
type Request struct {
	Code     string
	Language Language
}

// ErrNoCode is returned when the submitted code is empty or whitespace-only.
var ErrNoCode = errors.New("no code provided")

// UnsupportedLanguageError is returned for a language outside the supported set.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language: %s", e.Language)
}

// StaticAnalysis holds the per-tool results. Tools that do not apply to the
// declared language are nil: not run, not an error. Each tool keeps its own
// schema; there is no cross-tool diagnostic type.
type StaticAnalysis struct {
	Pylint *analyzers.PylintResult `json:"pylint"`
	Bandit *analyzers.BanditResult `json:"bandit"`
	ESLint *analyzers.ESLintResult `json:"eslint"`
}

// AIAnalysis is the free-form commentary track of a review.
type AIAnalysis struct {
	Success  bool   `json:"success"`
	Feedback string `json:"feedback"`
	Model    string `json:"modelUsed"`
	Error    string `json:"error,omitempty"`
}

// Summary counts diagnostics per tool. Only analyzers that ran and succeeded
// contribute; absent or failed analyzers count zero.
type Summary struct {
	Pylint int `json:"pylint"`
	Bandit int `json:"bandit"`
	ESLint int `json:"eslint"`
	Total  int `json:"total"`
}

// ComputeSummary calculates the combined issue counts from the per-tool results.
func ComputeSummary(sa StaticAnalysis) Summary {
	var s Summary
	if sa.Pylint != nil && sa.Pylint.Success {
		s.Pylint = sa.Pylint.Count()
	}
	if sa.Bandit != nil && sa.Bandit.Success {
		s.Bandit = sa.Bandit.Count()
	}
	if sa.ESLint != nil && sa.ESLint.Success {
		s.ESLint = sa.ESLint.Count()
	}
	s.Total = s.Pylint + s.Bandit + s.ESLint
	return s
}

// Timing contains phase durations in milliseconds.
type Timing struct {
	StaticMs int64 `json:"staticMs"`
	ModelMs  int64 `json:"modelMs"`
	TotalMs  int64 `json:"totalMs"`
}

// Result is the top-level outcome of one review. It has no persistence;
// callers that want redisplay keep the last Result themselves.
type Result struct {
	Tool      string         `json:"tool"`
	Version   string         `json:"version"`
	RunID     string         `json:"runId"`
	Language  Language       `json:"language"`
	Static    StaticAnalysis `json:"staticAnalysis"`
	AI        AIAnalysis     `json:"aiAnalysis"`
	Summary   Summary        `json:"summary"`
	Timestamp string         `json:"timestamp"`
	Timing    Timing         `json:"timing"`
}
