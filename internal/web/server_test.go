package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AnanyaVY/code-reviewer/internal/analyzers"
	"github.com/AnanyaVY/code-reviewer/internal/config"
	"github.com/AnanyaVY/code-reviewer/internal/review"
)

func stubResult() *review.Result {
	sa := review.StaticAnalysis{
		Pylint: &analyzers.PylintResult{
			Status: analyzers.Status{Success: true},
			Issues: []analyzers.PylintIssue{{Type: "warning", Line: 3, Message: "Unused variable 'x'", Symbol: "unused-variable"}},
		},
		Bandit: &analyzers.BanditResult{Status: analyzers.Status{Success: true}},
	}
	return &review.Result{
		Tool:      "codereview",
		Version:   "1.0",
		RunID:     "run-1",
		Language:  review.LangPython,
		Static:    sa,
		AI:        review.AIAnalysis{Success: true, Feedback: "Tidy function.", Model: "Salesforce/codet5-base"},
		Summary:   review.ComputeSummary(sa),
		Timestamp: "2025-06-01T12:00:00Z",
	}
}

// stubServer returns a Server whose engine is replaced by the given run func.
func stubServer(t *testing.T, run runFunc) *Server {
	t.Helper()
	s := New(config.Default(), zap.NewNop())
	s.run = run
	return s
}

func postForm(t *testing.T, s *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestIndex_EmptySlot(t *testing.T) {
	s := stubServer(t, nil)
	rec := get(t, s, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Paste your code here")
	assert.NotContains(t, rec.Body.String(), "Review Results")
}

func TestReview_StoresResultInSlot(t *testing.T) {
	var gotReq review.Request
	s := stubServer(t, func(_ context.Context, req review.Request, _ config.Config, _ *zap.Logger) (*review.Result, error) {
		gotReq = req
		return stubResult(), nil
	})

	rec := postForm(t, s, "/review", url.Values{"code": {"x = 1"}, "language": {"Python"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, review.LangPython, gotReq.Language)
	assert.Equal(t, "x = 1", gotReq.Code)

	page := get(t, s, "/")
	body := page.Body.String()
	assert.Contains(t, body, "Review Results — Python")
	assert.Contains(t, body, "Unused variable &#39;x&#39;")
	assert.Contains(t, body, "Tidy function.")
	assert.Contains(t, body, "Found 1 total issue(s)")
}

func TestReview_ValidationFailureClearsSlot(t *testing.T) {
	calls := 0
	s := stubServer(t, func(_ context.Context, req review.Request, _ config.Config, _ *zap.Logger) (*review.Result, error) {
		calls++
		if strings.TrimSpace(req.Code) == "" {
			return nil, review.ErrNoCode
		}
		return stubResult(), nil
	})

	// Seed the slot with a good result.
	postForm(t, s, "/review", url.Values{"code": {"x = 1"}, "language": {"Python"}})
	_, ok := s.slot.Load()
	require.True(t, ok)

	rec := postForm(t, s, "/review", url.Values{"code": {"   "}, "language": {"Python"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "err=")

	_, ok = s.slot.Load()
	assert.False(t, ok, "validation failure must clear the slot")
	assert.Equal(t, 2, calls)
}

func TestReview_UnsupportedLanguageRedirect(t *testing.T) {
	s := stubServer(t, func(_ context.Context, req review.Request, _ config.Config, _ *zap.Logger) (*review.Result, error) {
		return nil, &review.UnsupportedLanguageError{Language: string(req.Language)}
	})
	rec := postForm(t, s, "/review", url.Values{"code": {"x"}, "language": {"Rust"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc := rec.Header().Get("Location")
	assert.Contains(t, loc, url.QueryEscape("unsupported language: Rust"))
}

func TestReport_DownloadsTextReport(t *testing.T) {
	s := stubServer(t, func(context.Context, review.Request, config.Config, *zap.Logger) (*review.Result, error) {
		return stubResult(), nil
	})
	postForm(t, s, "/review", url.Values{"code": {"x = 1"}, "language": {"Python"}})

	rec := get(t, s, "/report")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	body := rec.Body.String()
	assert.Contains(t, body, "AI-Powered Code Review Report")
	assert.Contains(t, body, "Line 3: Unused variable 'x'")
	assert.Contains(t, body, "Tidy function.")
}

func TestReport_EmptySlot404(t *testing.T) {
	s := stubServer(t, nil)
	rec := get(t, s, "/report")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClear(t *testing.T) {
	s := stubServer(t, func(context.Context, review.Request, config.Config, *zap.Logger) (*review.Result, error) {
		return stubResult(), nil
	})
	postForm(t, s, "/review", url.Values{"code": {"x = 1"}, "language": {"Python"}})

	rec := postForm(t, s, "/clear", url.Values{})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	_, ok := s.slot.Load()
	assert.False(t, ok)
}
