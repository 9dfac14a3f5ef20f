package review

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AnanyaVY/code-reviewer/internal/analyzers"
	"github.com/AnanyaVY/code-reviewer/internal/config"
	"github.com/AnanyaVY/code-reviewer/internal/providers"
	"github.com/AnanyaVY/code-reviewer/internal/redact"
)

const (
	toolName    = "codereview"
	toolVersion = "1.0"
)

// FeedbackUnavailable is the placeholder feedback when the commentary call fails.
const FeedbackUnavailable = "AI analysis unavailable"

// Run executes a full review: input validation, the language's static
// analyzers, then AI commentary. It constructs the model backend from cfg;
// use RunWithGenerator to inject one.
func Run(ctx context.Context, req Request, cfg config.Config, log *zap.Logger) (*Result, error) {
	gen, err := providers.New(cfg.Provider, cfg.Model)
	if err != nil {
		return nil, err
	}
	return RunWithGenerator(ctx, req, cfg, gen, log)
}

// RunWithGenerator is Run with an explicit model backend.
//
// Validation failures (empty code, unsupported language) return an error and
// run nothing. Past validation no error is ever returned: every analyzer and
// model failure is recorded inside the Result, and the two tracks are
// independent — static-analysis failures never block commentary and vice
// versa. Execution is strictly sequential, one blocking call after another.
func RunWithGenerator(ctx context.Context, req Request, cfg config.Config, gen providers.Generator, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	if strings.TrimSpace(req.Code) == "" {
		return nil, ErrNoCode
	}
	switch req.Language {
	case LangPython, LangJavaScript:
	default:
		return nil, &UnsupportedLanguageError{Language: string(req.Language)}
	}

	runner := analyzers.NewRunner(cfg.ToolTimeout(), log)
	staticStart := time.Now()
	var sa StaticAnalysis
	switch req.Language {
	case LangPython:
		log.Debug("running static analysis", zap.String("language", string(req.Language)), zap.Strings("tools", []string{analyzers.ToolPylint, analyzers.ToolBandit}))
		sa.Pylint = runner.Pylint(ctx, req.Code)
		sa.Bandit = runner.Bandit(ctx, req.Code)
	case LangJavaScript:
		log.Debug("running static analysis", zap.String("language", string(req.Language)), zap.Strings("tools", []string{analyzers.ToolESLint}))
		sa.ESLint = runner.ESLint(ctx, req.Code)
	}
	staticMs := time.Since(staticStart).Milliseconds()

	code := req.Code
	if cfg.Privacy.RedactSecrets {
		code = redact.Secrets(code)
	}
	prompt := TruncatePrompt(BuildPrompt(code, req.Language), cfg.MaxPromptChars)

	modelStart := time.Now()
	ai := runCommentary(ctx, gen, prompt, cfg)
	modelMs := time.Since(modelStart).Milliseconds()

	summary := ComputeSummary(sa)
	log.Info("review complete",
		zap.String("language", string(req.Language)),
		zap.Int("issues", summary.Total),
		zap.Bool("aiSuccess", ai.Success),
		zap.Int64("totalMs", time.Since(start).Milliseconds()),
	)

	return &Result{
		Tool:      toolName,
		Version:   toolVersion,
		RunID:     uuid.NewString(),
		Language:  req.Language,
		Static:    sa,
		AI:        ai,
		Summary:   summary,
		Timestamp: time.Now().Format(time.RFC3339),
		Timing: Timing{
			StaticMs: staticMs,
			ModelMs:  modelMs,
			TotalMs:  time.Since(start).Milliseconds(),
		},
	}, nil
}

// runCommentary performs the single inference call and maps every failure to
// a structured AIAnalysis. A missing backend stays a structured failure here;
// presentation layers demote its remediation text to feedback-style display.
func runCommentary(ctx context.Context, gen providers.Generator, prompt string, cfg config.Config) AIAnalysis {
	resp, err := gen.Generate(ctx, providers.GenerateRequest{
		Prompt:       prompt,
		MaxNewTokens: cfg.MaxNewTokens,
		NumSequences: 1,
		Temperature:  cfg.Temperature,
		Sample:       true,
	})
	if err != nil {
		return AIAnalysis{
			Success:  false,
			Feedback: FeedbackUnavailable,
			Model:    gen.Model(),
			Error:    err.Error(),
		}
	}
	return AIAnalysis{
		Success:  true,
		Feedback: ExtractFeedback(resp.Text),
		Model:    gen.Model(),
	}
}
