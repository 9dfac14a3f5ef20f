package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AnanyaVY/code-reviewer/internal/config"
	"github.com/AnanyaVY/code-reviewer/internal/output"
	"github.com/AnanyaVY/code-reviewer/internal/review"
)

var (
	flagLang         string
	flagProvider     string
	flagModel        string
	flagFormat       string
	flagOut          string
	flagToolTimeout  int
	flagRedact       bool
	flagFailOnIssues bool
)

var reviewCmd = &cobra.Command{
	Use:   "review [file]",
	Short: "Review a code snippet from a file or stdin",
	Long: `Review reads code from the given file (or stdin when omitted), runs the
static analyzers for its language, asks the model for commentary, and writes
the combined result in the selected format.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReview,
}

func init() {
	reviewCmd.Flags().StringVar(&flagLang, "lang", "", "Snippet language (Python, JavaScript); inferred from the file extension when omitted")
	reviewCmd.Flags().StringVar(&flagProvider, "provider", "", "Model backend (hf, ollama)")
	reviewCmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	reviewCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown, sarif)")
	reviewCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	reviewCmd.Flags().IntVar(&flagToolTimeout, "tool-timeout", 0, "Per-analyzer timeout in seconds")
	reviewCmd.Flags().BoolVar(&flagRedact, "redact", false, "Redact likely secrets before the code reaches the model")
	reviewCmd.Flags().BoolVar(&flagFailOnIssues, "fail-on-issues", false, "Exit 1 when static analysis reports any issue")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagToolTimeout > 0 {
		m["toolTimeoutSeconds"] = fmt.Sprintf("%d", flagToolTimeout)
	}
	if flagRedact {
		m["redactSecrets"] = "true"
	}
	return m
}

// readSnippet loads the code and resolves its language from the --lang flag
// or, failing that, the file extension.
func readSnippet(path string) (string, review.Language, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", "", fmt.Errorf("reading snippet: %w", err)
	}

	langInput := flagLang
	if langInput == "" && path != "" {
		langInput = filepath.Ext(path)
	}
	if lang, ok := review.ParseLanguage(langInput); ok {
		return string(data), lang, nil
	}
	// Let the engine produce its structured unsupported-language error.
	return string(data), review.Language(langInput), nil
}

func runReview(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	}
	code, lang, err := readSnippet(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	res, err := review.Run(context.Background(), review.Request{Code: code, Language: lang}, cfg, logger())
	if err != nil {
		var ule *review.UnsupportedLanguageError
		if errors.Is(err, review.ErrNoCode) || errors.As(err, &ule) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if err := output.WriteResult(res, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if flagFailOnIssues && res.Summary.Total > 0 {
		exitCode = ExitIssues
	}
}
