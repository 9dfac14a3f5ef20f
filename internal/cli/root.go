package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "0.1.0"

// Exit codes.
const (
	ExitSuccess      = 0
	ExitIssues       = 1
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "codereview",
	Short: "AI-assisted code review for snippets",
	Long:  "codereview combines static analyzers (pylint, bandit, eslint) with commentary from a local pretrained model.",
}

var flagVerbose bool

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// logger builds the process logger from the --verbose flag.
func logger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print codereview version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "codereview version %s\n", version)
	},
}
