package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnanyaVY/code-reviewer/internal/config"
	"github.com/AnanyaVY/code-reviewer/internal/web"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser UI",
	Long:  "Serve starts the web UI: a submission form, per-tool result sections, and a downloadable report.",
	Run: func(cmd *cobra.Command, args []string) {
		overrides := map[string]string{}
		if flagAddr != "" {
			overrides["listenAddr"] = flagAddr
		}
		cfg, err := config.Load(overrides)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return
		}

		srv := web.New(cfg, logger())
		fmt.Fprintf(os.Stdout, "codereview web UI on http://%s\n", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (host:port)")
}
