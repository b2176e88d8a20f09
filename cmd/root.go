package cmd

import (
	"fmt"
	"os"

	"phrase-agent/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "phrase-agent",
	Short: "Phrase Agent Service",
	Long: `Phrase Agent serves the agent's catch-phrase through a command-line
interface and a small REST-ful web API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Invoking with no subcommand is a no-op; use --help for usage.
	Run: func(cmd *cobra.Command, args []string) {},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
