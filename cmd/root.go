package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chriserin/xt/internal/config"
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "xt",
	Short: "xt — example tables for table-driven tests",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log debug output to stderr")
}

// loadConfig reads .xt.yaml/.xt.json and XT_* variables from the working directory.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
