package main

import (
	"fmt"
	"os"

	"expense_tracker/internal/config"
	"expense_tracker/internal/logger"

	"github.com/spf13/cobra"
)

var (
	configDir string
	envFile   string
)

// rootCmd runs the HTTP server when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:           "expense-tracker",
	Short:         "User account service for the expense tracker",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "configs", "directory containing config.yml")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before the environment")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "expense-tracker: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads configuration and builds the process logger from it.
func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configDir, envFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(cfg.Log.Level, cfg.Log.Encoding), nil
}
