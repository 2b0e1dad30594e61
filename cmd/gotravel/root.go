package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "gotravel",
	Short: "Go-Travel is a trip planning companion",
	Long: `Go-Travel plans trips end to end: fill in the details, attach images,
review the summary and submit the trip to the backend. It also bundles a
stub server so the whole flow can run locally.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default $HOME/.gotravel/config.yaml)")
}

// loadConfig reads the config file named by the --config flag plus the
// environment, and installs the process-wide logger at the configured level.
func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return cfg, logger, nil
}
