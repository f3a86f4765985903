package main

import (
	"github.com/spf13/cobra"
	"github.com/vytor/eligesaludable/internal/config"
	"github.com/vytor/eligesaludable/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:           "elige",
	Short:         "Elige lo Saludable game backend",
	Long:          "HTTP API for the Elige lo Saludable food quiz: players, levels, game sessions, answers and rankings.",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "SQLite database path (overrides DB_PATH)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// loadConfig reads the environment, applies flag overrides and installs the
// default logger.
func loadConfig(cmd *cobra.Command) (config.Config, *logger.Logger, error) {
	cfg := config.Load()
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	log := logger.New(
		logger.WithLevel(cfg.Level()),
		logger.WithColors(true),
	)
	logger.SetDefault(log)
	return cfg, log, nil
}
