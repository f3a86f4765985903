package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vytor/eligesaludable/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		database, err := db.Open(db.Options{
			Path:          cfg.DBPath,
			MaxOpenConns:  cfg.DBMaxOpenConns,
			BusyTimeoutMS: cfg.DBBusyTimeoutMS,
		})
		if err != nil {
			return err
		}
		defer database.Close()

		versions, err := database.AppliedMigrations(cmd.Context())
		if err != nil {
			return err
		}
		log.Info("database is up to date (%d migrations)", len(versions))
		for _, v := range versions {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	},
}
