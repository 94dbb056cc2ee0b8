package main

import (
	"fmt"

	"github.com/piresc/spendly/internal/pkg/database"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if cfg.Database.Driver == database.DriverSQLite {
				// opening the client creates the database directory
				client, err := database.NewSQLClient(cfg.Database)
				if err != nil {
					return err
				}
				client.Close()
			}

			if err := database.RunMigrations(cfg.Database); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrations applied (%s)\n", cfg.Database.Driver)
			return nil
		},
	}
}
