package main

import (
	"context"
	"fmt"
	"os"

	"github.com/piresc/spendly/internal/pkg/config"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "spendly",
		Short: "Salary-driven budgeting and UPI payments API",
		Long: `spendly splits a monthly salary into spending categories, checks UPI
payments against the category they are charged to, and debits the category
once the payment is confirmed.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/spendly.env", "dotenv file loaded when APP_ENV=local")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads and validates the configuration named by --config
func loadConfig() (*models.Config, error) {
	cfg := config.InitConfig(cfgFile)
	if cfg.App.Version == "dev" {
		cfg.App.Version = version
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
