package main

import (
	"context"
	"fmt"
	"os"

	"wondershop/internal/app"
	"wondershop/internal/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wondershop",
	Short: "Wondershop - conversational ordering service",
	Long: `Wondershop turns chat events into catalog changes and orders.

Operators add and delete products through a guided dialogue; buyers pick a
product, a quantity and confirm. Order events can be published to Kafka.`,
	Version: config.ServiceVersion,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP event endpoint",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := serveConfig(cmd)
		if err != nil {
			return err
		}

		application, err := app.NewApplication(context.Background(), cfg)
		if err != nil {
			return err
		}
		defer application.Shutdown()

		return application.Run()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// serveConfig loads the environment, applies explicitly set flags and only
// then validates, so a flag can fix a bad environment value.
func serveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		if cfg.Port, err = flags.GetInt("port"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("store") {
		if cfg.StoreBackend, err = flags.GetString("store"); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("port", 8080, "HTTP port (overrides PORT)")
	cmd.Flags().String("store", config.StoreMemory, "Store backend: memory or dynamodb (overrides STORE_BACKEND)")
}

func init() {
	addServeFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}
