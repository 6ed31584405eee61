// Package cli implements the flowmesh command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/flowmesh/flowmesh-go/pkg/config"
	"github.com/flowmesh/flowmesh-go/pkg/logger"
	"github.com/flowmesh/flowmesh-go/pkg/version"
)

// RootCmd builds the flowmesh root command.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "flowmesh",
		Short:        "Flowmesh CLI tool",
		Long:         "Execute Flowmesh flows from the command line.",
		Version:      version.GetVersion(),
		SilenceUsage: true,
	}

	root.PersistentFlags().String("env-file", "", "Path to .env file with FLOWMESH_* variables")
	root.PersistentFlags().String("endpoint", "", "Base URL of the Flowmesh service")
	root.PersistentFlags().String("project", "", "Project ID")
	root.PersistentFlags().String("api-key", "", "API key (mutually exclusive with --access-token)")
	root.PersistentFlags().String("access-token", "", "Access token (mutually exclusive with --api-key)")
	root.PersistentFlags().Duration("timeout", 0, "Request timeout (e.g. 30s)")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	root.PersistentFlags().Bool("debug", false, "Dump HTTP requests and responses")

	root.AddCommand(
		ExecuteCmd(),
	)

	return root
}

// resolveConfig loads configuration from the environment, applies flag
// overrides, validates the result, and initializes logging.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := loadEnvFile(cmd); err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	logger.SetupLogger(cfg.Runtime.LogLevel, cfg.Runtime.LogJSON)
	return cfg, nil
}

func loadEnvFile(cmd *cobra.Command) error {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return fmt.Errorf("failed to get env-file flag: %w", err)
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
		return nil
	}
	// A .env in the working directory is optional.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
	}
	return nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint, _ = flags.GetString("endpoint")
	}
	if flags.Changed("project") {
		cfg.ProjectID, _ = flags.GetString("project")
	}
	if flags.Changed("api-key") {
		apiKey, _ := flags.GetString("api-key")
		cfg.APIKey = config.SensitiveString(apiKey)
	}
	if flags.Changed("access-token") {
		accessToken, _ := flags.GetString("access-token")
		cfg.AccessToken = config.SensitiveString(accessToken)
	}
	if flags.Changed("timeout") {
		timeout, err := flags.GetDuration("timeout")
		if err != nil {
			return fmt.Errorf("failed to get timeout flag: %w", err)
		}
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", timeout)
		}
		cfg.Timeout = timeout
	}
	if flags.Changed("log-level") {
		cfg.Runtime.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-json") {
		cfg.Runtime.LogJSON, _ = flags.GetBool("log-json")
	}
	if flags.Changed("debug") {
		cfg.Runtime.Debug, _ = flags.GetBool("debug")
	}
	return nil
}
