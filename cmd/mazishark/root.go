package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mazishark/mazishark/config"
	"github.com/mazishark/mazishark/constants"
	"github.com/mazishark/mazishark/utils"
)

var (
	configPath string
	debug      bool
	dataPath   string
)

// NewRootCmd creates the root 'mazishark' command with persistent flags and
// subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "MaziShark habitat index API",
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", constants.DefaultConfigPath, "Path to config JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logs")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data-path", "", "Path or s3:// URL of the habitat index asset (overrides config and env)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Load environment variables from .env file, if present
		_ = godotenv.Load()
		if debug {
			utils.SetMode("debug")
		}
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newValidateCmd(),
		newMetaCmd(),
	)

	return rootCmd
}

// loadRuntimeConfig resolves the effective config: file (when present), then
// environment, then CLI flags.
func loadRuntimeConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, utils.Errorf("failed to load config %s: %w", configPath, err)
		}
		cfg = &config.Config{}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if dataPath != "" {
		cfg.Data.Path = dataPath
	}
	return cfg, nil
}
