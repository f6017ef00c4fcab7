package main

import (
	"github.com/spf13/cobra"

	mazihttp "github.com/mazishark/mazishark/http"
	"github.com/mazishark/mazishark/telemetry"
)

// newServeCmd creates the 'serve' subcommand: the local development server.
func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the API locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRuntimeConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Host, cfg.HTTP.Port = splitAddr(addr, cfg.HTTP.Port)
			}
			telemetry.Init(cfg)
			return mazihttp.StartServer(cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, e.g. :8080 (overrides config and PORT)")
	return cmd
}
