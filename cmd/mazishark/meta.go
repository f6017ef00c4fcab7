package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/mazishark/mazishark/asset"
	"github.com/mazishark/mazishark/constants"
	"github.com/mazishark/mazishark/dataset"
	"github.com/mazishark/mazishark/utils"
)

// newMetaCmd creates the 'meta' subcommand: print dataset metadata without
// starting a server. Useful to verify the asset before deploying.
func newMetaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "meta",
		Short: "Print habitat index metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRuntimeConfig()
			if err != nil {
				return err
			}
			src, err := asset.Resolve(cmd.Context(), cfg.Data.Path)
			if err != nil {
				return err
			}
			data, err := src.Fetch(cmd.Context())
			if err != nil {
				return err
			}
			grid, err := dataset.Parse(data, src.Location())
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(grid.Meta(), "", constants.JSONIndent)
			if err != nil {
				return err
			}
			utils.User("%s", out)
			return nil
		},
	}
}
