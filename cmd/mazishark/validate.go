package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mazishark/mazishark/constants"
	"github.com/mazishark/mazishark/deploy"
	"github.com/mazishark/mazishark/utils"
)

// newValidateCmd creates the 'validate' subcommand: local deploy-time checks
// on the deployment descriptor and the files it references.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [manifest]",
		Short: "Validate the deployment manifest and bundled files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifestPath := constants.DefaultManifestPath
			if len(args) == 1 {
				manifestPath = args[0]
			}
			if err := deploy.ValidateFile(manifestPath); err != nil {
				return utils.Errorf("manifest %s failed schema validation: %w", manifestPath, err)
			}
			m, err := deploy.LoadManifest(manifestPath)
			if err != nil {
				return err
			}
			if err := m.CheckFiles(filepath.Dir(manifestPath)); err != nil {
				return err
			}
			utils.User("%s: ok", manifestPath)
			return nil
		},
	}
}
