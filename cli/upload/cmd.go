// Package upload holds the one-shot document upload command.
package upload

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"docchat/internal/api"
	"docchat/internal/cli"
	"docchat/internal/configuration"
	"docchat/internal/state"
)

// NewCmd instantiates and returns the upload command.
func NewCmd(config *configuration.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a document for grounded answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			fileName := filepath.Base(path)

			// Unsupported extensions are rejected before any network call.
			if err := state.ValidateFilename(fileName); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			client := api.NewClient(config.ServerURL, time.Duration(config.RequestTimeout)*time.Second)
			if err := client.UploadDocument(cmd.Context(), fileName, data); err != nil {
				return err
			}
			cli.Success("Document %s is ready for grounded questions\n", fileName)
			return nil
		},
	}
}
