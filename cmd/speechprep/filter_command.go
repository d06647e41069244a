package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"speechprep/internal/pipeline"
)

func newFilterCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "filter",
		Short: "Select clips by duration, join transcriptions, and export the manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cfg, err := ctx.logger()
			if err != nil {
				return err
			}
			manifestPath, err := pipeline.Run(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Manifest written to %s\n", manifestPath)
			return nil
		},
	}
}
