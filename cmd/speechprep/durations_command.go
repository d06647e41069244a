package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"speechprep/internal/audioprobe"
	"speechprep/internal/durations"
)

func newDurationsCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "durations",
		Short: "Report the duration distribution of a directory of audio clips",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cfg, err := ctx.logger()
			if err != nil {
				return err
			}

			dir := dirFlag
			if dir == "" {
				dir = cfg.Paths.AudioDir
			}

			prober := audioprobe.NewWAVProber(logger)
			report, err := durations.Analyze(cmd.Context(), dir, cfg.Filter.AudioExtension, prober, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("Duration distribution", colorize) {
				fmt.Fprintln(out, line)
			}

			rows := make([][]string, 0, len(report.Buckets))
			for _, bucket := range report.Buckets {
				rows = append(rows, []string{
					fmt.Sprintf("%d-%d s", bucket.Seconds, bucket.Seconds+1),
					strconv.Itoa(bucket.Count),
					fmt.Sprintf("%.1f%%", bucket.Percent),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Duration", "Files", "Share"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))

			fmt.Fprintf(out, "Files found: %d (valid: %d, skipped: %d)\n", report.Found, report.Valid, report.Skipped)
			fmt.Fprintf(out, "Min %.2fs  Max %.2fs  Mean %.2fs  Median %.2fs  StdDev %.2fs\n",
				report.MinSec, report.MaxSec, report.MeanSec, report.MedianSec, report.StdDevSec)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Audio directory to analyze (defaults to paths.audio_dir)")
	return cmd
}
