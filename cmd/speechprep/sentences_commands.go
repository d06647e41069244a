package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"speechprep/internal/sentences"
)

func newSentencesCommand(ctx *commandContext) *cobra.Command {
	sentencesCmd := &cobra.Command{
		Use:   "sentences",
		Short: "Analyze and clean the sentence corpus",
	}

	sentencesCmd.AddCommand(newSentencesAnalyzeCommand(ctx))
	sentencesCmd.AddCommand(newSentencesCleanCommand(ctx))

	return sentencesCmd
}

func newSentencesAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var fileFlag string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report corpus statistics (character classes, lengths, duplicates)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := fileFlag
			if path == "" {
				path = cfg.Paths.SentencesFile
			}

			stats, err := sentences.Analyze(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Corpus overview", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Metric", "Value"},
				[][]string{
					{"Lines", strconv.Itoa(stats.TotalLines)},
					{"Sentences", strconv.Itoa(stats.Sentences)},
					{"Empty lines", strconv.Itoa(stats.EmptyLines)},
					{"Unique sentences", strconv.Itoa(stats.UniqueSentences)},
					{"Duplicates", strconv.Itoa(stats.Duplicates)},
					{"Characters", strconv.Itoa(stats.TotalChars)},
					{"Words", strconv.Itoa(stats.TotalWords)},
					{"Avg sentence chars", fmt.Sprintf("%.1f", stats.AvgSentenceChars)},
					{"Avg sentence words", fmt.Sprintf("%.1f", stats.AvgSentenceWords)},
					{"Word length (min/avg/max)", fmt.Sprintf("%d / %.1f / %d", stats.MinWordLen, stats.AvgWordLen, stats.MaxWordLen)},
				},
				[]columnAlignment{alignLeft, alignRight},
			))

			for _, line := range renderSectionHeader("Character classes", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Class", "Count"},
				[][]string{
					{"Cyrillic", strconv.Itoa(stats.Cyrillic)},
					{"Latin", strconv.Itoa(stats.Latin)},
					{"Digits", strconv.Itoa(stats.Digits)},
					{"Spaces", strconv.Itoa(stats.Spaces)},
					{"Special", strconv.Itoa(stats.Special)},
					{"Unique characters", strconv.Itoa(stats.UniqueChars)},
				},
				[]columnAlignment{alignLeft, alignRight},
			))

			for _, line := range renderSectionHeader("Most frequent characters", colorize) {
				fmt.Fprintln(out, line)
			}
			charRows := make([][]string, 0, len(stats.TopChars))
			for _, cc := range stats.TopChars {
				charRows = append(charRows, []string{cc.Char, strconv.Itoa(cc.Count), fmt.Sprintf("%.2f%%", cc.Percent)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Char", "Count", "Share"},
				charRows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))

			if len(stats.Punctuation) > 0 {
				for _, line := range renderSectionHeader("Punctuation", colorize) {
					fmt.Fprintln(out, line)
				}
				punctRows := make([][]string, 0, len(stats.Punctuation))
				for _, cc := range stats.Punctuation {
					punctRows = append(punctRows, []string{cc.Char, strconv.Itoa(cc.Count), fmt.Sprintf("%.2f%%", cc.Percent)})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Char", "Count", "Share"},
					punctRows,
					[]columnAlignment{alignLeft, alignRight, alignRight},
				))
			}

			for _, line := range renderSectionHeader("Sentence lengths", colorize) {
				fmt.Fprintln(out, line)
			}
			lengthRows := make([][]string, 0, len(stats.LengthBuckets))
			for _, bucket := range stats.LengthBuckets {
				lengthRows = append(lengthRows, []string{
					fmt.Sprintf("%d-%d", bucket.Lo, bucket.Hi),
					strconv.Itoa(bucket.Count),
					fmt.Sprintf("%.1f%%", bucket.Percent),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Chars", "Sentences", "Share"},
				lengthRows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			fmt.Fprintf(out, "Sentence length (min/median/max): %d / %.1f / %d\n",
				stats.MinSentenceLen, stats.MedianSentenceLen, stats.MaxSentenceLen)

			if len(stats.Samples) > 0 {
				for _, line := range renderSectionHeader("Samples", colorize) {
					fmt.Fprintln(out, line)
				}
				for i, sample := range stats.Samples {
					fmt.Fprintf(out, "%d. %s\n", i+1, sample)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Corpus file to analyze (defaults to paths.sentences_file)")
	return cmd
}

func newSentencesCleanCommand(ctx *commandContext) *cobra.Command {
	var inFlag string
	var outFlag string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove unrecordable sentences and write the cleaned corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			inPath := inFlag
			if inPath == "" {
				inPath = cfg.Paths.SentencesFile
			}
			outPath := outFlag
			if outPath == "" {
				outPath = cfg.Paths.CleanedFile
			}

			rules := sentences.Rules{
				MinLength: cfg.Sentences.MinLength,
				MaxLength: cfg.Sentences.MaxLength,
			}
			report, err := sentences.Clean(inPath, outPath, rules)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("Cleaning report", colorize) {
				fmt.Fprintln(out, line)
			}

			rows := make([][]string, 0, len(report.Removed))
			for _, rc := range report.Breakdown() {
				rows = append(rows, []string{rc.Reason, strconv.Itoa(rc.Count)})
			}
			if len(rows) > 0 {
				fmt.Fprintln(out, renderTable(
					[]string{"Removed because", "Sentences"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))
			}

			fmt.Fprintf(out, "Kept %d of %d sentences (removed %d)\n", report.Kept, report.Original, report.RemovedTotal())
			fmt.Fprintf(out, "Cleaned corpus written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inFlag, "file", "f", "", "Corpus file to clean (defaults to paths.sentences_file)")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Destination for the cleaned corpus (defaults to paths.cleaned_file)")
	return cmd
}
