package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slipstats/internal/corpus"
)

type scanSummary struct {
	Root        string   `json:"root"`
	Candidates  int      `json:"candidates"`
	Matches     int      `json:"matches"`
	Skipped     int      `json:"skipped"`
	Diagnostics []string `json:"diagnostics"`
}

func summarizeCorpus(c *corpus.Corpus) scanSummary {
	summary := scanSummary{
		Root:        c.Root,
		Candidates:  c.Candidates,
		Matches:     c.Len(),
		Skipped:     c.Skipped(),
		Diagnostics: make([]string, 0, len(c.Diagnostics)),
	}
	for _, diag := range c.Diagnostics {
		summary.Diagnostics = append(summary.Diagnostics, diag.String())
	}
	return summary
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Decode every replay under a directory and report what was analyzed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, scanErr := ctx.scan(cmd, args)
			if c == nil {
				return scanErr
			}
			partialNotice(cmd, scanErr)

			summary := summarizeCorpus(c)
			if jsonOutput {
				if err := writeJSON(cmd, summary); err != nil {
					return err
				}
				return scanErr
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Root: %s\n", summary.Root)
			fmt.Fprintf(out, "Matches analyzed: %d\n", summary.Matches)
			fmt.Fprintf(out, "Skipped files: %d\n", summary.Skipped)
			if len(summary.Diagnostics) > 0 {
				fmt.Fprintln(out, "Diagnostics:")
				for _, line := range summary.Diagnostics {
					fmt.Fprintf(out, "  %s\n", line)
				}
			}
			return scanErr
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the scan summary as JSON")
	return cmd
}
