package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"slipstats/internal/stats"
)

type winsResult struct {
	Query   string `json:"query"`
	Matches int    `json:"matches"`
	Wins    int    `json:"wins"`
}

func newWinsCommand(ctx *commandContext) *cobra.Command {
	var query queryFlags
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "wins [dir]",
		Short: "Count matches won by a connect code or nickname",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			q, err := query.resolve(cfg)
			if err != nil {
				return err
			}

			c, scanErr := ctx.scan(cmd, args)
			if c == nil {
				return scanErr
			}
			partialNotice(cmd, scanErr)

			result := winsResult{
				Query:   q.String(),
				Matches: c.Len(),
				Wins:    ctx.aggregator().TotalWins(c, q),
			}
			if jsonOutput {
				if err := writeJSON(cmd, result); err != nil {
					return err
				}
				return scanErr
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total wins for %s: %d (of %d matches)\n", result.Query, result.Wins, result.Matches)
			return scanErr
		},
	}

	query.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the result as JSON")
	return cmd
}

type charactersResult struct {
	Query      string        `json:"query"`
	Ordering   string        `json:"ordering"`
	Total      int           `json:"total"`
	Characters []stats.Entry `json:"characters"`
}

func newCharactersCommand(ctx *commandContext) *cobra.Command {
	var query queryFlags
	var sortFlag string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "characters [dir]",
		Short: "Rank the characters a player won with",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ordering, err := stats.ParseOrdering(sortFlag)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			q, err := query.resolve(cfg)
			if err != nil {
				return err
			}

			c, scanErr := ctx.scan(cmd, args)
			if c == nil {
				return scanErr
			}
			partialNotice(cmd, scanErr)

			report := ctx.aggregator().WinsByCharacter(c, q, ordering)
			if jsonOutput {
				entries := []stats.Entry(report)
				if entries == nil {
					entries = []stats.Entry{}
				}
				if err := writeJSON(cmd, charactersResult{
					Query:      q.String(),
					Ordering:   ordering.String(),
					Total:      report.Total(),
					Characters: entries,
				}); err != nil {
					return err
				}
				return scanErr
			}

			out := cmd.OutOrStdout()
			if len(report) == 0 {
				fmt.Fprintf(out, "No wins found for %s\n", q.String())
				return scanErr
			}
			if !isTerminal(out) {
				fmt.Fprintln(out, report.String())
				return scanErr
			}
			rows := make([][]string, 0, len(report))
			for _, entry := range report {
				rows = append(rows, []string{entry.Name, strconv.Itoa(entry.Wins)})
			}
			fmt.Fprintln(out, renderTable([]string{"Character", "Wins"}, rows, []columnAlignment{alignLeft, alignRight}))
			fmt.Fprintf(out, "Total: %d\n", report.Total())
			return scanErr
		},
	}

	query.register(cmd)
	cmd.Flags().StringVar(&sortFlag, "sort", stats.CountDesc.String(),
		"Ordering: "+strings.Join(stats.OrderingNames(), ", "))
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")
	return cmd
}
