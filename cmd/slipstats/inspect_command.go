package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slipstats/internal/replay"
)

type inspectParticipant struct {
	Port      string `json:"port"`
	Character string `json:"character"`
	Name      string `json:"name,omitempty"`
	Code      string `json:"code,omitempty"`
	Winner    bool   `json:"winner"`
}

type inspectResult struct {
	Path         string               `json:"path"`
	Stage        string               `json:"stage"`
	Participants []inspectParticipant `json:"participants"`
	Decided      bool                 `json:"decided"`
}

func describeMatch(m *replay.Match) inspectResult {
	winner, decided := replay.Winner(m)
	result := inspectResult{
		Path:         m.Path,
		Stage:        m.Stage().String(),
		Participants: make([]inspectParticipant, 0, len(m.Participants)),
		Decided:      decided,
	}
	for _, p := range m.Participants {
		row := inspectParticipant{
			Port:      portLabel(p.Port),
			Character: p.Character().String(),
			Winner:    decided && p.Port == winner.Port,
		}
		if p.Netplay != nil {
			row.Name = p.Netplay.Name
			row.Code = p.Netplay.Code
		}
		result.Participants = append(result.Participants, row)
	}
	return result
}

func portLabel(port int) string {
	if port < 0 || port >= replay.MaxPorts {
		return "?"
	}
	return "P" + strconv.Itoa(port+1)
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Decode a single replay and show its participants and winner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runCtx := cmd.Context()
			if runCtx == nil {
				runCtx = context.Background()
			}
			match, err := ctx.decoder(cfg).Decode(runCtx, args[0])
			if err != nil {
				return fmt.Errorf("decode replay: %w", err)
			}
			if match.Path == "" {
				match.Path = args[0]
			}

			result := describeMatch(match)
			if jsonOutput {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File:  %s\n", result.Path)
			fmt.Fprintf(out, "Stage: %s\n", result.Stage)
			rows := make([][]string, 0, len(result.Participants))
			for _, p := range result.Participants {
				mark := ""
				if p.Winner {
					mark = "yes"
				}
				rows = append(rows, []string{p.Port, p.Character, p.Name, p.Code, mark})
			}
			fmt.Fprintln(out, renderTable([]string{"Port", "Character", "Name", "Code", "Winner"}, rows, nil))

			winner, ok := replay.Winner(match)
			switch {
			case !ok:
				fmt.Fprintln(out, "No winner found")
			case winner.Netplay == nil:
				fmt.Fprintf(out, "Winner: %s %s (no netplay info)\n", portLabel(winner.Port), winner.Character())
			default:
				fmt.Fprintf(out, "Winner: %s (%s) as %s\n", winner.Netplay.Name, winner.Netplay.Code, winner.Character())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the decoded summary as JSON")
	return cmd
}
