package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <player-id> <round> <value>",
		Short: "Set a player's score for a round",
		Long: `Set a player's score for a round. Rounds are numbered from 1, as on the
score sheet. The value is taken as typed: anything that isn't a number counts
as 0.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSheet()
			if err != nil {
				return err
			}

			round, err := strconv.Atoi(args[1])
			if err != nil || round < 1 {
				return fmt.Errorf("round must be a number from 1, got %q", args[1])
			}

			req := map[string]string{"value": args[2]}
			path := sheetPath(code, "players", args[0], "scores", strconv.Itoa(round-1))
			var result Sheet

			if err := client.Put(cmd.Context(), path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	})

	return cmd
}

func newStandingsCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Show the leading players",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSheet()
			if err != nil {
				return err
			}

			var result StandingsResult
			path := sheetPath(code, "standings") + "?top=" + strconv.Itoa(top)
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 3, "Number of players to show")

	return cmd
}
