package cli

import (
	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameResetCmd())

	return cmd
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the game (needs at least two players)",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSheet()
			if err != nil {
				return err
			}

			var result Sheet
			if err := client.Post(cmd.Context(), sheetPath(code, "game"), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear all scores and return to setup, keeping the players",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSheet()
			if err != nil {
				return err
			}

			var result Sheet
			if err := client.Delete(cmd.Context(), sheetPath(code, "game"), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Round commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add",
		Short: "Add a round of zero scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSheet()
			if err != nil {
				return err
			}

			var result Sheet
			if err := client.Post(cmd.Context(), sheetPath(code, "rounds"), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	})

	return cmd
}
