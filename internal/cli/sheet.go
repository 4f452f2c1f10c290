package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSheetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Score sheet commands",
	}

	cmd.AddCommand(newSheetCreateCmd())
	cmd.AddCommand(newSheetGetCmd())
	cmd.AddCommand(newSheetDeleteCmd())

	return cmd
}

func newSheetCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new sheet and make it the current one",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Sheet

			if err := client.Post(cmd.Context(), "/api/v1/sheets", nil, &result); err != nil {
				return err
			}

			// Save sheet code for later commands
			if err := cfg.SaveSheet(result.Code); err != nil {
				return fmt.Errorf("failed to save sheet code: %w", err)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newSheetGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the current sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSheet()
			if err != nil {
				return err
			}

			var result Sheet
			if err := client.Get(cmd.Context(), sheetPath(code), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newSheetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the current sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSheet()
			if err != nil {
				return err
			}

			if err := client.Delete(cmd.Context(), sheetPath(code), nil); err != nil {
				return err
			}

			if err := cfg.ForgetSheet(code); err != nil {
				return fmt.Errorf("failed to clear sheet file: %w", err)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage("Deleted sheet " + code)
			return nil
		},
	}
}
