package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "scoresheet",
		Short: "CLI tool for the score sheet API",
		Long: `scoresheet is a CLI tool for keeping Scrabble scores through the
score sheet JSON API.

Create a sheet, add players, start the game and enter each round's scores.
The current sheet code is remembered in the sheet file between commands.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load sheet code from file if not provided via flag/env
			if err := cfg.LoadSheet(); err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL)
			if cfg.Verbose {
				client.SetTrace(cmd.ErrOrStderr())
			}
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: SCORESHEET_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Sheet, "sheet", cfg.Sheet, "Sheet code (env: SCORESHEET_SHEET)")
	rootCmd.PersistentFlags().StringVar(&cfg.SheetFile, "sheet-file", cfg.SheetFile, "Sheet file path (env: SCORESHEET_SHEET_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newSheetCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newRoundCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newStandingsCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
