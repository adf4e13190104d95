package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search all notes on the server",
	Long:  `Search asks the API for notes whose title or content matches the query, across all pages.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		notes, err := store.UseCase.Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("searching notes: %w", err)
		}

		out := cmd.OutOrStdout()
		if searchJSON {
			return writeJSON(out, notes)
		}
		return writeNotes(out, notes)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
}
