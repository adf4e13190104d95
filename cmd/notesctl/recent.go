package main

import (
	"github.com/spf13/cobra"
)

var recentJSON bool

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recently created notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		st := store.UseCase.RefreshRecent(cmd.Context())

		out := cmd.OutOrStdout()
		if recentJSON {
			return writeJSON(out, st.RecentNotes)
		}
		return writeNotes(out, st.RecentNotes)
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().BoolVar(&recentJSON, "json", false, "Output in JSON format")
}
