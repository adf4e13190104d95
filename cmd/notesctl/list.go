package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notes-client/internal/note"
)

var (
	listJSON   bool
	listPage   int
	listFilter string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of notes",
	Long: `List fetches one page of notes. When the API is unreachable the last page
fetched successfully is shown instead, with a warning on stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		st, err := store.UseCase.RefreshPage(cmd.Context(), listPage)
		if err != nil && !errors.Is(err, note.ErrFetch) {
			return fmt.Errorf("listing notes: %w", err)
		}
		if st.Warning != "" {
			fmt.Fprintln(os.Stderr, st.Warning)
		}

		if listFilter != "" {
			st = store.UseCase.SetSearchText(listFilter)
		}

		out := cmd.OutOrStdout()
		if listJSON {
			return writeJSON(out, st.Visible)
		}

		if err := writeNotes(out, st.Visible); err != nil {
			return err
		}
		fmt.Fprintf(out, "\npage %d  previous: %s  next: %s\n", st.PageIndex, yesNo(st.CanPrev), yesNo(st.CanNext))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().IntVarP(&listPage, "page", "p", 0, "Zero-based page index")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Only show notes of the page whose title contains this text")
}
