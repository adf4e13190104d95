package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notes-client/internal/model"
)

var (
	noteTitle   string
	noteContent string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		created, st, err := store.UseCase.Save(cmd.Context(), model.Note{Title: noteTitle, Content: noteContent})
		if err != nil {
			return fmt.Errorf("creating note: %w", err)
		}
		if st.Warning != "" {
			fmt.Fprintln(os.Stderr, st.Warning)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Note created")
		return writeNotes(out, []model.Note{created})
	},
}

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Replace the title and content of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		// Flags left unset keep the stored value.
		current, err := store.UseCase.Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("reading note: %w", err)
		}
		if cmd.Flags().Changed("title") {
			current.Title = noteTitle
		}
		if cmd.Flags().Changed("content") {
			current.Content = noteContent
		}

		if _, _, err := store.UseCase.Save(cmd.Context(), current); err != nil {
			return fmt.Errorf("updating note: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Note updated: %d\n", id)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if _, err := store.UseCase.Remove(cmd.Context(), id); err != nil {
			return fmt.Errorf("deleting note: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd, updateCmd, deleteCmd)

	for _, c := range []*cobra.Command{createCmd, updateCmd} {
		c.Flags().StringVarP(&noteTitle, "title", "t", "", "Note title")
		c.Flags().StringVarP(&noteContent, "content", "m", "", "Note content")
	}
	createCmd.MarkFlagRequired("title")
	createCmd.MarkFlagRequired("content")
}
