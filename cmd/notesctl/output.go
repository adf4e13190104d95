package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"notes-client/internal/model"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note id %q", arg)
	}
	return id, nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeNotes prints one line per note: id, title and a content excerpt.
func writeNotes(w io.Writer, notes []model.Note) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, n := range notes {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", n.ID, n.Title, n.Excerpt())
	}
	return tw.Flush()
}

func writeNote(w io.Writer, n model.Note) {
	fmt.Fprintf(w, "#%d %s\n\n%s\n", n.ID, n.Title, n.Content)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
