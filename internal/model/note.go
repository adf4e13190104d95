package model

import "strings"

// excerptRunes is how much content a recent-notes preview shows.
const excerptRunes = 80

// Note is a short text note as exchanged with the remote notes API.
// ID is zero until the note has been persisted by the server.
type Note struct {
	ID      int64  `json:"id,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// IsNew reports whether the note has not been persisted yet.
func (n Note) IsNew() bool {
	return n.ID == 0
}

// Excerpt returns the first runes of the content for preview cards.
func (n Note) Excerpt() string {
	r := []rune(n.Content)
	if len(r) <= excerptRunes {
		return n.Content
	}
	return strings.TrimSpace(string(r[:excerptRunes])) + "..."
}

// HasTitle reports whether the title contains needle, ignoring case.
func (n Note) HasTitle(needle string) bool {
	return strings.Contains(strings.ToLower(n.Title), strings.ToLower(needle))
}
