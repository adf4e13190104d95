package repository

// ListNotesOptions holds the page window for listing notes.
type ListNotesOptions struct {
	Skip  int
	Limit int
}

// CreateNoteOptions holds the parameters for creating a note.
type CreateNoteOptions struct {
	Title   string
	Content string
}

// UpdateNoteOptions holds the parameters for updating an existing note.
type UpdateNoteOptions struct {
	ID      int64
	Title   string
	Content string
}
