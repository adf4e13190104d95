package http

import (
	"notes-client/internal/model"
	"notes-client/internal/note"
)

// --- Request DTOs ---

type noteReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r noteReq) toNote(id int64) model.Note {
	return model.Note{
		ID:      id,
		Title:   r.Title,
		Content: r.Content,
	}
}

type editorReq struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r editorReq) toNote() model.Note {
	return model.Note{
		ID:      r.ID,
		Title:   r.Title,
		Content: r.Content,
	}
}

type searchReq struct {
	Text string `json:"text"`
}

type remoteSearchReq struct {
	Query string `form:"query" binding:"required"`
}

type idURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type pageURI struct {
	Page int `uri:"page" binding:"min=0"`
}

// --- Response DTOs ---

type noteResp struct {
	ID      int64  `json:"id,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func newNoteResp(n model.Note) noteResp {
	return noteResp{
		ID:      n.ID,
		Title:   n.Title,
		Content: n.Content,
	}
}

func newNoteResps(notes []model.Note) []noteResp {
	out := make([]noteResp, len(notes))
	for i, n := range notes {
		out[i] = newNoteResp(n)
	}
	return out
}

type recentResp struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
}

type editorResp struct {
	Open bool     `json:"open"`
	Mode string   `json:"mode,omitempty"` // "create" or "edit"
	Note noteResp `json:"note"`
}

type stateResp struct {
	Notes       []noteResp   `json:"notes"`
	Visible     []noteResp   `json:"visible"`
	RecentNotes []recentResp `json:"recent_notes"`
	SearchText  string       `json:"search_text"`
	PageIndex   int          `json:"page_index"`
	PageSize    int          `json:"page_size"`
	Editor      editorResp   `json:"editor"`
	IsLoading   bool         `json:"is_loading"`
	Stale       bool         `json:"stale"`
	Warning     string       `json:"warning,omitempty"`
	CanPrev     bool         `json:"can_prev"`
	CanNext     bool         `json:"can_next"`
}

func (h *handler) newStateResp(st note.ViewState) stateResp {
	recent := make([]recentResp, len(st.RecentNotes))
	for i, n := range st.RecentNotes {
		recent[i] = recentResp{ID: n.ID, Title: n.Title, Excerpt: n.Excerpt()}
	}

	editor := editorResp{Open: st.Editor.Open, Note: newNoteResp(st.Editor.Note)}
	if st.Editor.Open {
		editor.Mode = "create"
		if !st.Editor.Note.IsNew() {
			editor.Mode = "edit"
		}
	}

	return stateResp{
		Notes:       newNoteResps(st.Notes),
		Visible:     newNoteResps(st.Visible),
		RecentNotes: recent,
		SearchText:  st.SearchText,
		PageIndex:   st.PageIndex,
		PageSize:    st.PageSize,
		Editor:      editor,
		IsLoading:   st.IsLoading,
		Stale:       st.Stale,
		Warning:     st.Warning,
		CanPrev:     st.CanPrev,
		CanNext:     st.CanNext,
	}
}

type searchResp struct {
	Notes []noteResp `json:"notes"`
	Count int        `json:"count"`
}

func (h *handler) newSearchResp(notes []model.Note) searchResp {
	return searchResp{Notes: newNoteResps(notes), Count: len(notes)}
}
