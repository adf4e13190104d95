package notesapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"notes-client/internal/note/repository/notesapi"
)

// fakeAPI is a minimal in-memory notes API.
type fakeAPI struct {
	mu      sync.Mutex
	notes   []notesapi.Note
	nextID  int64
	failAll bool
	hits    []string
}

func newFakeAPI(titles ...string) *fakeAPI {
	f := &fakeAPI{nextID: 1}
	for _, t := range titles {
		f.notes = append(f.notes, notesapi.Note{ID: f.nextID, Title: t, Content: "body of " + t})
		f.nextID++
	}
	return f
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.hits = append(f.hits, r.Method+" "+r.URL.Path)
	if f.failAll {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"boom"}`))
		return
	}

	q := r.URL.Query()
	switch {
	case r.URL.Path == "/notes" && r.Method == http.MethodGet:
		skip, _ := strconv.Atoi(q.Get("skip"))
		limit, _ := strconv.Atoi(q.Get("limit"))
		out := []notesapi.Note{}
		for i := skip; i < len(f.notes) && i < skip+limit; i++ {
			out = append(out, f.notes[i])
		}
		json.NewEncoder(w).Encode(out)

	case r.URL.Path == "/notes/recent" && r.Method == http.MethodGet:
		limit, _ := strconv.Atoi(q.Get("limit"))
		out := []notesapi.Note{}
		for i := len(f.notes) - 1; i >= 0 && len(out) < limit; i-- {
			out = append(out, f.notes[i])
		}
		json.NewEncoder(w).Encode(out)

	case r.URL.Path == "/notes/search/" && r.Method == http.MethodGet:
		needle := q.Get("query")
		out := []notesapi.Note{}
		for _, n := range f.notes {
			if strings.Contains(n.Title, needle) || strings.Contains(n.Content, needle) {
				out = append(out, n)
			}
		}
		json.NewEncoder(w).Encode(out)

	case r.URL.Path == "/notes/" && r.Method == http.MethodPost:
		var req notesapi.CreateNoteRequest
		json.NewDecoder(r.Body).Decode(&req)
		n := notesapi.Note{ID: f.nextID, Title: req.Title, Content: req.Content}
		f.nextID++
		f.notes = append(f.notes, n)
		json.NewEncoder(w).Encode(n)

	case strings.HasPrefix(r.URL.Path, "/notes/"):
		id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/notes/"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		idx := -1
		for i, n := range f.notes {
			if n.ID == id {
				idx = i
			}
		}
		if idx < 0 {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Notes not found"}`))
			return
		}
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(f.notes[idx])
		case http.MethodPut:
			var req notesapi.UpdateNoteRequest
			json.NewDecoder(r.Body).Decode(&req)
			f.notes[idx].Title = req.Title
			f.notes[idx].Content = req.Content
			json.NewEncoder(w).Encode(f.notes[idx])
		case http.MethodDelete:
			deleted := f.notes[idx]
			f.notes = append(f.notes[:idx], f.notes[idx+1:]...)
			json.NewEncoder(w).Encode(deleted)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func TestNotesClient(t *testing.T) {
	api := newFakeAPI("one", "two", "three", "four")
	ts := httptest.NewServer(api)
	defer ts.Close()

	client := notesapi.NewClient(ts.URL, 5*time.Second, nil)
	ctx := context.Background()

	t.Run("ListNotes", func(t *testing.T) {
		res, err := client.ListNotes(ctx, 2, 6)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || res[0].Title != "three" {
			t.Errorf("unexpected page: %+v", res)
		}
	})

	t.Run("ListRecent", func(t *testing.T) {
		res, err := client.ListRecent(ctx, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 3 || res[0].Title != "four" {
			t.Errorf("unexpected recent: %+v", res)
		}
	})

	t.Run("CreateNote", func(t *testing.T) {
		res, err := client.CreateNote(ctx, notesapi.CreateNoteRequest{Title: "five", Content: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 5 || res.Title != "five" {
			t.Errorf("unexpected note: %+v", res)
		}
	})

	t.Run("UpdateNote", func(t *testing.T) {
		res, err := client.UpdateNote(ctx, 1, notesapi.UpdateNoteRequest{ID: 1, Title: "uno", Content: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Title != "uno" {
			t.Errorf("unexpected title: %s", res.Title)
		}
	})

	t.Run("GetNote", func(t *testing.T) {
		res, err := client.GetNote(ctx, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Title != "two" {
			t.Errorf("unexpected note: %+v", res)
		}

		_, err = client.GetNote(ctx, 999)
		var se *notesapi.StatusError
		if !errors.As(err, &se) || se.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404 status error, got %v", err)
		}
	})

	t.Run("SearchNotes", func(t *testing.T) {
		res, err := client.SearchNotes(ctx, "body of t")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Errorf("expected 2 matches, got %+v", res)
		}
	})

	t.Run("DeleteNote", func(t *testing.T) {
		if err := client.DeleteNote(ctx, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := client.DeleteNote(ctx, 3); err == nil {
			t.Errorf("expected error deleting twice")
		}
	})

	t.Run("Non-2xx", func(t *testing.T) {
		api.mu.Lock()
		api.failAll = true
		api.mu.Unlock()
		defer func() {
			api.mu.Lock()
			api.failAll = false
			api.mu.Unlock()
		}()

		_, err := client.ListNotes(ctx, 0, 6)
		var se *notesapi.StatusError
		if !errors.As(err, &se) || se.StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected 500 status error, got %v", err)
		}
		if !strings.Contains(se.Error(), "boom") {
			t.Errorf("expected body in error, got %s", se.Error())
		}
	})

	// Server Down
	t.Run("Server Down", func(t *testing.T) {
		badClient := notesapi.NewClient("http://localhost:59999", time.Second, nil)
		_, err := badClient.ListNotes(ctx, 0, 6)
		if err == nil {
			t.Errorf("expected connection refused error")
		}
	})

	t.Run("Rate limiter honours context", func(t *testing.T) {
		limited := notesapi.NewClient(ts.URL, time.Second, rate.NewLimiter(rate.Every(time.Hour), 1))
		if _, err := limited.ListRecent(ctx, 1); err != nil {
			t.Fatalf("first call should pass the burst: %v", err)
		}

		short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		if _, err := limited.ListRecent(short, 1); err == nil {
			t.Errorf("expected limiter wait to fail")
		}
	})
}
