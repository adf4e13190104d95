package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

type apiNote struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// fakeNotesAPI serves just enough of the notes API for create and the
// refetch that follows it.
type fakeNotesAPI struct {
	mu     sync.Mutex
	notes  []apiNote
	failed bool
}

func (f *fakeNotesAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failed {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"boom"}`))
		return
	}

	switch {
	case r.URL.Path == "/notes/" && r.Method == http.MethodPost:
		var req apiNote
		json.NewDecoder(r.Body).Decode(&req)
		req.ID = int64(len(f.notes) + 1)
		f.notes = append(f.notes, req)
		json.NewEncoder(w).Encode(req)
	case r.URL.Path == "/notes" && r.Method == http.MethodGet:
		json.NewEncoder(w).Encode(f.notes)
	case r.URL.Path == "/notes/recent" && r.Method == http.MethodGet:
		out := []apiNote{}
		for i := len(f.notes) - 1; i >= 0; i-- {
			out = append(out, f.notes[i])
		}
		json.NewEncoder(w).Encode(out)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func writeTestConfig(t *testing.T, apiURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "notes_api:\n  url: " + apiURL + "\nfallback:\n  driver: memory\n  key: notes\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCreateCommand(t *testing.T) {
	t.Run("Prints the created note", func(t *testing.T) {
		api := &fakeNotesAPI{notes: []apiNote{
			{ID: 1, Title: "Older", Content: "x"},
			{ID: 2, Title: "Newest before create", Content: "y"},
		}}
		ts := httptest.NewServer(api)
		defer ts.Close()

		out, err := runCLI(t, "--config", writeTestConfig(t, ts.URL), "create", "-t", "Groceries", "-m", "milk")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !strings.Contains(out, "Note created") {
			t.Errorf("missing confirmation in %q", out)
		}
		if !strings.Contains(out, "3") || !strings.Contains(out, "Groceries") {
			t.Errorf("expected the created note in output, got %q", out)
		}
		if strings.Contains(out, "Newest before create") {
			t.Errorf("output shows another note: %q", out)
		}
	})

	t.Run("Server failure is returned as an error", func(t *testing.T) {
		api := &fakeNotesAPI{failed: true}
		ts := httptest.NewServer(api)
		defer ts.Close()

		out, err := runCLI(t, "--config", writeTestConfig(t, ts.URL), "create", "-t", "T", "-m", "C")
		if err == nil {
			t.Fatal("expected an error")
		}
		if !strings.Contains(err.Error(), "creating note") {
			t.Errorf("unexpected err: %v", err)
		}
		if strings.Contains(out, "Note created") {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("Bad config is returned as an error", func(t *testing.T) {
		_, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "create", "-t", "T", "-m", "C")
		if err == nil || !strings.Contains(err.Error(), "loading config") {
			t.Errorf("expected a config error, got %v", err)
		}
	})
}
