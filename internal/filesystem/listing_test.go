package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func buildListing(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := []struct {
		name string
		size int
		age  time.Duration
	}{
		{"Zebra.txt", 10, 3 * time.Hour},
		{"apple.txt", 30, 1 * time.Hour},
		{"mango.txt", 20, 2 * time.Hour},
		{".secret", 5, 0},
	}
	for _, f := range files {
		path := filepath.Join(root, f.name)
		if err := os.WriteFile(path, make([]byte, f.size), 0o644); err != nil {
			t.Fatal(err)
		}
		mtime := time.Now().Add(-f.age)
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			t.Fatal(err)
		}
	}
	for _, d := range []string{"docs", "build"} {
		if err := os.Mkdir(filepath.Join(root, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func namesOf(t *testing.T, root string, opts ListOptions) []string {
	t.Helper()
	entries, err := ListDirectory(root, opts)
	if err != nil {
		t.Fatalf("ListDirectory() error = %v", err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func TestListDirectorySortByName(t *testing.T) {
	root := buildListing(t)

	got := namesOf(t, root, ListOptions{SortBy: SortByName})
	want := []string{"build", "docs", "apple.txt", "mango.txt", "Zebra.txt"}
	assertOrder(t, got, want)
}

func TestListDirectorySortBySizeDesc(t *testing.T) {
	root := buildListing(t)

	got := namesOf(t, root, ListOptions{SortBy: SortBySize, SortDesc: true})
	want := []string{"build", "docs", "apple.txt", "mango.txt", "Zebra.txt"}
	assertOrder(t, got, want)
}

func TestListDirectorySortByMTime(t *testing.T) {
	root := buildListing(t)

	got := namesOf(t, root, ListOptions{SortBy: SortByMTime})
	// Oldest first; directories (just created) still lead.
	want := []string{"build", "docs", "Zebra.txt", "mango.txt", "apple.txt"}
	assertOrder(t, got, want)
}

func TestListDirectoryHidden(t *testing.T) {
	root := buildListing(t)

	for _, name := range namesOf(t, root, ListOptions{}) {
		if name == ".secret" {
			t.Error(".secret listed without ShowHidden")
		}
	}

	var found bool
	for _, name := range namesOf(t, root, ListOptions{ShowHidden: true}) {
		if name == ".secret" {
			found = true
		}
	}
	if !found {
		t.Error(".secret missing with ShowHidden")
	}
}

func TestListDirectoryErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing", func(t *testing.T) {
		_, err := ListDirectory(filepath.Join(dir, "nope"), ListOptions{})
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected fs.ErrNotExist, got %v", err)
		}
	})

	t.Run("not a directory", func(t *testing.T) {
		file := filepath.Join(dir, "f.txt")
		if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := ListDirectory(file, ListOptions{})
		if !errors.Is(err, ErrNotDirectory) {
			t.Errorf("expected ErrNotDirectory, got %v", err)
		}
	})
}

func assertOrder(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
