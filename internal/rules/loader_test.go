package rules

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	content := `exclude:
  - .git
  - node_modules
  - vendor
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rs, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []string{".git", "node_modules", "vendor"}
	if len(rs.Exclude) != len(want) {
		t.Fatalf("Exclude = %v, want %v", rs.Exclude, want)
	}
	for i, name := range want {
		if rs.Exclude[i] != name {
			t.Errorf("Exclude[%d] = %s, want %s", i, rs.Exclude[i], name)
		}
	}
}

func TestLoadMissingProfile(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"nonexistent file", filepath.Join(t.TempDir(), "nope.yaml")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := NewLoader(tt.path).Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(rs.Exclude) != 0 {
				t.Errorf("expected empty rule set, got %v", rs.Exclude)
			}
		})
	}
}

func TestLoadMalformedProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("exclude: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("expected a parse error")
	}
}
