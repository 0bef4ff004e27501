package hashing

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// Known BLAKE3 digest of the 5-byte ASCII string "hello".
const helloDigest = "ea8f163db38682925e4491c5e58d4bb3506ef8c14eb78a86e908c5624a67200f"

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}
	return path
}

func TestHashFileKnownVector(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", []byte("hello"))

	got, err := HashFile(path, 0)
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}
	if got != helloDigest {
		t.Errorf("HashFile() = %s, want %s", got, helloDigest)
	}
	if len(got) != 2*OutputSize {
		t.Errorf("digest length = %d, want %d", len(got), 2*OutputSize)
	}
}

func TestHashFileEmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty", nil)

	got, err := HashFile(path, 0)
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}
	if got != emptyDigest {
		t.Errorf("HashFile() = %s, want %s", got, emptyDigest)
	}
}

func TestHashFileChunkSizeIndependence(t *testing.T) {
	content := make([]byte, 3_000_000)
	for i := range content {
		content[i] = byte(i % 251)
	}
	path := writeFile(t, t.TempDir(), "big.bin", content)

	want, err := HashFile(path, 0)
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}

	for _, chunk := range []int{1, 17, 1024 * 1024} {
		got, err := HashFile(path, chunk)
		if err != nil {
			t.Fatalf("HashFile(chunk=%d) error = %v", chunk, err)
		}
		if got != want {
			t.Errorf("HashFile(chunk=%d) = %s, want %s", chunk, got, want)
		}
	}
}

func TestHashFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := HashFile(filepath.Join(dir, "nope"), 0)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected fs.ErrNotExist, got %v", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		_, err := HashFile(dir, 0)
		if !errors.Is(err, ErrNotRegularFile) {
			t.Errorf("expected ErrNotRegularFile, got %v", err)
		}
	})
}
