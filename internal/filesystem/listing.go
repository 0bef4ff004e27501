package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harrykwokdev/FluxFile/pkg/models"
)

// Sort keys accepted by ListDirectory.
const (
	SortByName  = "name"
	SortBySize  = "size"
	SortByMTime = "mtime"
)

// ListOptions controls a single-level directory listing.
type ListOptions struct {
	ShowHidden bool
	SortBy     string // name (default), size, mtime
	SortDesc   bool
}

// ListDirectory returns the direct children of path, sorted by the
// requested key with directories always ordered before files.
// Entries that cannot be stat'd are skipped.
func ListDirectory(path string, opts ListOptions) ([]models.DirectoryEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("path does not exist: %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s: %w", path, ErrNotDirectory)
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", path, err)
	}

	entries := make([]models.DirectoryEntry, 0, len(dirEntries))
	for _, entry := range dirEntries {
		name := entry.Name()
		if !opts.ShowHidden && isHidden(name) {
			continue
		}
		st, err := entry.Info()
		if err != nil {
			continue
		}
		e := models.DirectoryEntry{
			Name:        name,
			Path:        filepath.Join(path, name),
			IsDirectory: entry.IsDir(),
			IsSymlink:   st.Mode()&fs.ModeSymlink != 0,
			ModifiedAt:  reconcileModTime(st.ModTime()),
		}
		if !e.IsDirectory && !e.IsSymlink {
			e.Size = st.Size()
		}
		entries = append(entries, e)
	}

	sortEntries(entries, opts)
	return entries, nil
}

// sortEntries orders entries by the requested key, then moves
// directories ahead of files, preserving the key order within each
// group.
func sortEntries(entries []models.DirectoryEntry, opts ListOptions) {
	less := func(a, b models.DirectoryEntry) bool {
		switch opts.SortBy {
		case SortBySize:
			return a.Size < b.Size
		case SortByMTime:
			return a.ModifiedAt < b.ModifiedAt
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if opts.SortDesc {
			return less(entries[j], entries[i])
		}
		return less(entries[i], entries[j])
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].IsDirectory && !entries[j].IsDirectory
	})
}
