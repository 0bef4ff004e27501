package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/harrykwokdev/FluxFile/pkg/models"
	"go.uber.org/zap"
)

// ErrNotDirectory is returned when a scan root exists but is not a
// directory.
var ErrNotDirectory = errors.New("not a directory")

// fatalDiagnosticPrefix marks a diagnostic that also aborted the
// traversal; it is surfaced both in the diagnostics list and as the
// returned error so partial results are not lost.
const fatalDiagnosticPrefix = "fatal error: "

// ScanOptions controls a directory scan.
type ScanOptions struct {
	// MaxDepth bounds recursion; 0 means unbounded. Root children sit
	// at depth 1.
	MaxDepth int
	// IncludeHidden includes entries whose name begins with a dot.
	// When false, a hidden directory prunes its entire subtree.
	IncludeHidden bool
	// Exclude lists directory names that are pruned from traversal.
	Exclude []string
}

// Walker walks a directory tree collecting per-entry metadata plus
// non-fatal diagnostics.
type Walker struct {
	opts    ScanOptions
	logger  *zap.Logger
	exclude map[string]bool
}

// NewWalker creates a walker for the given options.
func NewWalker(opts ScanOptions, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	exclude := make(map[string]bool)
	for _, name := range opts.Exclude {
		exclude[name] = true
	}
	return &Walker{
		opts:    opts,
		logger:  logger,
		exclude: exclude,
	}
}

// Scan performs a depth-first traversal rooted at root. It returns
// the records collected in discovery order and a list of per-entry
// diagnostics. An invalid root fails before traversal begins; a
// fatal mid-scan condition is returned alongside the partial results.
func (w *Walker) Scan(root string) ([]models.FileRecord, []string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("path does not exist: %s: %w", root, fs.ErrNotExist)
		}
		return nil, nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("path is not a directory: %s: %w", root, ErrNotDirectory)
	}

	records := make([]models.FileRecord, 0, 64)
	var diagnostics []string

	err = w.walk(root, 1, &records, &diagnostics)
	if err != nil {
		diagnostics = append(diagnostics, fatalDiagnosticPrefix+err.Error())
	}
	return records, diagnostics, err
}

// walk descends one directory. level is the depth of dir's children.
func (w *Walker) walk(dir string, level int, records *[]models.FileRecord, diagnostics *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			// Permission-denied directories are skipped transparently.
			w.logger.Debug("Skipping unreadable directory", zap.String("path", dir))
			return nil
		}
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if !w.opts.IncludeHidden && isHidden(name) {
			// The whole hidden subtree is pruned, not just its root.
			w.logger.Debug("Skipping hidden entry", zap.String("path", path))
			continue
		}
		if w.exclude[name] && entry.IsDir() {
			w.logger.Debug("Skipping excluded directory", zap.String("path", path))
			continue
		}

		info, err := entry.Info()
		if err != nil {
			*diagnostics = append(*diagnostics, err.Error())
			continue
		}

		record := models.FileRecord{
			Path:      path,
			Name:      name,
			IsSymlink: info.Mode()&fs.ModeSymlink != 0,
		}

		var mtime time.Time
		if record.IsSymlink {
			// Classify by the target but never measure it: symlinks
			// report size zero. A broken link is a diagnostic.
			target, err := os.Stat(path)
			if err != nil {
				*diagnostics = append(*diagnostics, err.Error())
				continue
			}
			record.IsDirectory = target.IsDir()
			mtime = target.ModTime()
		} else {
			record.IsDirectory = info.IsDir()
			if !record.IsDirectory {
				record.Size = info.Size()
			}
			mtime = info.ModTime()
		}
		record.ModifiedAt = reconcileModTime(mtime)

		*records = append(*records, record)

		// Descend into real directories only; symlinked directories
		// are recorded but never followed.
		if record.IsDirectory && !record.IsSymlink {
			if w.opts.MaxDepth == 0 || level < w.opts.MaxDepth {
				if err := w.walk(path, level+1, records, diagnostics); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// isHidden reports whether a name is hidden (dot prefix).
func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
