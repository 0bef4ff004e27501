package sandbox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot is returned for a path that escapes the sandbox root
// and every extra allowed root.
var ErrOutsideRoot = errors.New("path is outside the allowed roots")

// ErrForbidden is returned for a path under a forbidden prefix.
var ErrForbidden = errors.New("access to path is forbidden")

// Sandbox confines filesystem operations to a root directory, with
// optional extra allowed roots and a forbidden-prefix list.
type Sandbox struct {
	root      string
	allowed   []string
	forbidden []string
}

// New creates a sandbox rooted at root. Extra allowed roots admit
// paths outside root; forbidden prefixes are denied even inside it.
func New(root string, allowed, forbidden []string) (*Sandbox, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve sandbox root %s: %w", root, err)
	}
	// Pin the root to its symlink-free form so Resolve comparisons
	// hold when the root path itself travels through a link.
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	s := &Sandbox{root: filepath.Clean(abs)}
	for _, a := range allowed {
		s.allowed = append(s.allowed, filepath.Clean(a))
	}
	for _, f := range forbidden {
		s.forbidden = append(s.forbidden, filepath.Clean(f))
	}
	return s, nil
}

// Root returns the sandbox root.
func (s *Sandbox) Root() string {
	return s.root
}

// Resolve validates path and returns its absolute form. The path must
// exist, sit under the root or an allowed root, and avoid every
// forbidden prefix. Relative paths are taken relative to the root.
func (s *Sandbox) Resolve(path string) (string, error) {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(s.root, abs)
	}
	abs = filepath.Clean(abs)

	// Resolve symlinks in the parent chain so a link cannot escape
	// the root; the terminal component may itself be a link.
	if resolved, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		abs = filepath.Join(resolved, filepath.Base(abs))
	}

	if !s.contains(abs) {
		return "", fmt.Errorf("%s: %w", path, ErrOutsideRoot)
	}
	for _, f := range s.forbidden {
		if underPrefix(abs, f) {
			return "", fmt.Errorf("%s: %w", path, ErrForbidden)
		}
	}

	if _, err := os.Lstat(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("path does not exist: %s: %w", path, fs.ErrNotExist)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	return abs, nil
}

// Rel renders an absolute path as a "/"-prefixed path relative to the
// sandbox root, for display.
func (s *Sandbox) Rel(abs string) string {
	rel, err := filepath.Rel(s.root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return abs
	}
	if rel == "." {
		return "/"
	}
	return "/" + filepath.ToSlash(rel)
}

func (s *Sandbox) contains(abs string) bool {
	if underPrefix(abs, s.root) {
		return true
	}
	for _, a := range s.allowed {
		if underPrefix(abs, a) {
			return true
		}
	}
	return false
}

// underPrefix reports whether abs equals prefix or sits below it.
func underPrefix(abs, prefix string) bool {
	if abs == prefix {
		return true
	}
	if prefix == string(filepath.Separator) {
		return true
	}
	return strings.HasPrefix(abs, prefix+string(filepath.Separator))
}
