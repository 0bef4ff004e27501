package core

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/harrykwokdev/FluxFile/internal/config"
	"github.com/harrykwokdev/FluxFile/internal/filesystem"
	"github.com/harrykwokdev/FluxFile/internal/hashing"
	"github.com/harrykwokdev/FluxFile/internal/rules"
	"github.com/harrykwokdev/FluxFile/internal/sandbox"
	"github.com/harrykwokdev/FluxFile/pkg/models"
	"go.uber.org/zap"
)

// Service wires the walker, hasher and prober behind sandbox
// validation. It holds no per-call state; every operation returns a
// fresh result.
type Service struct {
	config  *config.Config
	logger  *zap.Logger
	box     *sandbox.Sandbox
	exclude []string
}

// NewService builds a service from configuration: sandbox roots and
// the optional YAML scan profile are resolved here, once.
func NewService(cfg *config.Config, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	box, err := sandbox.New(cfg.RootPath, cfg.AllowedPaths, cfg.ForbiddenPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sandbox: %w", err)
	}

	profile, err := rules.NewLoader(cfg.RulesPath).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load scan profile: %w", err)
	}
	exclude := append([]string{}, cfg.Exclude...)
	exclude = append(exclude, profile.Exclude...)

	logger.Info("Initialized service",
		zap.String("root", box.Root()),
		zap.Int("exclude_rules", len(exclude)))

	return &Service{
		config:  cfg,
		logger:  logger,
		box:     box,
		exclude: exclude,
	}, nil
}

// ScanTree walks the tree rooted at path and aggregates the records
// into a ScanResult.
func (s *Service) ScanTree(path string) (*models.ScanResult, error) {
	abs, err := s.box.Resolve(path)
	if err != nil {
		return nil, err
	}

	result := &models.ScanResult{
		ScanPath:  abs,
		StartTime: time.Now(),
	}

	walker := filesystem.NewWalker(filesystem.ScanOptions{
		MaxDepth:      s.config.MaxDepth,
		IncludeHidden: s.config.IncludeHidden,
		Exclude:       s.exclude,
	}, s.logger)

	records, diagnostics, err := walker.Scan(abs)
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	result.Records = records
	result.Diagnostics = diagnostics
	for _, r := range records {
		if r.IsDirectory {
			result.TotalDirs++
		} else {
			result.TotalFiles++
			result.TotalBytes += r.Size
		}
	}
	if err != nil {
		// Partial results travel with the error.
		return result, err
	}

	s.logger.Info("Scan completed",
		zap.String("path", abs),
		zap.Duration("duration", result.Duration),
		zap.Int("files", result.TotalFiles),
		zap.Int("dirs", result.TotalDirs),
		zap.Int("diagnostics", len(result.Diagnostics)))

	return result, nil
}

// HashFile hashes one file with the configured chunk size.
func (s *Service) HashFile(path string) (string, error) {
	abs, err := s.box.Resolve(path)
	if err != nil {
		return "", err
	}
	chunk := int(filesystem.ParseSize(s.config.ChunkSize))
	digest, err := hashing.HashFile(abs, chunk)
	if err != nil {
		return "", err
	}
	s.logger.Debug("Hashed file", zap.String("path", abs), zap.String("hash", digest))
	return digest, nil
}

// HashBatch hashes many files over the configured worker pool. Paths
// the sandbox rejects become per-path error results, keyed by the
// caller's spelling; the batch itself never fails. Every input
// spelling gets an entry, even when several spellings resolve to the
// same file.
func (s *Service) HashBatch(paths []string) map[string]models.HashResult {
	results := make(map[string]models.HashResult, len(paths))
	resolved := make([]string, len(paths))
	toHash := make([]string, 0, len(paths))

	for i, p := range paths {
		abs, err := s.box.Resolve(p)
		if err != nil {
			results[p] = models.HashResult{Path: p, Err: err.Error()}
			continue
		}
		resolved[i] = abs
		toHash = append(toHash, abs)
	}

	hashed := hashing.HashFiles(toHash, s.config.Workers)
	for i, p := range paths {
		if resolved[i] == "" {
			// Sandbox rejection already recorded above.
			continue
		}
		r := hashed[resolved[i]]
		r.Path = p
		results[p] = r
	}
	return results
}

// StatPath resolves rich metadata for one path.
func (s *Service) StatPath(path string) (*models.FileMetadata, error) {
	abs, err := s.box.Resolve(path)
	if err != nil {
		return nil, err
	}
	return filesystem.StatPath(abs)
}

// ListDirectory lists one directory level, sorted per configuration,
// with paths rendered relative to the sandbox root.
func (s *Service) ListDirectory(path string) (*models.DirectoryListing, error) {
	abs, err := s.box.Resolve(path)
	if err != nil {
		return nil, err
	}

	entries, err := filesystem.ListDirectory(abs, filesystem.ListOptions{
		ShowHidden: s.config.IncludeHidden,
		SortBy:     s.config.SortBy,
		SortDesc:   s.config.SortDesc,
	})
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].Path = s.box.Rel(entries[i].Path)
	}

	listing := &models.DirectoryListing{
		Path:    s.box.Rel(abs),
		Entries: entries,
		Total:   len(entries),
	}
	if abs != s.box.Root() {
		listing.Parent = s.box.Rel(filepath.Dir(abs))
	}
	return listing, nil
}
