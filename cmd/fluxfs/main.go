package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/harrykwokdev/FluxFile/internal/config"
	"github.com/harrykwokdev/FluxFile/internal/core"
	"github.com/harrykwokdev/FluxFile/internal/report"
	"github.com/harrykwokdev/FluxFile/pkg/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "1.0.0"
	logger  *zap.Logger
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fluxfs",
		Short: "FluxFile - High-performance filesystem traversal and hashing engine",
		Long: `Concurrent filesystem engine: recursive directory scanning with
per-entry diagnostics, streaming BLAKE3 hashing, parallel batch
hashing, and rich path metadata.`,
		Version: version,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	// Global verbose flag
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Add commands
	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(hashCmd())
	rootCmd.AddCommand(statCmd())
	rootCmd.AddCommand(lsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initLogger initializes the global logger based on the verbose flag.
func initLogger() error {
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		// Silent logger - only errors
		cfg := zap.Config{
			Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
			Encoding:         "json",
			OutputPaths:      []string{"stderr"},
			ErrorOutputPaths: []string{"stderr"},
			EncoderConfig:    zap.NewProductionEncoderConfig(),
		}
		logger, err = cfg.Build()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
	}
	return err
}

// newService loads the configuration, applies overrides, and builds
// the service.
func newService(override func(*config.Config)) (*core.Service, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", zap.Error(err))
		return nil, nil, err
	}
	if override != nil {
		override(cfg)
	}
	svc, err := core.NewService(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize service", zap.Error(err))
		return nil, nil, err
	}
	return svc, cfg, nil
}

// scanCmd creates the scan command.
func scanCmd() *cobra.Command {
	var (
		maxDepth     int
		hidden       bool
		exclude      []string
		rulesPath    string
		rootPath     string
		reportFormat string
		outputFile   string
	)

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Recursively scan a directory tree",
		Long:  `Walk a directory tree collecting per-entry metadata and non-fatal diagnostics.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initLogger(); err != nil {
				return err
			}
			defer logger.Sync()

			svc, cfg, err := newService(func(cfg *config.Config) {
				if cmd.Flags().Changed("max-depth") {
					cfg.MaxDepth = maxDepth
				}
				if hidden {
					cfg.IncludeHidden = true
				}
				if len(exclude) > 0 {
					cfg.Exclude = exclude
				}
				if rulesPath != "" {
					cfg.RulesPath = rulesPath
				}
				if rootPath != "" {
					cfg.RootPath = rootPath
				}
				if reportFormat != "" {
					cfg.ReportFormat = reportFormat
				}
				if outputFile != "" {
					cfg.OutputFile = outputFile
				}
			})
			if err != nil {
				return err
			}

			result, err := svc.ScanTree(args[0])
			if err != nil {
				return err
			}

			gen, err := report.NewGenerator(cfg.ReportFormat, cfg.OutputFile, logger)
			if err != nil {
				return err
			}
			_, err = gen.Generate(result)
			return err
		},
	}

	cmd.Flags().IntVarP(&maxDepth, "max-depth", "d", 0, "Maximum recursion depth (0 = unbounded)")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "Include hidden entries")
	cmd.Flags().StringSliceVarP(&exclude, "exclude", "e", nil, "Directory names to exclude")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "YAML scan profile path")
	cmd.Flags().StringVar(&rootPath, "root", "", "Sandbox root (default /)")
	cmd.Flags().StringVarP(&reportFormat, "format", "f", "", "Report format: text, json")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Report output file (default stdout)")

	return cmd
}

// hashCmd creates the hash command.
func hashCmd() *cobra.Command {
	var (
		workers   int
		chunkSize string
		rootPath  string
	)

	cmd := &cobra.Command{
		Use:   "hash [paths...]",
		Short: "Compute BLAKE3 digests of files",
		Long: `Hash one file synchronously, or fan a list of files out across a
worker pool. Per-file failures are reported without aborting the batch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initLogger(); err != nil {
				return err
			}
			defer logger.Sync()

			svc, _, err := newService(func(cfg *config.Config) {
				if workers > 0 {
					cfg.Workers = workers
				}
				if chunkSize != "" {
					cfg.ChunkSize = chunkSize
				}
				if rootPath != "" {
					cfg.RootPath = rootPath
				}
			})
			if err != nil {
				return err
			}

			if len(args) == 1 {
				digest, err := svc.HashFile(args[0])
				if err != nil {
					return err
				}
				fmt.Printf("%s  %s\n", digest, args[0])
				return nil
			}

			results := svc.HashBatch(args)
			failed := printBatchResults(os.Stdout, args, results)
			if failed > 0 {
				logger.Warn("Some files failed to hash", zap.Int("failed", failed))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Worker count (0 = hardware concurrency)")
	cmd.Flags().StringVarP(&chunkSize, "chunk-size", "c", "", "Read buffer size, e.g. 1M")
	cmd.Flags().StringVar(&rootPath, "root", "", "Sandbox root (default /)")

	return cmd
}

// printBatchResults writes one line per requested path and returns
// the number of failures. A path with no result at all counts as a
// failure, never as an empty success.
func printBatchResults(w io.Writer, paths []string, results map[string]models.HashResult) int {
	failed := 0
	for _, path := range paths {
		r, ok := results[path]
		switch {
		case !ok:
			failed++
			fmt.Fprintf(w, "error: %s: no result\n", path)
		case r.OK():
			fmt.Fprintf(w, "%s  %s\n", r.Digest, path)
		default:
			failed++
			fmt.Fprintf(w, "error: %s: %s\n", path, r.Err)
		}
	}
	return failed
}

// statCmd creates the stat command.
func statCmd() *cobra.Command {
	var rootPath string

	cmd := &cobra.Command{
		Use:   "stat [path]",
		Short: "Show rich metadata for a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initLogger(); err != nil {
				return err
			}
			defer logger.Sync()

			svc, _, err := newService(func(cfg *config.Config) {
				if rootPath != "" {
					cfg.RootPath = rootPath
				}
			})
			if err != nil {
				return err
			}

			meta, err := svc.StatPath(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", meta.Path)
			fmt.Printf("  Type:        %s", meta.TypeName)
			if meta.IsSymlink {
				fmt.Printf(" (symlink)")
			}
			fmt.Println()
			fmt.Printf("  Size:        %d\n", meta.Size)
			fmt.Printf("  Modified:    %d\n", meta.ModifiedAt)
			fmt.Printf("  Permissions: %s (0%o)\n", meta.PermString(), meta.Permissions)
			return nil
		},
	}

	cmd.Flags().StringVar(&rootPath, "root", "", "Sandbox root (default /)")

	return cmd
}

// lsCmd creates the ls command.
func lsCmd() *cobra.Command {
	var (
		hidden   bool
		sortBy   string
		sortDesc bool
		rootPath string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List one directory level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initLogger(); err != nil {
				return err
			}
			defer logger.Sync()

			svc, _, err := newService(func(cfg *config.Config) {
				if hidden {
					cfg.IncludeHidden = true
				}
				if sortBy != "" {
					cfg.SortBy = sortBy
				}
				if sortDesc {
					cfg.SortDesc = true
				}
				if rootPath != "" {
					cfg.RootPath = rootPath
				}
			})
			if err != nil {
				return err
			}

			listing, err := svc.ListDirectory(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(listing, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Printf("%s (%d entries)\n", listing.Path, listing.Total)
			for _, e := range listing.Entries {
				kind := " "
				switch {
				case e.IsSymlink:
					kind = "l"
				case e.IsDirectory:
					kind = "d"
				}
				fmt.Printf("%s %12d  %s\n", kind, e.Size, e.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&hidden, "hidden", false, "Show hidden entries")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort key: name, size, mtime")
	cmd.Flags().BoolVar(&sortDesc, "desc", false, "Sort descending")
	cmd.Flags().StringVar(&rootPath, "root", "", "Sandbox root (default /)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}
