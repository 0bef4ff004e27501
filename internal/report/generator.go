package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/harrykwokdev/FluxFile/pkg/models"
	"go.uber.org/zap"
)

// Supported report formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Generator renders scan results to a file or stdout.
type Generator struct {
	format     string
	outputFile string
	logger     *zap.Logger
}

// NewGenerator creates a generator for the given format. An empty
// output file means stdout.
func NewGenerator(format, outputFile string, logger *zap.Logger) (*Generator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch format {
	case FormatJSON, FormatText, "":
	default:
		return nil, fmt.Errorf("unknown report format: %s", format)
	}
	return &Generator{format: format, outputFile: outputFile, logger: logger}, nil
}

// Generate writes the report and returns the output path ("" when
// written to stdout).
func (g *Generator) Generate(result *models.ScanResult) (string, error) {
	out := io.Writer(os.Stdout)
	if g.outputFile != "" {
		f, err := os.Create(g.outputFile)
		if err != nil {
			return "", fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	var err error
	switch g.format {
	case FormatJSON:
		err = g.generateJSON(out, result)
	default:
		err = g.generateText(out, result)
	}
	if err != nil {
		return "", err
	}

	if g.outputFile != "" {
		g.logger.Info("Report written", zap.String("path", g.outputFile))
	}
	return g.outputFile, nil
}

// generateJSON renders the result as pretty-printed JSON.
func (g *Generator) generateJSON(w io.Writer, result *models.ScanResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// generateText renders the result as an aligned text summary.
func (g *Generator) generateText(w io.Writer, result *models.ScanResult) error {
	fmt.Fprintf(w, "Scan of %s\n", result.ScanPath)
	fmt.Fprintf(w, "  Duration: %s\n", result.Duration)
	fmt.Fprintf(w, "  Files:    %d (%d bytes)\n", result.TotalFiles, result.TotalBytes)
	fmt.Fprintf(w, "  Dirs:     %d\n", result.TotalDirs)
	fmt.Fprintln(w)

	for _, r := range result.Records {
		kind := "f"
		switch {
		case r.IsSymlink:
			kind = "l"
		case r.IsDirectory:
			kind = "d"
		}
		fmt.Fprintf(w, "%s %12d  %s\n", kind, r.Size, r.Path)
	}

	if len(result.Diagnostics) > 0 {
		fmt.Fprintf(w, "\n%d diagnostic(s):\n", len(result.Diagnostics))
		for _, d := range result.Diagnostics {
			fmt.Fprintf(w, "  - %s\n", d)
		}
	}
	return nil
}
