package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harrykwokdev/FluxFile/pkg/models"
)

func sampleResult() *models.ScanResult {
	return &models.ScanResult{
		ScanPath:  "/data",
		StartTime: time.Unix(1_760_000_000, 0),
		EndTime:   time.Unix(1_760_000_001, 0),
		Duration:  time.Second,
		Records: []models.FileRecord{
			{Path: "/data/a.txt", Name: "a.txt", Size: 5, ModifiedAt: 1_750_000_000},
			{Path: "/data/sub", Name: "sub", IsDirectory: true},
		},
		Diagnostics: []string{"permission denied: /data/locked"},
		TotalFiles:  1,
		TotalDirs:   1,
		TotalBytes:  5,
	}
}

func TestGenerateJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	gen, err := NewGenerator(FormatJSON, out, nil)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	path, err := gen.Generate(sampleResult())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if path != out {
		t.Errorf("Generate() path = %s, want %s", path, out)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var decoded models.ScanResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if decoded.ScanPath != "/data" || len(decoded.Records) != 2 {
		t.Errorf("decoded report incomplete: %+v", decoded)
	}
}

func TestGenerateText(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.txt")
	gen, err := NewGenerator(FormatText, out, nil)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	if _, err := gen.Generate(sampleResult()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{"/data/a.txt", "1 diagnostic(s)", "permission denied"} {
		if !strings.Contains(text, want) {
			t.Errorf("text report missing %q:\n%s", want, text)
		}
	}
}

func TestNewGeneratorUnknownFormat(t *testing.T) {
	if _, err := NewGenerator("xml", "", nil); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
