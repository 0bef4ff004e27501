package models

import "time"

// ScanResult aggregates one tree scan for reporting.
type ScanResult struct {
	ScanPath    string        `json:"scan_path"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Duration    time.Duration `json:"duration"`
	Records     []FileRecord  `json:"records"`
	Diagnostics []string      `json:"diagnostics,omitempty"`
	TotalFiles  int           `json:"total_files"`
	TotalDirs   int           `json:"total_dirs"`
	TotalBytes  int64         `json:"total_bytes"`
}
