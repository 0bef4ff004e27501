package config

import (
	"github.com/spf13/viper"
)

// Config represents the engine configuration.
type Config struct {
	// Scan settings
	RootPath       string   `mapstructure:"root_path"`       // sandbox root
	AllowedPaths   []string `mapstructure:"allowed_paths"`   // extra roots admitted by the sandbox
	ForbiddenPaths []string `mapstructure:"forbidden_paths"` // prefixes denied even inside the root
	MaxDepth       int      `mapstructure:"max_depth"`       // scan recursion bound, 0 = unbounded
	IncludeHidden  bool     `mapstructure:"include_hidden"`  // include dot entries
	Exclude        []string `mapstructure:"exclude"`         // directory names pruned from scans
	RulesPath      string   `mapstructure:"rules_path"`      // optional YAML scan profile

	// Hash settings
	Workers   int    `mapstructure:"workers"`    // batch hash workers, 0 = auto
	ChunkSize string `mapstructure:"chunk_size"` // read buffer size, e.g. "1M"

	// Listing settings
	SortBy   string `mapstructure:"sort_by"`   // name, size, mtime
	SortDesc bool   `mapstructure:"sort_desc"`

	// Output settings
	ReportFormat string `mapstructure:"report_format"` // json, text
	OutputFile   string `mapstructure:"output_file"`   // empty = stdout
}

// LoadConfig loads configuration from environment variables and
// defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("root_path", "/")
	v.SetDefault("allowed_paths", []string{})
	v.SetDefault("forbidden_paths", []string{})
	v.SetDefault("max_depth", 0)
	v.SetDefault("include_hidden", false)
	v.SetDefault("exclude", []string{})
	v.SetDefault("rules_path", "")
	v.SetDefault("workers", 0)
	v.SetDefault("chunk_size", "1M")
	v.SetDefault("sort_by", "name")
	v.SetDefault("sort_desc", false)
	v.SetDefault("report_format", "text")
	v.SetDefault("output_file", "")

	// Read environment variables
	v.SetEnvPrefix("FLUXFS")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
