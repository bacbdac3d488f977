package model

import "time"

// Config holds runtime configuration for the CLI surface.
//
// The classification thresholds themselves are fixed policy constants in the
// arbiter package and are deliberately not configurable here: two runs of the
// same binary over the same trace must always agree.
type Config struct {
	Output      OutputConfig      `mapstructure:"output" yaml:"output"`
	Concurrency ConcurrencyConfig `mapstructure:"concurrency" yaml:"concurrency"`
	Cache       CacheConfig       `mapstructure:"cache" yaml:"cache"`
	Guardrail   GuardrailConfig   `mapstructure:"guardrail" yaml:"guardrail"`
	Trace       TraceConfig       `mapstructure:"trace" yaml:"trace"`
	Watch       WatchConfig       `mapstructure:"watch" yaml:"watch"`
	Input       InputConfig       `mapstructure:"input" yaml:"input"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `mapstructure:"verbose" yaml:"verbose"`
	IncludeFooter bool `mapstructure:"include_footer" yaml:"include_footer"`
}

// ConcurrencyConfig controls batch processing parallelism.
type ConcurrencyConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// CacheConfig controls the analysis result cache used in batch mode.
// Keys are content hashes of the input trace files, so duplicate traces in a
// large batch are analyzed once.
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	Dir       string        `mapstructure:"dir" yaml:"dir"`
	MemoryTTL time.Duration `mapstructure:"memory_ttl" yaml:"memory_ttl"`
	DiskTTL   time.Duration `mapstructure:"disk_ttl" yaml:"disk_ttl"`
}

// GuardrailConfig controls the content guardrail that gates raw text before
// trace generation. ExtraSensitivePatterns extends the built-in trigger list
// with site-local regular expressions.
type GuardrailConfig struct {
	Enabled                bool     `mapstructure:"enabled" yaml:"enabled"`
	ExtraSensitivePatterns []string `mapstructure:"extra_sensitive_patterns" yaml:"extra_sensitive_patterns"`
}

// TraceConfig controls trace generation from raw text.
type TraceConfig struct {
	IncludeText bool   `mapstructure:"include_text" yaml:"include_text"`
	SourceTitle string `mapstructure:"source_title" yaml:"source_title"`
	SourceKind  string `mapstructure:"source_kind" yaml:"source_kind"`
}

// WatchConfig controls the directory watcher. EventsPerSecond and Burst bound
// how often a single file may trigger re-analysis when editors emit bursts of
// write events.
type WatchConfig struct {
	EventsPerSecond float64 `mapstructure:"events_per_second" yaml:"events_per_second"`
	Burst           int     `mapstructure:"burst" yaml:"burst"`
}

// InputConfig controls trace-document loading.
type InputConfig struct {
	ValidateSchema bool `mapstructure:"validate_schema" yaml:"validate_schema"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Cache: CacheConfig{
			Enabled:   false,
			Dir:       "",
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Guardrail: GuardrailConfig{
			Enabled: true,
		},
		Trace: TraceConfig{
			IncludeText: false,
			SourceTitle: "Run",
			SourceKind:  "user_text",
		},
		Watch: WatchConfig{
			EventsPerSecond: 2.0,
			Burst:           3,
		},
		Input: InputConfig{
			ValidateSchema: false,
		},
	}
}
