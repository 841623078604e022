package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SegmenterSettings holds the transcript segmentation and enrichment
// parameters.
type SegmenterSettings struct {
	// MaxChunkSpanSec bounds a chunk's total duration during grouping.
	MaxChunkSpanSec float64 `yaml:"max_chunk_span_sec"`
	// EnrichMaxConcurrent caps concurrent enrichment calls per batch.
	EnrichMaxConcurrent int `yaml:"enrich_max_concurrent"`
	// EnrichRatePerMin throttles enrichment calls across a batch.
	EnrichRatePerMin int `yaml:"enrich_rate_per_min"`
}

// Config holds the full worker configuration.
type Config struct {
	SegmenterSettings `yaml:",inline"`

	// DataDir is where narration audio files are written.
	DataDir string `yaml:"data_dir"`
	// Voice is the TTS voice used for narration.
	Voice string `yaml:"voice"`
	// ClipsPerChunk is how many stock clip candidates to keep per chunk.
	ClipsPerChunk int `yaml:"clips_per_chunk"`
}

// Default returns a Config with the defaults used in production.
func Default() *Config {
	return &Config{
		SegmenterSettings: SegmenterSettings{
			MaxChunkSpanSec:     30,
			EnrichMaxConcurrent: 3,
			EnrichRatePerMin:    30,
		},
		DataDir:       "data",
		Voice:         "alloy",
		ClipsPerChunk: 3,
	}
}

// FromEnv returns the defaults overlaid with environment variables.
func FromEnv() *Config {
	cfg := Default()

	if v := os.Getenv("MAX_CHUNK_SPAN_SEC"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.MaxChunkSpanSec = f
		}
	}
	if v := os.Getenv("ENRICH_MAX_CONCURRENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.EnrichMaxConcurrent = n
		}
	}
	if v := os.Getenv("ENRICH_RATE_PER_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.EnrichRatePerMin = n
		}
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TTS_VOICE"); v != "" {
		cfg.Voice = v
	}
	if v := os.Getenv("CLIPS_PER_CHUNK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ClipsPerChunk = n
		}
	}

	return cfg
}

// LoadFile returns the defaults overlaid with a YAML config file.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.MaxChunkSpanSec <= 0 {
		return nil, fmt.Errorf("max_chunk_span_sec must be > 0, got %v", cfg.MaxChunkSpanSec)
	}
	return cfg, nil
}
