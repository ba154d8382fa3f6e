// Package config loads hopdist settings from defaults, an optional YAML file,
// and environment variables, in that order of precedence (later wins).
// Command-line flags are applied on top by the CLI before Validate is called.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color modes for the text report.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config aggregates application configuration values.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Compute ComputeConfig `yaml:"compute"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// InputConfig names the edge list and the label list.
type InputConfig struct {
	Edges  string `yaml:"edges"`
	Labels string `yaml:"labels"`
}

// ComputeConfig tunes the aggregator.
type ComputeConfig struct {
	// Workers is the BFS fan-out; 0 means one per CPU.
	Workers int `yaml:"workers"`
	// MaxDepth bounds each traversal; 0 means unlimited.
	MaxDepth int `yaml:"max_depth"`
}

// OutputConfig controls result presentation.
type OutputConfig struct {
	Format string `yaml:"format"` // text|json
	Color  string `yaml:"color"`  // auto|always|never
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `yaml:"level"`
	Format        string `yaml:"format"` // text|json
	IncludeCaller bool   `yaml:"include_caller"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

const (
	defaultWorkers       = 1
	defaultOutputFormat  = FormatText
	defaultColor         = ColorAuto
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Compute: ComputeConfig{Workers: defaultWorkers},
		Output:  OutputConfig{Format: defaultOutputFormat, Color: defaultColor},
		Logging: LoggingConfig{Level: defaultLoggingLevel, Format: defaultLoggingFormat},
	}
}

// Load returns defaults overlaid with the YAML file at path (skipped when
// path is empty) and then with environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = decode(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// decode rejects unknown keys so typos in the file surface as errors.
func decode(raw []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Input.Edges = valueOrDefault("HOPDIST_EDGES", cfg.Input.Edges)
	cfg.Input.Labels = valueOrDefault("HOPDIST_LABELS", cfg.Input.Labels)
	cfg.Output.Format = valueOrDefault("HOPDIST_OUTPUT", cfg.Output.Format)
	cfg.Output.Color = valueOrDefault("HOPDIST_COLOR", cfg.Output.Color)
	cfg.Metrics.Textfile = valueOrDefault("HOPDIST_METRICS_TEXTFILE", cfg.Metrics.Textfile)
	cfg.Logging.Level = valueOrDefault("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = valueOrDefault("LOG_FORMAT", cfg.Logging.Format)

	if v := os.Getenv("HOPDIST_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HOPDIST_WORKERS value %q: %w", v, err)
		}
		cfg.Compute.Workers = n
	}
	if v := os.Getenv("HOPDIST_MAX_DEPTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HOPDIST_MAX_DEPTH value %q: %w", v, err)
		}
		cfg.Compute.MaxDepth = n
	}
	if v := os.Getenv("LOG_INCLUDE_CALLER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid LOG_INCLUDE_CALLER value %q: %w", v, err)
		}
		cfg.Logging.IncludeCaller = b
	}

	return nil
}

// Validate checks enumerations and numeric ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Compute.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: workers=%d must be >= 0", ErrInvalid, c.Compute.Workers))
	}
	if c.Compute.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("%w: max_depth=%d must be >= 0", ErrInvalid, c.Compute.MaxDepth))
	}
	switch strings.ToLower(c.Output.Format) {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: output format %q", ErrInvalid, c.Output.Format))
	}
	switch strings.ToLower(c.Output.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("%w: color mode %q", ErrInvalid, c.Output.Color))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: log format %q", ErrInvalid, c.Logging.Format))
	}

	return errors.Join(errs...)
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
