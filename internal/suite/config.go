package suite

import (
	"math"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// Config controls a suite run. It can be loaded from YAML; flags override
// individual fields.
type Config struct {
	// Runs is the number of tests per timed run.
	Runs int `yaml:"runs" json:"runs"`
	// Output is one of text, yaml or json.
	Output string `yaml:"output" json:"output"`
	// Color enables styled section headers in text output.
	Color bool `yaml:"color" json:"color"`
	// BulkChunk is the number of elements per bulk append. Zero skips the
	// bulk run.
	BulkChunk int `yaml:"bulk_chunk" json:"bulk_chunk"`
}

// DefaultConfig returns the defaults used when no file is given.
func DefaultConfig() Config {
	return Config{
		Runs:      1000,
		Output:    OutputText,
		Color:     true,
		BulkChunk: 16,
	}
}

// LoadConfig reads path over DefaultConfig. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Runs <= 0 || uint64(c.Runs) > math.MaxUint32 {
		return errors.Errorf("invalid number of runs `%d': valid range is 1 to %d", c.Runs, uint64(math.MaxUint32))
	}
	switch c.Output {
	case OutputText, OutputYAML, OutputJSON:
	default:
		return errors.Errorf("unsupported output format: %s", c.Output)
	}
	if c.BulkChunk < 0 {
		return errors.Errorf("bulk_chunk must not be negative, got %d", c.BulkChunk)
	}
	return nil
}
