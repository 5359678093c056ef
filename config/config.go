package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/prasetyowira/qrgen/constant"
)

// Config holds runtime settings. The defaults reproduce the fixed behaviour
// of the generator, so no configuration is required.
type Config struct {
	// Addr is the loopback address the window is served on
	Addr string `env:"ADDR" env-default:"127.0.0.1:8765" yaml:"addr"`
	// OutputDir receives one PNG per domain
	OutputDir string `env:"OUTPUT_DIR" env-default:"output" yaml:"outputDir"`
	// PreviewSize is the edge length of the displayed thumbnail
	PreviewSize int `env:"PREVIEW_SIZE" env-default:"180" yaml:"previewSize"`
	// ModuleSize is the pixel size of one QR module in the saved file
	ModuleSize int `env:"MODULE_SIZE" env-default:"10" yaml:"moduleSize"`
	// PreviewCacheSize bounds the number of thumbnails kept in memory
	PreviewCacheSize int `env:"PREVIEW_CACHE_SIZE" env-default:"64" yaml:"previewCacheSize"`
	// LogLevel INFO selects JSON production logs, anything else debug console logs
	LogLevel string `env:"LOG_LEVEL" env-default:"INFO" yaml:"logLevel"`
	// ShutdownTimeout bounds the graceful shutdown of the window server
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"shutdownTimeout"`
}

// LoadConfig reads the configuration from the environment, or from the YAML
// file at path (environment variables still override it) when path is set.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be expressed as defaults
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("invalid config: OUTPUT_DIR is empty")
	}
	if c.PreviewSize <= 0 {
		return fmt.Errorf("invalid config: PREVIEW_SIZE: %s", constant.ErrInvalidImageSize)
	}
	if c.ModuleSize <= 0 {
		return fmt.Errorf("invalid config: MODULE_SIZE: %s", constant.ErrInvalidImageSize)
	}
	return nil
}

// IsProduction reports whether logs should use the production encoder
func (c *Config) IsProduction() bool {
	return c.LogLevel == constant.LogLevelInfo
}
