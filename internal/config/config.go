package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Hermes  HermesConfig  `yaml:"hermes"`
	Data    DataConfig    `yaml:"data"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port        int `yaml:"port"`
	MetricsPort int `yaml:"metrics_port"`
}

// HermesConfig points at the NATS server. An empty URL disables event publishing.
type HermesConfig struct {
	URL string `yaml:"url"`
}

// DataConfig selects the region table. An empty RegionsFile uses the built-in table.
type DataConfig struct {
	RegionsFile string `yaml:"regions_file"`
}

type ExportConfig struct {
	OutputDir string `yaml:"output_dir"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) APIAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) MetricsAddr() string {
	return fmt.Sprintf(":%d", c.Server.MetricsPort)
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Export: ExportConfig{
			OutputDir: ".",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("CERS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("CERS_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("CERS_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("CERS_REGIONS_FILE"); v != "" {
		cfg.Data.RegionsFile = v
	}
	if v := os.Getenv("CERS_EXPORT_DIR"); v != "" {
		cfg.Export.OutputDir = v
	}
	if v := os.Getenv("CERS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("CERS_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
