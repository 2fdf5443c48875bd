package configs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// FileConfig defines the structure loaded from the optional YAML
// configuration file. Environment variables override every field.
type FileConfig struct {
	BaseURL               string `yaml:"base_url,omitempty"`
	LogLevel              string `yaml:"log_level,omitempty"`
	TLSInsecureSkipVerify *bool  `yaml:"tls_insecure_skip_verify,omitempty"`
}

// Config holds the final application configuration, merged from the optional
// file and environment variables. Environment fields use the prefix
// "COMEXSTAT_".
type Config struct {
	// Config file path (loaded first from env). Empty means no file.
	ConfigFilePath string `envconfig:"CONFIG_FILE"`

	BaseURL           string        `envconfig:"BASE_URL" default:"https://api-comexstat.mdic.gov.br"`
	HTTPClientTimeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"30s"`

	// TLSInsecureSkipVerify disables upstream certificate validation. The
	// government API has a history of certificate problems; leave this on
	// only for that upstream.
	TLSInsecureSkipVerify bool `envconfig:"TLS_INSECURE_SKIP_VERIFY" default:"true"`

	ListenAddr      string        `envconfig:"LISTEN_ADDR" default:":8080"`
	AdminListenAddr string        `envconfig:"ADMIN_LISTEN_ADDR" default:":8081"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// LogFile receives log output in stdio mode, where stderr/stdout must
	// stay clean for the protocol framing.
	LogFile string `envconfig:"LOG_FILE" default:"/tmp/mcp-comexstat.log"`

	OtelExporterOtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
}

// ParsedLogLevel returns the slog.Level based on the configured LogLevel string.
func (c *Config) ParsedLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		fallthrough
	default:
		return slog.LevelInfo
	}
}

// Load loads configuration from environment variables, then overlays values
// from the YAML file (if one is specified) for any field whose environment
// variable was not explicitly set. Env always wins over the file.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("comexstat", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if cfg.ConfigFilePath == "" {
		return &cfg, nil
	}

	yamlFile, err := os.ReadFile(cfg.ConfigFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", cfg.ConfigFilePath, err)
	}
	var fileCfg FileConfig
	if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file '%s': %w", cfg.ConfigFilePath, err)
	}

	if fileCfg.BaseURL != "" && !envSet("COMEXSTAT_BASE_URL") {
		cfg.BaseURL = fileCfg.BaseURL
	}
	if fileCfg.LogLevel != "" && !envSet("COMEXSTAT_LOG_LEVEL") {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.TLSInsecureSkipVerify != nil && !envSet("COMEXSTAT_TLS_INSECURE_SKIP_VERIFY") {
		cfg.TLSInsecureSkipVerify = *fileCfg.TLSInsecureSkipVerify
	}

	return &cfg, nil
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}
