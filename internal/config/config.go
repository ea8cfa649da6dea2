// Package config loads server settings from an optional YAML file and the
// environment. Environment variables win over the file.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"docreview/internal/logging"
)

const maxConfigFileSize = 1 << 20

type Config struct {
	Env            string        `koanf:"app_env"`
	ListenAddr     string        `koanf:"listen_addr"`
	DatabaseURL    string        `koanf:"database_url"`
	ReviewWorkers  int           `koanf:"review_workers"`
	PollInterval   time.Duration `koanf:"poll_interval"`
	PolicyFile     string        `koanf:"policy_file"`
	AuditRetention int           `koanf:"audit_retention"`
	TextRoot       string        `koanf:"text_root"`
	LogLevel       string        `koanf:"log_level"`
	LogFormat      string        `koanf:"log_format"`
}

// keys are the recognised settings; each is read from the upper-cased
// environment variable of the same name.
var keys = []string{
	"app_env", "listen_addr", "database_url", "review_workers", "poll_interval",
	"policy_file", "audit_retention", "text_root", "log_level", "log_format",
}

func Defaults() Config {
	return Config{
		Env:            "development",
		ListenAddr:     ":8080",
		PollInterval:   500 * time.Millisecond,
		AuditRetention: 1000,
		TextRoot:       ".",
		LogLevel:       "info",
		LogFormat:      "json",
	}
}

// Load reads the file named by CONFIG_FILE, if any, then the environment.
func Load() (Config, error) {
	return LoadFile(os.Getenv("CONFIG_FILE"))
}

// LoadFile is Load with an explicit YAML path. An empty path skips the file.
func LoadFile(path string) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return Config{}, errors.Wrapf(err, "parse config file %s", path)
		}
	}

	known := make(map[string]bool, len(keys))
	for _, key := range keys {
		known[key] = true
	}
	if err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if !known[key] {
			return ""
		}
		return key
	}), nil); err != nil {
		return Config{}, errors.Wrap(err, "load environment")
	}

	cfg := Defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "stat config file %s", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, errors.Newf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config file %s", path)
	}
	return content, nil
}

func (c Config) Validate() error {
	if c.ReviewWorkers < 0 {
		return errors.Newf("review_workers must not be negative, got %d", c.ReviewWorkers)
	}
	if c.ReviewWorkers > 0 && c.PollInterval <= 0 {
		return errors.Newf("poll_interval must be positive, got %s", c.PollInterval)
	}
	if c.AuditRetention <= 0 {
		return errors.Newf("audit_retention must be positive, got %d", c.AuditRetention)
	}
	if c.ListenAddr == "" {
		return errors.New("listen_addr is required")
	}
	return errors.Wrap(c.Logging().Validate(), "invalid log settings")
}

func (c Config) Logging() logging.Config {
	return logging.Config{Level: c.LogLevel, Format: c.LogFormat}
}

// UseMemory reports whether no database is configured, in which case the
// in-memory stores back the server.
func (c Config) UseMemory() bool { return c.DatabaseURL == "" }
