package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Model  ModelConfig  `yaml:"model"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	RateLimitPerSec float64       `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
	CacheTTLSeconds int           `yaml:"cache_ttl_seconds"`
	CacheTTL        time.Duration `yaml:"-"` // Derived from CacheTTLSeconds
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

// ModelConfig locates the trained classifier artifact.
type ModelConfig struct {
	// Path is the XGBoost JSON model. Relative paths are resolved against
	// the directory of the running executable.
	Path string `yaml:"path"`
}

// DefaultModelPath is used when model.path is not configured.
const DefaultModelPath = "models/cancellation_xgb.json"

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}
	cfg.Server.CacheTTL = time.Duration(cfg.Server.CacheTTLSeconds) * time.Second

	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}

	if cfg.Model.Path == "" {
		log.Printf("model.path is not set; defaulting to %s", DefaultModelPath)
		cfg.Model.Path = DefaultModelPath
	}
}

// ResolveModelPath returns the absolute model path. Relative paths are
// anchored at the directory that contains the running binary; when nothing
// exists there (e.g. under go run) the working directory is tried instead.
func (cfg *Config) ResolveModelPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	return resolveAgainst(cfg.Model.Path, filepath.Dir(exe), wd), nil
}

func resolveAgainst(path, exeDir, workDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	candidate := filepath.Join(exeDir, path)
	if _, err := os.Stat(candidate); err == nil || workDir == "" {
		return candidate
	}
	local := filepath.Join(workDir, path)
	if _, err := os.Stat(local); err == nil {
		log.Printf("model not found next to the executable, using %s", local)
		return local
	}
	return candidate
}
