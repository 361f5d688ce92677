package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the cinedex API configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Synonyms SynonymsConfig `yaml:"synonyms"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int             `yaml:"port"`
	ReadTimeoutSec  int             `yaml:"read_timeout_sec"`
	WriteTimeoutSec int             `yaml:"write_timeout_sec"`
	ShutdownSec     int             `yaml:"shutdown_timeout_sec"`
	CORS            CORSConfig      `yaml:"cors"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds cross-origin settings. Empty lists mean "allow everything".
type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	AllowCredentials *bool    `yaml:"allow_credentials"` // default: true
	MaxAgeSec        int      `yaml:"max_age_sec"`
}

// RateLimitConfig holds per-IP rate limiting. Requests == 0 disables it.
type RateLimitConfig struct {
	Requests  int `yaml:"requests"`
	WindowSec int `yaml:"window_sec"`
}

// CatalogConfig holds dataset settings.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// SynonymsConfig holds synonym expansion settings.
type SynonymsConfig struct {
	ThesaurusPath string      `yaml:"thesaurus_path"` // empty = bundled thesaurus; a directory = WordNet dict files
	Cache         CacheConfig `yaml:"cache"`
	Model         ModelConfig `yaml:"model"`
}

// CacheConfig holds the Redis synonym cache settings.
type CacheConfig struct {
	Enabled          bool     `yaml:"enabled"`
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	TTLSec           int      `yaml:"ttl_sec"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// ModelConfig holds the OpenAI-compatible synonym source settings.
type ModelConfig struct {
	Enabled    bool   `yaml:"enabled"`
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	return Parse(data)
}

// Parse decodes a YAML document, expands ${VAR} references, applies defaults and validates.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if len(c.HTTP.CORS.AllowedOrigins) == 0 {
		c.HTTP.CORS.AllowedOrigins = []string{"*"}
	}
	if len(c.HTTP.CORS.AllowedMethods) == 0 {
		c.HTTP.CORS.AllowedMethods = []string{"*"}
	}
	if len(c.HTTP.CORS.AllowedHeaders) == 0 {
		c.HTTP.CORS.AllowedHeaders = []string{"*"}
	}
	if c.HTTP.CORS.AllowCredentials == nil {
		allow := true
		c.HTTP.CORS.AllowCredentials = &allow
	}
	if c.HTTP.CORS.MaxAgeSec <= 0 {
		c.HTTP.CORS.MaxAgeSec = 600
	}
	if c.HTTP.RateLimit.Requests > 0 && c.HTTP.RateLimit.WindowSec <= 0 {
		c.HTTP.RateLimit.WindowSec = 60
	}
	if c.Catalog.Path == "" {
		c.Catalog.Path = filepath.Join("Dataset", "netflix_titles.csv")
	}
	if c.Synonyms.Cache.TTLSec <= 0 {
		c.Synonyms.Cache.TTLSec = 24 * 60 * 60
	}
	if c.Synonyms.Cache.ReadinessTimeout <= 0 {
		c.Synonyms.Cache.ReadinessTimeout = 10
	}
	if c.Synonyms.Model.TimeoutSec <= 0 {
		c.Synonyms.Model.TimeoutSec = 5
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.HTTP.RateLimit.Requests < 0 {
		return fmt.Errorf("http.rate_limit.requests must not be negative, got %d", c.HTTP.RateLimit.Requests)
	}
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog.path is required")
	}
	if c.Synonyms.Cache.Enabled && len(c.Synonyms.Cache.Addrs) == 0 {
		return fmt.Errorf("synonyms.cache.addrs is required when the cache is enabled")
	}
	if c.Synonyms.Model.Enabled {
		if c.Synonyms.Model.APIKey == "" {
			return fmt.Errorf("synonyms.model.api_key is required when the model source is enabled")
		}
		if c.Synonyms.Model.Model == "" {
			return fmt.Errorf("synonyms.model.model is required when the model source is enabled")
		}
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
