package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings for one saslstat run.
type Config struct {
	Unit     string
	Limit    int
	Top      int
	File     string
	Timeout  time.Duration
	Format   string
	Color    bool
	LogLevel string
}

const (
	defaultConfigPath = "~/.config/saslstat/config.toml"
	defaultEnvPath    = ".env"
	defaultUnit       = "postfix"
	defaultLimit      = 5000
	defaultTop        = 10
	defaultTimeout    = 30 * time.Second
	defaultFormat     = FormatText
	defaultLogLevel   = "warn"

	envPrefix = "SASLSTAT_"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Unit:     defaultUnit,
		Limit:    defaultLimit,
		Top:      defaultTop,
		Timeout:  defaultTimeout,
		Format:   defaultFormat,
		Color:    true,
		LogLevel: defaultLogLevel,
	}
}

type fileConfig struct {
	Unit     string `toml:"unit"`
	Limit    int    `toml:"limit"`
	Top      int    `toml:"top"`
	File     string `toml:"file"`
	Timeout  string `toml:"timeout"`
	Format   string `toml:"format"`
	Color    *bool  `toml:"color"`
	LogLevel string `toml:"log_level"`
}

// Load reads the TOML config at path (or the default location), then applies
// SASLSTAT_* overrides from envPath and the process environment. The process
// environment wins over the env file. A missing config or env file is not an
// error.
func Load(path, envPath string) (Config, error) {
	cfg := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}
	if err := loadFile(resolved, &cfg); err != nil {
		return Config{}, err
	}

	env, err := readEnv(envPath)
	if err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg, env); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", c.Limit)
	}
	if c.Top <= 0 {
		return fmt.Errorf("top must be positive, got %d", c.Top)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", c.Format, FormatText, FormatJSON)
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q (want debug, info, warn or error)", c.LogLevel)
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if unit := strings.TrimSpace(raw.Unit); unit != "" {
		cfg.Unit = unit
	}
	if raw.Limit > 0 {
		cfg.Limit = raw.Limit
	}
	if raw.Top > 0 {
		cfg.Top = raw.Top
	}
	if file := strings.TrimSpace(raw.File); file != "" {
		cfg.File = mustExpand(file)
	}
	if timeout := strings.TrimSpace(raw.Timeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("parse config: timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if format := strings.ToLower(strings.TrimSpace(raw.Format)); format != "" {
		cfg.Format = format
	}
	if raw.Color != nil {
		cfg.Color = *raw.Color
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = level
	}
	return nil
}

// readEnv merges the optional env file with the process environment.
func readEnv(path string) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultEnvPath
	}
	env, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read env file: %w", err)
		}
		env = make(map[string]string)
	}
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(key, envPrefix) {
			env[key] = value
		}
	}
	return env, nil
}

func applyEnv(cfg *Config, env map[string]string) error {
	get := func(name string) (string, bool) {
		v, ok := env[envPrefix+name]
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("UNIT"); ok {
		cfg.Unit = v
	}
	if v, ok := get("LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %sLIMIT: %w", envPrefix, err)
		}
		cfg.Limit = n
	}
	if v, ok := get("TOP"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %sTOP: %w", envPrefix, err)
		}
		cfg.Top = n
	}
	if v, ok := get("FILE"); ok {
		cfg.File = mustExpand(v)
	}
	if v, ok := get("TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse %sTIMEOUT: %w", envPrefix, err)
		}
		cfg.Timeout = d
	}
	if v, ok := get("FORMAT"); ok {
		cfg.Format = strings.ToLower(v)
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
