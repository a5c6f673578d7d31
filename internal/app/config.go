// Package app provides the application initialization and wiring.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/bnema/boxkeep/internal/usecase/policy"
	"github.com/bnema/boxkeep/pkg/duration"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config is the resolved, immutable application configuration.
type Config struct {
	DataDir string

	Storage struct {
		Driver string
		Path   string
	}

	AuthorizedUsers []string
	FrontendToken   string

	Server struct {
		Listen string
	}

	API struct {
		RateLimit float64
		Burst     int
	}

	Runtime struct {
		Host             string
		DefaultImage     string
		Command          []string
		Timeout          time.Duration
		ProbeTimeout     time.Duration
		ProbeConcurrency int
	}

	Terminal struct {
		PublicURL      string
		TokenTTL       time.Duration
		SessionTimeout time.Duration
		TTYDPath       string
		Shell          string
	}

	Log struct {
		Level  string
		Format string
		File   struct {
			Path       string
			MaxSize    int
			MaxBackups int
			MaxAge     int
		}
	}
}

// fileConfig mirrors the config file layout.
type fileConfig struct {
	DataDir string `mapstructure:"data_dir"`
	Storage struct {
		Driver string `mapstructure:"driver"`
		Path   string `mapstructure:"path"`
	} `mapstructure:"storage"`
	Auth struct {
		AuthorizedUsers []string `mapstructure:"authorized_users"`
	} `mapstructure:"auth"`
	Frontend struct {
		Token string `mapstructure:"token"`
	} `mapstructure:"frontend"`
	Server struct {
		Listen string `mapstructure:"listen"`
	} `mapstructure:"server"`
	API struct {
		RateLimit float64 `mapstructure:"rate_limit"`
		Burst     int     `mapstructure:"burst"`
	} `mapstructure:"api"`
	Runtime struct {
		Host             string `mapstructure:"host"`
		DefaultImage     string `mapstructure:"default_image"`
		Command          string `mapstructure:"command"`
		Timeout          string `mapstructure:"timeout"`
		ProbeTimeout     string `mapstructure:"probe_timeout"`
		ProbeConcurrency int    `mapstructure:"probe_concurrency"`
	} `mapstructure:"runtime"`
	Terminal struct {
		PublicURL      string `mapstructure:"public_url"`
		TokenTTL       string `mapstructure:"token_ttl"`
		SessionTimeout string `mapstructure:"session_timeout"`
		TTYDPath       string `mapstructure:"ttyd_path"`
		Shell          string `mapstructure:"shell"`
	} `mapstructure:"terminal"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"log"`
}

// Bare environment names from earlier deployments, checked after the
// BOXKEEP_ prefixed name.
var legacyEnv = map[string][]string{
	"auth.authorized_users":    {"AUTHORIZED_USERS"},
	"frontend.token":           {"FRONTEND_TOKEN", "DISCORD_TOKEN"},
	"terminal.public_url":      {"TERMINAL_SERVICE_URL"},
	"terminal.session_timeout": {"TERMINAL_SESSION_TIMEOUT"},
	"terminal.ttyd_path":       {"TTYD_PATH"},
	"terminal.shell":           {"TERMINAL_SHELL"},
}

// DefaultDataDir returns the default data directory path.
// Uses ~/.boxkeep for user installations, /var/lib/boxkeep as fallback.
func DefaultDataDir() string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".boxkeep")
	}
	return "/var/lib/boxkeep"
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: boxkeep.yaml
// Search paths (in order): current directory, $XDG_CONFIG_HOME/boxkeep, /etc/boxkeep
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.SetConfigName("boxkeep")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		v.AddConfigPath(filepath.Join(xdg, "boxkeep"))
	} else {
		v.AddConfigPath("$HOME/.config/boxkeep")
	}
	v.AddConfigPath("/etc/boxkeep")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.path", "") // defaults to {data_dir}/boxkeep.db when empty
	v.SetDefault("auth.authorized_users", []string{})
	v.SetDefault("frontend.token", "")
	v.SetDefault("server.listen", ":8080")
	v.SetDefault("api.rate_limit", 5)
	v.SetDefault("api.burst", 10)
	v.SetDefault("runtime.host", "")
	v.SetDefault("runtime.default_image", "ubuntu:24.04")
	v.SetDefault("runtime.command", "tail -f /dev/null")
	v.SetDefault("runtime.timeout", "2m")
	v.SetDefault("runtime.probe_timeout", "10s")
	v.SetDefault("runtime.probe_concurrency", 8)
	v.SetDefault("terminal.public_url", "http://localhost:8080")
	v.SetDefault("terminal.token_ttl", "1h")
	v.SetDefault("terminal.session_timeout", "3600")
	v.SetDefault("terminal.ttyd_path", "ttyd")
	v.SetDefault("terminal.shell", "/bin/bash")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file.path", "") // file logging is off when empty
	v.SetDefault("log.file.max_size", 100)
	v.SetDefault("log.file.max_backups", 3)
	v.SetDefault("log.file.max_age", 28)
}

// LoadConfig reads .env, the config file and the environment, in increasing
// order of precedence.
func LoadConfig(configPath string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var raw fileConfig
	if err := v.Unmarshal(&raw); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return resolve(raw)
}

func loadConfig(v *viper.Viper, configPath string) error {
	setDefaults(v)
	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("BOXKEEP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, names := range legacyEnv {
		prefixed := "BOXKEEP_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(append([]string{key, prefixed}, names...)...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	// TERMINAL_SERVICE_PORT only applies when no listen address is set.
	if port := os.Getenv("TERMINAL_SERVICE_PORT"); port != "" && !v.InConfig("server.listen") && os.Getenv("BOXKEEP_SERVER_LISTEN") == "" {
		v.Set("server.listen", ":"+port)
	}
	return nil
}

func resolve(raw fileConfig) (Config, error) {
	var cfg Config
	var err error

	cfg.DataDir = raw.DataDir
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(raw.Storage.Driver))
	switch cfg.Storage.Driver {
	case DriverSQLite, DriverMemory:
	default:
		return Config{}, fmt.Errorf("invalid storage.driver %q (expected sqlite or memory)", raw.Storage.Driver)
	}
	cfg.Storage.Path = raw.Storage.Path
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = filepath.Join(cfg.DataDir, "boxkeep.db")
	}

	for _, entry := range raw.Auth.AuthorizedUsers {
		cfg.AuthorizedUsers = append(cfg.AuthorizedUsers, policy.ParseAllowlist(entry)...)
	}
	cfg.FrontendToken = strings.TrimSpace(raw.Frontend.Token)
	cfg.Server.Listen = raw.Server.Listen

	if raw.API.RateLimit < 0 || raw.API.Burst < 0 {
		return Config{}, fmt.Errorf("api.rate_limit and api.burst must not be negative")
	}
	cfg.API.RateLimit = raw.API.RateLimit
	cfg.API.Burst = raw.API.Burst

	cfg.Runtime.Host = raw.Runtime.Host
	cfg.Runtime.DefaultImage = raw.Runtime.DefaultImage
	cfg.Runtime.Command = strings.Fields(raw.Runtime.Command)
	cfg.Runtime.ProbeConcurrency = raw.Runtime.ProbeConcurrency
	if cfg.Runtime.Timeout, err = duration.ParseOr(raw.Runtime.Timeout, 2*time.Minute); err != nil {
		return Config{}, fmt.Errorf("runtime.timeout: %w", err)
	}
	if cfg.Runtime.ProbeTimeout, err = duration.ParseOr(raw.Runtime.ProbeTimeout, 10*time.Second); err != nil {
		return Config{}, fmt.Errorf("runtime.probe_timeout: %w", err)
	}

	cfg.Terminal.PublicURL = raw.Terminal.PublicURL
	cfg.Terminal.TTYDPath = raw.Terminal.TTYDPath
	cfg.Terminal.Shell = raw.Terminal.Shell
	if cfg.Terminal.TokenTTL, err = duration.ParseOr(raw.Terminal.TokenTTL, time.Hour); err != nil {
		return Config{}, fmt.Errorf("terminal.token_ttl: %w", err)
	}
	if cfg.Terminal.SessionTimeout, err = duration.ParseOr(raw.Terminal.SessionTimeout, time.Hour); err != nil {
		return Config{}, fmt.Errorf("terminal.session_timeout: %w", err)
	}

	cfg.Log.Level = raw.Log.Level
	cfg.Log.Format = raw.Log.Format
	cfg.Log.File.Path = raw.Log.File.Path
	cfg.Log.File.MaxSize = raw.Log.File.MaxSize
	cfg.Log.File.MaxBackups = raw.Log.File.MaxBackups
	cfg.Log.File.MaxAge = raw.Log.File.MaxAge
	return cfg, nil
}
