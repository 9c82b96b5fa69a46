package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/km-arc/go-beans/framework/validation"
)

// Config is the central typed configuration struct.
type Config struct {
	App       AppConfig       `toml:"app"`
	Container ContainerConfig `toml:"container"`
	Log       LogConfig       `toml:"log"`
	Inspect   InspectConfig   `toml:"inspect"`
}

type AppConfig struct {
	Name  string `toml:"name"`
	Env   string `toml:"env"` // local | production | testing
	Debug bool   `toml:"debug"`
}

// ContainerConfig controls how candidates are discovered and wired.
type ContainerConfig struct {
	// Scan lists package path prefixes handed to the scanner. Empty scans
	// every registered package.
	Scan []string `toml:"scan"`
	// Strict rejects ambiguous dependencies.
	Strict bool `toml:"strict"`
	// ImplicitWiring wires every declared field instead of `inject`-tagged ones.
	ImplicitWiring bool `toml:"implicit_wiring"`
}

type LogConfig struct {
	Level   string `toml:"level"`
	NoColor bool   `toml:"no_color"`
}

// InspectConfig controls the read-only HTTP view of the container.
type InspectConfig struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		App:     AppConfig{Name: "go-beans", Env: "local"},
		Log:     LogConfig{Level: "info"},
		Inspect: InspectConfig{Addr: ":8000"},
	}
}

// Load reads .env (if present) and overlays environment variables on the
// defaults. Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	loadEnvFiles(envFiles)
	cfg := Default()
	applyEnv(cfg)
	return cfg
}

// LoadFile reads a TOML file over the defaults, then applies .env and
// environment variables, which take precedence over the file.
func LoadFile(path string, envFiles ...string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	loadEnvFiles(envFiles)
	applyEnv(cfg)
	return cfg, nil
}

// Validate checks the values the application cannot start without.
func Validate(cfg *Config) error {
	v := validation.Make(map[string]string{
		"app.name":     cfg.App.Name,
		"app.env":      cfg.App.Env,
		"log.level":    cfg.Log.Level,
		"inspect.addr": cfg.Inspect.Addr,
	}, validation.Rules{
		"app.name":     "required|max:64|regex:^[A-Za-z0-9._-]+$",
		"app.env":      "required|in:local,production,testing",
		"log.level":    "sometimes|in:trace,debug,info,warn,warning,error,disabled,off",
		"inspect.addr": "required|address",
	})
	if v.Fails() {
		return fmt.Errorf("config invalid: %w", v.Errors())
	}
	return nil
}

// ── helpers ─────────────────────────────────────────────────────────────────

func loadEnvFiles(files []string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)
}

func applyEnv(cfg *Config) {
	cfg.App.Name = env("APP_NAME", cfg.App.Name)
	cfg.App.Env = env("APP_ENV", cfg.App.Env)
	cfg.App.Debug = envBool("APP_DEBUG", cfg.App.Debug)

	cfg.Container.Scan = envList("BEANS_SCAN", cfg.Container.Scan)
	cfg.Container.Strict = envBool("BEANS_STRICT", cfg.Container.Strict)
	cfg.Container.ImplicitWiring = envBool("BEANS_IMPLICIT_WIRING", cfg.Container.ImplicitWiring)

	cfg.Log.Level = env("BEANS_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.NoColor = envBool("BEANS_LOG_NOCOLOR", cfg.Log.NoColor)

	cfg.Inspect.Enabled = envBool("BEANS_INSPECT_ENABLED", cfg.Inspect.Enabled)
	cfg.Inspect.Addr = env("BEANS_INSPECT_ADDR", cfg.Inspect.Addr)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
