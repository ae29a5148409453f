package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the runtime options for the dockman UI. All durations are
// plain seconds in the file to keep hand-editing simple.
type Config struct {
	PollIntervalSeconds int    `toml:"poll_interval_seconds"`
	FetchTimeoutSeconds int    `toml:"fetch_timeout_seconds"`
	StopTimeoutSeconds  int    `toml:"stop_timeout_seconds"`
	DockerHost          string `toml:"docker_host"`
	LogFile             string `toml:"log_file"`
	LogLevel            string `toml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		PollIntervalSeconds: 2,
		FetchTimeoutSeconds: 5,
		StopTimeoutSeconds:  10,
		LogLevel:            "info",
		LogFile:             defaultLogFile(),
	}
}

// DefaultPath is where Load looks when no explicit path is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dockman", "config.toml")
}

// Load reads a TOML config file, fills in defaults for anything unset and
// validates the result. A missing file is not an error: the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to defaults
		case err != nil:
			return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
			}
		}
	}
	applyDefaults(&cfg)
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.PollIntervalSeconds == 0 {
		cfg.PollIntervalSeconds = def.PollIntervalSeconds
	}
	if cfg.FetchTimeoutSeconds == 0 {
		cfg.FetchTimeoutSeconds = def.FetchTimeoutSeconds
	}
	if cfg.StopTimeoutSeconds == 0 {
		cfg.StopTimeoutSeconds = def.StopTimeoutSeconds
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.LogFile == "" {
		cfg.LogFile = def.LogFile
	}
}

func validate(cfg Config) error {
	if cfg.PollIntervalSeconds < 1 {
		return fmt.Errorf("poll_interval_seconds must be at least 1, got %d", cfg.PollIntervalSeconds)
	}
	if cfg.FetchTimeoutSeconds < 1 {
		return fmt.Errorf("fetch_timeout_seconds must be at least 1, got %d", cfg.FetchTimeoutSeconds)
	}
	if cfg.StopTimeoutSeconds < 1 {
		return fmt.Errorf("stop_timeout_seconds must be at least 1, got %d", cfg.StopTimeoutSeconds)
	}
	return nil
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "dockman.log"
	}
	return filepath.Join(dir, "dockman", "dockman.log")
}
