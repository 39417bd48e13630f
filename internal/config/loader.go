package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvBoardSize = "SNAKE_BOARD_SIZE"
	EnvUseTimer  = "SNAKE_USE_TIMER"
	EnvTickMS    = "SNAKE_TICK_MS"
)

// Load loads the file layer of the configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Keys missing from the chosen file keep their built-in defaults.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if parsed, ok := tryFile(userCfgPath); ok {
			return parsed, nil
		}
	}

	// Try local configs directory
	if parsed, ok := tryFile(filepath.Join("configs", "snake.yaml")); ok {
		return parsed, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile parses path over the defaults; unreadable or broken files are skipped.
func tryFile(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

// LoadDotEnv loads each .env file into the process environment.
// Missing files are skipped; variables already set are not overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overlays SNAKE_* environment variables onto c.
// Unparseable values fall back to the built-in default and are reported.
func ApplyEnv(c Config) (Config, []Fix) {
	var fixes []Fix

	if raw, ok := os.LookupEnv(EnvBoardSize); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fixes = append(fixes, Fix{Field: EnvBoardSize, Got: strconv.Quote(raw), Used: strconv.Itoa(DefaultBoardSize)})
			n = DefaultBoardSize
		}
		c.BoardSize = n
	}

	if raw, ok := os.LookupEnv(EnvUseTimer); ok {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			fixes = append(fixes, Fix{Field: EnvUseTimer, Got: strconv.Quote(raw), Used: strconv.FormatBool(DefaultUseTimer)})
			b = DefaultUseTimer
		}
		c.UseTimer = b
	}

	if raw, ok := os.LookupEnv(EnvTickMS); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fixes = append(fixes, Fix{Field: EnvTickMS, Got: strconv.Quote(raw), Used: strconv.Itoa(DefaultTickMS)})
			n = DefaultTickMS
		}
		c.TickMS = n
	}

	return c, fixes
}

// Resolve runs every layer below the command line: file, .env, environment,
// then normalization. Fixes from all layers are returned in order.
func Resolve(customPath string, envFiles ...string) (Config, []Fix, error) {
	cfg, err := Load(customPath)
	if err != nil {
		return cfg, nil, err
	}

	if err := LoadDotEnv(envFiles...); err != nil {
		return cfg, nil, err
	}

	cfg, envFixes := ApplyEnv(cfg)
	cfg, normFixes := Normalize(cfg)
	return cfg, append(envFixes, normFixes...), nil
}

// Marshal renders c as YAML.
func Marshal(c Config) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
