package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"treepick/internal/core/pick"
)

const (
	KeyFile         = "TREEPICK_FILE"
	KeyMaxChipWidth = "TREEPICK_MAX_CHIP_WIDTH"
	KeyWatch        = "TREEPICK_WATCH"
)

// Config holds user defaults. Flags override it.
type Config struct {
	File         string
	MaxChipWidth int
	Watch        bool
}

func Default() Config {
	return Config{MaxChipWidth: pick.MaxChipWidth}
}

// DefaultPath is ~/.treepickrc, falling back to the working directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".treepickrc"
	}
	return filepath.Join(home, ".treepickrc")
}

// Load reads path, then applies environment overrides. A missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	vals := map[string]string{}

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		sc := bufio.NewScanner(f)
		line := 0
		for sc.Scan() {
			line++
			text := strings.TrimSpace(sc.Text())
			if text == "" || strings.HasPrefix(text, "#") {
				continue
			}
			k, v, ok := strings.Cut(text, "=")
			if !ok {
				return cfg, fmt.Errorf("%s:%d: expected KEY=VALUE", path, line)
			}
			vals[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
		if err := sc.Err(); err != nil {
			return cfg, fmt.Errorf("read rc: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("open rc: %w", err)
	}

	for _, k := range []string{KeyFile, KeyMaxChipWidth, KeyWatch} {
		if v, ok := os.LookupEnv(k); ok {
			vals[k] = strings.TrimSpace(v)
		}
	}

	if v := vals[KeyFile]; v != "" {
		cfg.File = v
	}
	if v := vals[KeyMaxChipWidth]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("%s must be a positive integer, got %q", KeyMaxChipWidth, v)
		}
		cfg.MaxChipWidth = n
	}
	if v := vals[KeyWatch]; v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", KeyWatch, err)
		}
		cfg.Watch = b
	}
	return cfg, nil
}

// Save writes cfg as an rc file readable by Load.
func Save(path string, cfg Config) error {
	if cfg.MaxChipWidth <= 0 {
		return fmt.Errorf("%s must be positive", KeyMaxChipWidth)
	}
	var b strings.Builder
	if cfg.File != "" {
		fmt.Fprintf(&b, "%s=%s\n", KeyFile, cfg.File)
	}
	fmt.Fprintf(&b, "%s=%d\n", KeyMaxChipWidth, cfg.MaxChipWidth)
	fmt.Fprintf(&b, "%s=%t\n", KeyWatch, cfg.Watch)
	return os.WriteFile(path, []byte(b.String()), 0o600)
}
