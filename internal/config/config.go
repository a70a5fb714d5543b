package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"imginfo/internal/domain"
)

type Config struct {
	Path    string
	TUI     bool
	JSON    bool
	Verbose bool
}

type Options struct {
	TUI     bool
	JSON    bool
	Verbose bool
}

// Resolve validates the positional path argument and merges flag values with
// their environment fallbacks.
func Resolve(path string, opts Options) (Config, error) {
	if path == "" {
		return Config{}, errors.New("an image path is required")
	}
	if !domain.IsSupportedExtension(filepath.Ext(path)) {
		return Config{}, fmt.Errorf("unsupported file extension %q, supported extensions are: %s",
			filepath.Ext(path), strings.Join(domain.SupportedExtensions, " / "))
	}
	if opts.TUI && opts.JSON {
		return Config{}, errors.New("--tui and --json are mutually exclusive")
	}

	cfg := Config{
		Path:    path,
		TUI:     opts.TUI,
		JSON:    opts.JSON,
		Verbose: opts.Verbose,
	}
	if !cfg.Verbose {
		cfg.Verbose = envTruthy("IMGINFO_VERBOSE")
	}

	return cfg, nil
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
