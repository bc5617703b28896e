package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/piecewise/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "PIECEWISE_"

// Config holds all editor settings.
type Config struct {
	Editor  EditorConfig
	Logging LoggingConfig
	UI      UIConfig
}

// EditorConfig holds text editing settings.
type EditorConfig struct {
	// TabWidth is the number of screen cells a tab advances to.
	TabWidth int
	// ScrollOff is the number of lines kept visible above and below the cursor.
	ScrollOff int
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string
	// File is the log destination. Empty disables logging.
	File string
}

// UIConfig holds display settings.
type UIConfig struct {
	ShowLineNumbers  bool
	StatusForeground string // Hex colour, e.g. "#1c1c1c"
	StatusBackground string // Hex colour
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabWidth:  4,
			ScrollOff: 2,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		UI: UIConfig{
			ShowLineNumbers:  true,
			StatusForeground: "#1c1c1c",
			StatusBackground: "#afd7ff",
		},
	}
}

// Load builds a Config from the defaults, the file at path (TOML or YAML by
// extension; empty or missing is allowed) and PIECEWISE_* environment
// variables, then validates it.
func Load(path string) (Config, error) {
	return load(loader.DefaultFS(), path, loader.NewEnvLoader(EnvPrefix))
}

func load(fsys loader.FileSystem, path string, env loader.Loader) (Config, error) {
	var layers []loader.Loader
	if path != "" {
		fileLoader, err := loader.ForPath(fsys, path)
		if err != nil {
			return Config{}, err
		}
		layers = append(layers, fileLoader)
	}
	if env != nil {
		layers = append(layers, env)
	}

	merged := make(map[string]any)
	for _, l := range layers {
		m, err := l.Load()
		if err != nil {
			return Config{}, err
		}
		merged = loader.DeepMerge(merged, m)
	}

	cfg := Default()
	if err := cfg.Apply(merged); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Apply copies known settings from a nested map onto c.
// Unknown keys are ignored.
func (c *Config) Apply(m map[string]any) error {
	var errs []error
	setInt := func(path string, dst *int) {
		if v, ok := loader.Lookup(m, path); ok {
			n, ok := toInt(v)
			if !ok {
				errs = append(errs, fmt.Errorf("%s: %w: want integer, got %T", path, ErrTypeMismatch, v))
				return
			}
			*dst = n
		}
	}
	setString := func(path string, dst *string) {
		if v, ok := loader.Lookup(m, path); ok {
			s, ok := v.(string)
			if !ok {
				errs = append(errs, fmt.Errorf("%s: %w: want string, got %T", path, ErrTypeMismatch, v))
				return
			}
			*dst = s
		}
	}
	setBool := func(path string, dst *bool) {
		if v, ok := loader.Lookup(m, path); ok {
			b, ok := v.(bool)
			if !ok {
				errs = append(errs, fmt.Errorf("%s: %w: want bool, got %T", path, ErrTypeMismatch, v))
				return
			}
			*dst = b
		}
	}

	setInt("editor.tabWidth", &c.Editor.TabWidth)
	setInt("editor.scrollOff", &c.Editor.ScrollOff)
	setString("logging.level", &c.Logging.Level)
	setString("logging.file", &c.Logging.File)
	setBool("ui.showLineNumbers", &c.UI.ShowLineNumbers)
	setString("ui.statusForeground", &c.UI.StatusForeground)
	setString("ui.statusBackground", &c.UI.StatusBackground)

	return errors.Join(errs...)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), n <= math.MaxInt
	case float64:
		return int(n), n == math.Trunc(n)
	default:
		return 0, false
	}
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		errs = append(errs, &ValidationError{Path: "editor.tabWidth", Message: "must be between 1 and 16", Value: c.Editor.TabWidth})
	}
	if c.Editor.ScrollOff < 0 {
		errs = append(errs, &ValidationError{Path: "editor.scrollOff", Message: "must not be negative", Value: c.Editor.ScrollOff})
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, &ValidationError{Path: "logging.level", Message: "must be debug, info, warn, or error", Value: c.Logging.Level})
	}
	if _, err := ParseColor(c.UI.StatusForeground); err != nil {
		errs = append(errs, &ValidationError{Path: "ui.statusForeground", Message: err.Error(), Value: c.UI.StatusForeground})
	}
	if _, err := ParseColor(c.UI.StatusBackground); err != nil {
		errs = append(errs, &ValidationError{Path: "ui.statusBackground", Message: err.Error(), Value: c.UI.StatusBackground})
	}
	return errors.Join(errs...)
}

// ParseColor parses a "#rrggbb" or "#rgb" colour.
func ParseColor(s string) (colorful.Color, error) {
	return colorful.Hex(s)
}
