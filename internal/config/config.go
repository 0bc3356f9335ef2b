// Package config loads gameui settings from defaults, an optional file and
// GAMEUI_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. GAMEUI_DIALOG_WIDTH.
const EnvPrefix = "GAMEUI"

type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Dialog DialogConfig `mapstructure:"dialog"`
	Trace  TraceConfig  `mapstructure:"trace"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // empty discards logs; stdout belongs to the UI
	JSON  bool   `mapstructure:"json"`
}

// DialogConfig sizes dialogs in terminal cells.
type DialogConfig struct {
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	ZIndex   int    `mapstructure:"zindex"`
	Template string `mapstructure:"template"`
}

type TraceConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Service  string `mapstructure:"service"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.json", false)
	v.SetDefault("dialog.width", 44)
	v.SetDefault("dialog.height", 9)
	v.SetDefault("dialog.zindex", 100)
	v.SetDefault("dialog.template", "WinPopup")
	v.SetDefault("trace.endpoint", "")
	v.SetDefault("trace.service", "gameui")
}

// Load reads the configuration. path may be empty to skip the file.
func Load(path string) (*Config, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}
	return decode(v)
}

// Watch calls onChange with the re-read configuration every time the file
// at path is written. It does nothing when path is empty. onChange runs on
// the watcher goroutine.
func Watch(path string, onChange func(*Config, error)) error {
	if path == "" {
		return nil
	}
	v, err := newViper(path)
	if err != nil {
		return err
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		onChange(decode(v))
	})
	v.WatchConfig()
	return nil
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Standard OpenTelemetry variables win over GAMEUI_TRACE_*.
	if err := v.BindEnv("trace.endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT", EnvPrefix+"_TRACE_ENDPOINT"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("trace.service", "OTEL_SERVICE_NAME", EnvPrefix+"_TRACE_SERVICE"); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config %q: %w", path, err)
		}
	}
	return v, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the UI cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Dialog.Width <= 0 {
		errs = append(errs, fmt.Errorf("dialog.width must be positive, got %d", c.Dialog.Width))
	}
	if c.Dialog.Height <= 0 {
		errs = append(errs, fmt.Errorf("dialog.height must be positive, got %d", c.Dialog.Height))
	}
	if strings.TrimSpace(c.Dialog.Template) == "" {
		errs = append(errs, errors.New("dialog.template must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
