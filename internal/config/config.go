package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/danmuck/ufr/internal/args"
	"github.com/danmuck/ufr/internal/buffer"
	"github.com/danmuck/ufr/internal/logging"
)

var ErrUnknownFormat = errors.New("config: unknown format")

// Config holds the defaults used when building buffers, scanning commands
// and logging.
type Config struct {
	Buffer BufferConfig `toml:"buffer" yaml:"buffer" json:"buffer"`
	Args   ArgsConfig   `toml:"args" yaml:"args" json:"args"`
	Log    LogConfig    `toml:"log" yaml:"log" json:"log"`
}

type BufferConfig struct {
	InitialCapacity int  `toml:"initial_capacity" yaml:"initial_capacity" json:"initial_capacity"`
	MaxCapacity     int  `toml:"max_capacity" yaml:"max_capacity" json:"max_capacity"`
	Strict          bool `toml:"strict" yaml:"strict" json:"strict"`
}

type ArgsConfig struct {
	TokenMax  int    `toml:"token_max" yaml:"token_max" json:"token_max"`
	Delimiter string `toml:"delimiter" yaml:"delimiter" json:"delimiter"`
}

type LogConfig struct {
	Level     string `toml:"level" yaml:"level" json:"level"`
	Timestamp bool   `toml:"timestamp" yaml:"timestamp" json:"timestamp"`
	NoColor   bool   `toml:"no_color" yaml:"no_color" json:"no_color"`
}

func Default() Config {
	return Config{
		Buffer: BufferConfig{
			InitialCapacity: buffer.InitialCapacity,
		},
		Args: ArgsConfig{
			TokenMax:  args.TokenMax,
			Delimiter: " ",
		},
		Log: LogConfig{
			Level:     "info",
			Timestamp: true,
		},
	}
}

// Load reads path as TOML or YAML by extension. Keys absent from the file
// keep their defaults; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if cfg.Buffer.InitialCapacity <= 0 {
		return fmt.Errorf("buffer.initial_capacity must be positive")
	}
	if cfg.Buffer.MaxCapacity < 0 {
		return fmt.Errorf("buffer.max_capacity must not be negative")
	}
	if cfg.Buffer.MaxCapacity > 0 && cfg.Buffer.MaxCapacity < cfg.Buffer.InitialCapacity {
		return fmt.Errorf("buffer.max_capacity %d is below initial_capacity %d",
			cfg.Buffer.MaxCapacity, cfg.Buffer.InitialCapacity)
	}
	if cfg.Args.TokenMax < 0 {
		return fmt.Errorf("args.token_max must not be negative")
	}
	if len(cfg.Args.Delimiter) != 1 {
		return fmt.Errorf("args.delimiter must be a single byte, got %q", cfg.Args.Delimiter)
	}
	if strings.TrimSpace(cfg.Log.Level) != "" {
		if _, ok := logging.ParseLevel(cfg.Log.Level); !ok {
			return fmt.Errorf("log.level %q is not a known level", cfg.Log.Level)
		}
	}
	return nil
}

// BufferOptions converts the buffer section into constructor options.
func (c Config) BufferOptions(logger zerolog.Logger) []buffer.Option {
	return []buffer.Option{
		buffer.WithInitialCapacity(c.Buffer.InitialCapacity),
		buffer.WithMaxCapacity(c.Buffer.MaxCapacity),
		buffer.WithStrict(c.Buffer.Strict),
		buffer.WithLogger(logger),
	}
}

// ScanOptions converts the args section into scanner options.
func (c Config) ScanOptions() []args.ScanOption {
	opts := []args.ScanOption{args.WithTokenMax(c.Args.TokenMax)}
	if len(c.Args.Delimiter) == 1 {
		opts = append(opts, args.WithDelimiter(c.Args.Delimiter[0]))
	}
	return opts
}

// Logging converts the log section into a logger config. Env overrides are
// applied on top.
func (c Config) Logging() logging.Config {
	cfg := logging.DefaultConfig(logging.ProfileRuntime)
	if lvl, ok := logging.ParseLevel(c.Log.Level); ok {
		cfg.Level = lvl
	}
	cfg.Timestamp = c.Log.Timestamp
	cfg.NoColor = c.Log.NoColor
	logging.ApplyEnv(&cfg)
	return cfg
}
