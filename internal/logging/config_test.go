package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" DEBUG ": zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
	}
	for raw, want := range cases {
		got, ok := ParseLevel(raw)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q) = %v %v, want %v", raw, got, ok, want)
		}
	}
	if _, ok := ParseLevel("loud"); ok {
		t.Fatalf("expected unknown level rejected")
	}
	if _, ok := ParseLevel(""); ok {
		t.Fatalf("expected empty level rejected")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "1")

	cfg := DefaultConfig(ProfileRuntime)
	ApplyEnv(&cfg)
	if cfg.Level != zerolog.ErrorLevel || cfg.Timestamp || !cfg.NoColor {
		t.Fatalf("unexpected config after env: %+v", cfg)
	}
}

func TestApplyEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv(EnvLogLevel, "loud")
	t.Setenv(EnvLogTimestamp, "sometimes")

	cfg := DefaultConfig(ProfileTest)
	ApplyEnv(&cfg)
	if cfg.Level != zerolog.DebugLevel || cfg.Timestamp {
		t.Fatalf("invalid env must keep defaults: %+v", cfg)
	}
}

func TestNewWritesPlainTextToNonTerminal(t *testing.T) {
	var out bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Out: &out})
	logger.Debug().Msg("hidden")
	logger.Info().Str("component", "buffer").Msg("visible")

	got := out.String()
	if strings.Contains(got, "hidden") {
		t.Fatalf("debug line must be filtered: %q", got)
	}
	if !strings.Contains(got, "visible") || !strings.Contains(got, "component=buffer") {
		t.Fatalf("unexpected output %q", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("non-terminal output must not be colored: %q", got)
	}
}

func TestConfigureRuntimeFirstCallWins(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	ConfigureRuntime()
	if got := log.Logger.GetLevel(); got != zerolog.WarnLevel {
		t.Fatalf("runtime level: got %v want warn", got)
	}
	ConfigureTests()
	if got := log.Logger.GetLevel(); got != zerolog.WarnLevel {
		t.Fatalf("second Configure must not reinstall, got %v", got)
	}
}
