package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]struct {
		level zerolog.Level
		ok    bool
	}{
		"":         {zerolog.InfoLevel, false},
		"DEBUG":    {zerolog.DebugLevel, true},
		" warning": {zerolog.WarnLevel, true},
		"off":      {zerolog.Disabled, true},
		"loud":     {zerolog.InfoLevel, false},
	}
	for raw, want := range cases {
		lvl, ok := ParseLevel(raw)
		if lvl != want.level || ok != want.ok {
			t.Fatalf("ParseLevel(%q) = (%v, %v), want (%v, %v)", raw, lvl, ok, want.level, want.ok)
		}
	}
}

func TestDefaultOptionsEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogNoColor, "true")
	opts := DefaultOptions("life-term")
	if opts.Level != zerolog.ErrorLevel {
		t.Fatalf("level = %v, want error", opts.Level)
	}
	if !opts.NoColor {
		t.Fatal("expected NoColor from environment")
	}
}

func TestInitWritesAppField(t *testing.T) {
	var buf bytes.Buffer
	logger := Init(Options{App: "life-term", Level: zerolog.InfoLevel, NoColor: true, Out: &buf})
	logger.Debug().Msg("hidden")
	logger.Info().Int("width", 64).Msg("universe ready")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %q", out)
	}
	if !strings.Contains(out, "universe ready") || !strings.Contains(out, "app=life-term") || !strings.Contains(out, "width=64") {
		t.Fatalf("unexpected log output: %q", out)
	}
}
