package config

import (
	"log/slog"
	"slices"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 8080 || cfg.MaxSessions != 256 || cfg.SessionTTL != 30*time.Minute {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.ReturnToHand {
		t.Error("ReturnToHand should default to false")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RETURN_TO_HAND", "true")
	t.Setenv("SESSION_TTL", "90s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 9090 || !cfg.ReturnToHand || cfg.SessionTTL != 90*time.Second {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("level = %v", cfg.Level())
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("MAX_SESSIONS", "lots")
	if _, err := Load(); err == nil {
		t.Error("expected error for non-numeric MAX_SESSIONS")
	}
}

func TestOrigins(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"http://a, http://b", []string{"http://a", "http://b"}},
		{"http://a,,", []string{"http://a"}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			cfg := Config{AllowedOrigins: tt.raw}
			if got := cfg.Origins(); !slices.Equal(got, tt.want) {
				t.Errorf("Origins() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLevelFallback(t *testing.T) {
	cfg := Config{LogLevel: "chatty"}
	if cfg.Level() != slog.LevelInfo {
		t.Errorf("level = %v", cfg.Level())
	}
}
