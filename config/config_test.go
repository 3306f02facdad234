package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "TICK_MS", "SEED", "PLACEMENT_ATTEMPTS", "SNAPSHOT_CODEC", "BROADCAST_EVERY"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.TickInterval != 100*time.Millisecond {
		t.Fatalf("TickInterval = %v, want 100ms", cfg.TickInterval)
	}
	if cfg.PlacementAttempts != 10000 || cfg.BroadcastEvery != 1 || cfg.SnapshotCodec != "json" || cfg.Seed != 0 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that are already set, even to "".
	for _, k := range []string{"PORT", "TICK_MS", "SEED", "SNAPSHOT_CODEC"} {
		os.Unsetenv(k)
	}
	path := filepath.Join(t.TempDir(), ".env")
	body := "PORT=9090\nTICK_MS=50\nSEED=77\nSNAPSHOT_CODEC=msgpack\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.TickInterval != 50*time.Millisecond || cfg.Seed != 77 || cfg.SnapshotCodec != "msgpack" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	tests := []struct{ key, val string }{
		{"TICK_MS", "fast"},
		{"TICK_MS", "-5"},
		{"SEED", "-1"},
		{"PLACEMENT_ATTEMPTS", "lots"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
				t.Fatalf("expected an error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestGetEnvVariable(t *testing.T) {
	if _, err := GetEnvVariable(""); err == nil {
		t.Fatalf("expected an error for an empty name")
	}
	t.Setenv("ARENA_TEST_VAR", "x")
	if v, err := GetEnvVariable("ARENA_TEST_VAR"); err != nil || v != "x" {
		t.Fatalf("GetEnvVariable = (%q, %v), want (x, nil)", v, err)
	}
}
