package update

import "testing"

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.PollIntervalSeconds != 30 || cfg.SchedulerBuffer != 64 {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
	if cfg.DesktopNotifications {
		t.Fatal("desktop notifications should default off")
	}
	if cfg.DBPath != "billd.db" || cfg.StateFilePath != "billd_state.json" {
		t.Fatalf("unexpected path defaults: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("BILLD_DESKTOP_NOTIFICATIONS", "true")
	t.Setenv("BILLD_POLL_INTERVAL_SECONDS", "10")
	t.Setenv("BILLD_SCHEDULER_BUFFER", "128")
	t.Setenv("BILLD_DB_PATH", "data/billd.db")
	t.Setenv("BILLD_STATE_FILE", "data/state.json")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if !cfg.DesktopNotifications {
		t.Fatal("expected desktop notifications true from env")
	}
	if cfg.PollIntervalSeconds != 10 || cfg.SchedulerBuffer != 128 {
		t.Fatalf("unexpected config overrides: %+v", cfg)
	}
	if cfg.DBPath != "data/billd.db" || cfg.StateFilePath != "data/state.json" {
		t.Fatalf("unexpected path overrides: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnvIgnoresInvalid(t *testing.T) {
	t.Setenv("BILLD_POLL_INTERVAL_SECONDS", "not-a-number")
	t.Setenv("BILLD_SCHEDULER_BUFFER", "-4")
	t.Setenv("BILLD_DESKTOP_NOTIFICATIONS", "maybe")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.PollIntervalSeconds != 30 || cfg.SchedulerBuffer != 64 {
		t.Fatalf("expected defaults for invalid values: %+v", cfg)
	}
	if cfg.DesktopNotifications {
		t.Fatal("expected default desktop notifications for invalid value")
	}
}
