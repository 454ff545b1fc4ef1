package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Report.MinAge != 18 {
		t.Errorf("expected min_age 18, got %d", cfg.Report.MinAge)
	}
	if cfg.Report.IncludeInactive {
		t.Error("expected include_inactive false")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Logging.Level)
	}
	if !cfg.Output.Color {
		t.Error("expected color enabled by default")
	}
}

func TestLoad_NotExists(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}
	// Should return default config
	if cfg.Report.MinAge != 18 {
		t.Errorf("expected default min_age 18, got %d", cfg.Report.MinAge)
	}
}

func TestLoad_Exists(t *testing.T) {
	tmpDir := t.TempDir()

	uarDir := filepath.Join(tmpDir, ".uar")
	if err := os.MkdirAll(uarDir, 0755); err != nil {
		t.Fatal(err)
	}

	configContent := `
report:
  min_age: 21
  include_inactive: true
logging:
  level: debug
`
	if err := os.WriteFile(filepath.Join(uarDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if cfg.Report.MinAge != 21 {
		t.Errorf("expected min_age 21, got %d", cfg.Report.MinAge)
	}
	if !cfg.Report.IncludeInactive {
		t.Error("expected include_inactive true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoad_PartialOverridesDefaults(t *testing.T) {
	tmpDir := t.TempDir()

	uarDir := filepath.Join(tmpDir, ".uar")
	if err := os.MkdirAll(uarDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(uarDir, "config.yaml"), []byte("logging:\n  level: warn\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level warn, got %s", cfg.Logging.Level)
	}
	// Keys absent from the file keep their defaults
	if cfg.Report.MinAge != 18 {
		t.Errorf("expected default min_age 18, got %d", cfg.Report.MinAge)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tmpDir := t.TempDir()

	uarDir := filepath.Join(tmpDir, ".uar")
	if err := os.MkdirAll(uarDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(uarDir, "config.yaml"), []byte("report: [not a mapping"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := Default()
	cfg.Report.MinAge = 30
	cfg.Output.Color = false

	if err := Save(tmpDir, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Report.MinAge != 30 {
		t.Errorf("expected min_age 30, got %d", loaded.Report.MinAge)
	}
	if loaded.Output.Color {
		t.Error("expected color disabled")
	}
}
