package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestBuildDefaults(t *testing.T) {
	cfg, err := Build("", nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if cfg.Count != 1000 {
		t.Errorf("count = %d, want 1000", cfg.Count)
	}
	if cfg.OutDir != "./output" {
		t.Errorf("out dir = %q, want ./output", cfg.OutDir)
	}
	if cfg.EndDate != "2025-09-23" {
		t.Errorf("end date = %q, want 2025-09-23", cfg.EndDate)
	}
	if cfg.Seeded() {
		t.Error("default config should not be seeded")
	}
}

func TestBuildConfigFile(t *testing.T) {
	content := "count: 25\nseed: 42\nout_dir: /tmp/fixtures\n"
	path := filepath.Join(t.TempDir(), "ledgen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Build(path, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if cfg.Count != 25 || cfg.Seed != 42 || cfg.OutDir != "/tmp/fixtures" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if !cfg.Seeded() {
		t.Error("seed 42 should report as seeded")
	}
}

func TestBuildFlagOverrides(t *testing.T) {
	content := "count: 25\n"
	path := filepath.Join(t.TempDir(), "ledgen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("count", 1000, "")
	flags.String("end-date", "2025-09-23", "")
	if err := flags.Parse([]string{"--count", "7", "--end-date", "2024-06-30"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Build(path, flags)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if cfg.Count != 7 {
		t.Errorf("flag should beat config file, count = %d", cfg.Count)
	}
	if cfg.EndDate != "2024-06-30" {
		t.Errorf("end date = %q, want 2024-06-30", cfg.EndDate)
	}
}

func TestBuildMissingExplicitConfig(t *testing.T) {
	if _, err := Build(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestBuildRejectsNegativeCount(t *testing.T) {
	content := "count: -5\n"
	path := filepath.Join(t.TempDir(), "ledgen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Build(path, nil); err == nil {
		t.Fatal("expected error for negative count")
	}
}
