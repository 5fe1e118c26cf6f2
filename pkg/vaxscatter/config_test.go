package vaxscatter

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vaxscatter.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
variant: responsive
data: data/states.xlsx
duration: 750ms
margin:
  top: 10
  right: 20
  bottom: 60
  left: 80
`)

	opts, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if opts.Variant != VariantResponsive {
		t.Errorf("Variant = %q, expected responsive", opts.Variant)
	}
	if opts.DataPath != "data/states.xlsx" {
		t.Errorf("DataPath = %q", opts.DataPath)
	}
	if opts.Duration != 750*time.Millisecond {
		t.Errorf("Duration = %v, expected 750ms", opts.Duration)
	}
	if opts.Margin.Left != 80 || opts.Margin.Bottom != 60 {
		t.Errorf("Unexpected margin: %+v", opts.Margin)
	}
	// Untouched keys keep their defaults
	if opts.Width != 960 || opts.Radius != 18 || opts.ResizeFactor != 1.2 {
		t.Errorf("Defaults lost: %+v", opts)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}

	if _, err := LoadConfig(writeConfig(t, "colour: blue\n")); err == nil {
		t.Error("Expected an error for an unknown key")
	}

	if _, err := LoadConfig(writeConfig(t, "variant: fluid\n")); err == nil {
		t.Error("Expected an error for an invalid variant")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PORT":            "9000",
		"VAXSCATTER_DATA": "https://example.com/state_stats.csv",
	}
	opts := DefaultOptions()
	opts.ApplyEnv(func(k string) string { return env[k] })

	if opts.Addr != ":9000" {
		t.Errorf("Addr = %q, expected :9000", opts.Addr)
	}
	if opts.DataPath != "https://example.com/state_stats.csv" {
		t.Errorf("DataPath = %q", opts.DataPath)
	}

	env["VAXSCATTER_ADDR"] = "127.0.0.1:8081"
	opts.ApplyEnv(func(k string) string { return env[k] })
	if opts.Addr != "127.0.0.1:8081" {
		t.Errorf("Addr = %q, expected 127.0.0.1:8081", opts.Addr)
	}
}
