package trace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	fc, err := LoadFile(writeConfig(t, "capture = true\ncolors = \"off\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if fc.Capture == nil || !*fc.Capture || fc.Colors != "off" {
		t.Errorf("decoded %+v", fc)
	}

	fc, err = LoadFile(writeConfig(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if fc.Capture != nil || fc.Colors != "" {
		t.Errorf("empty file decoded %+v", fc)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name, content, want string
	}{
		{"unknown key", "colour = \"on\"\n", "colour"},
		{"unknown keys", "capture = true\ncolour = \"on\"\nbasis = 2\n", "colour, basis"},
		{"bad colors", "colors = \"purple\"\n", "purple"},
		{"bad type", "capture = \"yes\"\n", "failed to parse"},
		{"bad syntax", "capture =\n", "failed to parse"},
	}

	for _, tt := range tests {
		path := writeConfig(t, tt.content)
		_, err := LoadFile(path)
		if err == nil {
			t.Errorf("%s: want error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) || !strings.HasPrefix(err.Error(), path) {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file: want error")
	}
}

func TestFileConfigApply(t *testing.T) {
	off := false
	cfg, err := FileConfig{Capture: &off, Colors: "on"}.Apply(New())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.colors != ColorOn || cfg.capture == nil || *cfg.capture {
		t.Errorf("applied colors %v, capture %v", cfg.colors, cfg.capture)
	}

	// absent fields keep what the Config already has
	cfg, err = FileConfig{}.Apply(New().Colors(ColorOff).Capture(true))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.colors != ColorOff || cfg.capture == nil || !*cfg.capture {
		t.Errorf("empty file config changed colors %v, capture %v", cfg.colors, cfg.capture)
	}
}

func TestFileConfigApplyInvalid(t *testing.T) {
	on := true
	cfg := New().Colors(ColorOff)

	if _, err := (FileConfig{Capture: &on, Colors: "purple"}).Apply(cfg); err == nil {
		t.Fatal("want error")
	}
	if cfg.colors != ColorOff || cfg.capture != nil {
		t.Errorf("invalid file config changed colors %v, capture %v", cfg.colors, cfg.capture)
	}
}
