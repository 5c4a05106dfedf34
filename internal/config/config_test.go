package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.Addr)
	}
	if cfg.MaxUploadMB != 100 {
		t.Errorf("max upload = %d, want 100", cfg.MaxUploadMB)
	}
	if cfg.Sampling.Stride != 3 || cfg.Sampling.MaxFrames != 600 || cfg.Sampling.MinFrames != 3 {
		t.Errorf("sampling = %+v, want stride 3, max 600, min 3", cfg.Sampling)
	}
	if cfg.MediaPipe.MinDetectionConf != 0.5 || cfg.MediaPipe.MinTrackingConf != 0.5 {
		t.Errorf("mediapipe = %+v, want 0.5 confidences", cfg.MediaPipe)
	}
}

func TestLoad_MissingPathFallsBackToDefaults(t *testing.T) {
	// Probe from a directory that has no config file.
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(oldWD)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_ReadsFileAndKeepsUnsetDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "formcheck.yaml")

	content := []byte(`
addr: ":9090"
sampling:
  stride: 5
mediapipe:
  python: /opt/venv/bin/python
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Errorf("addr = %q, want :9090", cfg.Addr)
	}
	if cfg.Sampling.Stride != 5 {
		t.Errorf("stride = %d, want 5", cfg.Sampling.Stride)
	}
	if cfg.MediaPipe.Python != "/opt/venv/bin/python" {
		t.Errorf("python = %q", cfg.MediaPipe.Python)
	}

	// Fields the file does not mention keep their defaults.
	if cfg.MaxUploadMB != 100 {
		t.Errorf("max upload = %d, want default 100", cfg.MaxUploadMB)
	}
	if cfg.MediaPipe.MinDetectionConf != 0.5 {
		t.Errorf("min detection conf = %v, want default 0.5", cfg.MediaPipe.MinDetectionConf)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("addr: [unclosed"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should fail on invalid YAML")
	}
}

func TestLoad_ExplicitMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load should fail when an explicit path does not exist")
	}
}
