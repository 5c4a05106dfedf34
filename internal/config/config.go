// Package config loads the application configuration from a YAML file,
// falling back to built-in defaults when no file is present.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Sampling controls how video frames are fed to the analyzer.
type Sampling struct {
	Stride    int `yaml:"stride"`
	MaxFrames int `yaml:"max_frames"`
	MinFrames int `yaml:"min_frames"`
}

// MediaPipe controls the pose detection sidecar.
type MediaPipe struct {
	Python           string  `yaml:"python"`
	Script           string  `yaml:"script"`
	MinDetectionConf float64 `yaml:"min_detection_conf"`
	MinTrackingConf  float64 `yaml:"min_tracking_conf"`
}

// Config holds the full application configuration.
type Config struct {
	Addr        string    `yaml:"addr"`
	DBPath      string    `yaml:"db_path"`
	MaxUploadMB int64     `yaml:"max_upload_mb"`
	Sampling    Sampling  `yaml:"sampling"`
	MediaPipe   MediaPipe `yaml:"mediapipe"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Addr:        ":8080",
		MaxUploadMB: 100,
		Sampling: Sampling{
			Stride:    3,
			MaxFrames: 600,
			MinFrames: 3,
		},
		MediaPipe: MediaPipe{
			MinDetectionConf: 0.5,
			MinTrackingConf:  0.5,
		},
	}
}

// Load reads the configuration from path. If path is empty, the common
// locations are probed and defaults are returned when none exists.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in common locations.
// It checks: "formcheck.yaml" in the working directory and
// ~/.formcheck/config.yaml. Returns the first existing file or empty
// string if none found.
func findConfigFile() string {
	if info, err := os.Stat("formcheck.yaml"); err == nil && !info.IsDir() {
		return "formcheck.yaml"
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homePath := filepath.Join(homeDir, ".formcheck", "config.yaml")
	if info, err := os.Stat(homePath); err == nil && !info.IsDir() {
		return homePath
	}

	return ""
}
