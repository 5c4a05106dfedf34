package pose

import "gocv.io/x/gocv"

// Detector defines the interface for pose detection implementations.
//
// A Detector instance must not be shared across concurrent analyses: the
// underlying model tracks state between frames, so each analysis acquires
// its own instance and closes it when done.
type Detector interface {
	// Detect analyzes a video frame and returns the detected body
	// landmarks, or nil when no body is found in the frame.
	Detect(frame *gocv.Mat) (*Landmarks, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for pose detection.
type Config struct {
	// MinDetectionConf is the minimum detection confidence threshold (0.0-1.0).
	MinDetectionConf float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64

	// PythonPath overrides the Python interpreter used for the sidecar.
	// Empty means probe for a virtualenv and fall back to python3.
	PythonPath string

	// ScriptPath overrides the location of pose_service.py.
	// Empty means probe the usual locations.
	ScriptPath string
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MinDetectionConf: 0.5,
		MinTrackingConf:  0.5,
	}
}
