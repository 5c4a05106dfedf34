package pose

import "gocv.io/x/gocv"

// ScriptedStream is a Stream backed by a fixed slice of frames. It lets
// tests and offline tools drive the analysis pipeline without a video file
// or a detector subprocess.
type ScriptedStream struct {
	frames []Frame
	pos    int
}

// NewScriptedStream creates a stream that replays the given frames in
// order.
func NewScriptedStream(frames []Frame) *ScriptedStream {
	return &ScriptedStream{frames: frames}
}

// Next returns the next scripted frame.
func (s *ScriptedStream) Next() (Frame, bool) {
	if s.pos >= len(s.frames) {
		return Frame{}, false
	}
	f := s.frames[s.pos]
	s.pos++
	return f, true
}

// StubDetector is a test implementation of the Detector interface. It
// returns a pre-configured landmark set for every frame.
type StubDetector struct {
	landmarks *Landmarks
	err       error
	closed    bool
}

// NewStubDetector creates a new StubDetector instance.
func NewStubDetector() *StubDetector {
	return &StubDetector{}
}

// SetLandmarks sets the landmarks that will be returned by Detect. Passing
// nil makes every frame report no detection.
func (d *StubDetector) SetLandmarks(lms *Landmarks) {
	d.landmarks = lms
}

// SetError sets the error that will be returned by Detect.
func (d *StubDetector) SetError(err error) {
	d.err = err
}

// Detect returns the pre-configured landmarks or error.
func (d *StubDetector) Detect(frame *gocv.Mat) (*Landmarks, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.landmarks, nil
}

// Close marks the detector as closed.
func (d *StubDetector) Close() error {
	d.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (d *StubDetector) Closed() bool {
	return d.closed
}
