package pose

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"gocv.io/x/gocv"
)

// Fallback frame dimensions when the container does not report them.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// ErrCouldNotOpenVideo is returned when a video file cannot be opened or
// decoded.
var ErrCouldNotOpenVideo = errors.New("could not open video")

// Stream yields detection outcomes for a sampled subset of a video's
// frames, in order. A Stream is finite and non-restartable.
type Stream interface {
	// Next returns the next sampled frame's detection outcome. ok is false
	// once the stream is exhausted.
	Next() (Frame, bool)
}

// VideoSource reads a video file with GoCV, samples every strideth frame,
// and runs pose detection on the sampled frames. It implements Stream.
//
// The VideoSource owns the decoder handle; Close must be called on every
// exit path. The detector is owned by the caller and is not closed here.
type VideoSource struct {
	capture  *gocv.VideoCapture
	detector Detector
	stride   int
	width    int
	height   int
	raw      int // raw frames read from the container
	sampled  int // frames handed to the detector
	mu       sync.Mutex
	closed   bool
}

// OpenVideo opens the video file at path for sampled pose detection.
// A stride of n means every nth frame is detected; values below 1 are
// treated as 1. Returns ErrCouldNotOpenVideo when the file cannot be
// decoded.
func OpenVideo(path string, det Detector, stride int) (*VideoSource, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCouldNotOpenVideo, path)
	}

	width := int(capture.Get(gocv.VideoCaptureFrameWidth))
	height := int(capture.Get(gocv.VideoCaptureFrameHeight))
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	if stride < 1 {
		stride = 1
	}

	return &VideoSource{
		capture:  capture,
		detector: det,
		stride:   stride,
		width:    width,
		height:   height,
	}, nil
}

// Next advances to the next sampled frame and returns its detection
// outcome. Frames where detection errors are reported with nil landmarks so
// a flaky frame never aborts an analysis.
func (s *VideoSource) Next() (Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Frame{}, false
	}

	mat := gocv.NewMat()
	defer mat.Close()

	for {
		if ok := s.capture.Read(&mat); !ok {
			return Frame{}, false
		}
		s.raw++
		if s.raw%s.stride != 0 {
			continue
		}
		if mat.Empty() {
			continue
		}

		frame := Frame{
			Index:  s.sampled,
			Width:  s.width,
			Height: s.height,
		}
		s.sampled++

		lms, err := s.detector.Detect(&mat)
		if err != nil {
			log.Printf("pose detection failed on frame %d: %v", frame.Index, err)
			return frame, true
		}
		frame.Landmarks = lms

		return frame, true
	}
}

// Size returns the frame dimensions in pixels.
func (s *VideoSource) Size() (width, height int) {
	return s.width, s.height
}

// Close releases the decoder handle. It is safe to call more than once.
func (s *VideoSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	return s.capture.Close()
}
