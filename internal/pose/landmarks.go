// Package pose provides body landmark types and pose detection for exercise
// form analysis.
package pose

import "github.com/ayusman/formcheck/internal/geometry"

// Body landmark indices following the MediaPipe Pose convention.
// See: https://developers.google.com/mediapipe/solutions/vision/pose_landmarker
const (
	Nose           = 0
	LeftEyeInner   = 1
	LeftEye        = 2
	LeftEyeOuter   = 3
	RightEyeInner  = 4
	RightEye       = 5
	RightEyeOuter  = 6
	LeftEar        = 7
	RightEar       = 8
	MouthLeft      = 9
	MouthRight     = 10
	LeftShoulder   = 11
	RightShoulder  = 12
	LeftElbow      = 13
	RightElbow     = 14
	LeftWrist      = 15
	RightWrist     = 16
	LeftPinky      = 17
	RightPinky     = 18
	LeftIndex      = 19
	RightIndex     = 20
	LeftThumb      = 21
	RightThumb     = 22
	LeftHip        = 23
	RightHip       = 24
	LeftKnee       = 25
	RightKnee      = 26
	LeftAnkle      = 27
	RightAnkle     = 28
	LeftHeel       = 29
	RightHeel      = 30
	LeftFootIndex  = 31
	RightFootIndex = 32
	NumLandmarks   = 33
)

// Landmark is a single detected body point in normalized [0,1] image
// coordinates with a detection-visibility confidence in [0,1].
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Visibility float64 `json:"visibility"`
}

// Landmarks holds one frame's full body landmark set.
type Landmarks struct {
	Points [NumLandmarks]Landmark `json:"points"`
}

// Visibility returns the mean visibility across all landmarks.
func (l *Landmarks) Visibility() float64 {
	var sum float64
	for i := range l.Points {
		sum += l.Points[i].Visibility
	}
	return sum / NumLandmarks
}

// PixelPoint returns landmark i scaled to pixel space for a frame of the
// given width and height.
func (l *Landmarks) PixelPoint(i, width, height int) geometry.Point {
	lm := l.Points[i]
	return geometry.Point{X: lm.X * float64(width), Y: lm.Y * float64(height)}
}

// Frame is the detection outcome for one sampled video frame. Landmarks is
// nil when the detector found no body in the frame. Index counts sampled
// frames, not raw video frames. A Frame is immutable after creation.
type Frame struct {
	Index     int
	Width     int
	Height    int
	Landmarks *Landmarks
}
