package pose

import (
	"math"
	"testing"
)

func TestLandmarksVisibility(t *testing.T) {
	lms := &Landmarks{}
	if got := lms.Visibility(); got != 0 {
		t.Errorf("visibility of zero landmarks = %v, want 0", got)
	}

	// All points fully visible.
	for i := range lms.Points {
		lms.Points[i].Visibility = 1
	}
	if got := lms.Visibility(); math.Abs(got-1) > 1e-9 {
		t.Errorf("visibility = %v, want 1", got)
	}

	// A single visible point averages down across all 33.
	lms = &Landmarks{}
	lms.Points[LeftHip].Visibility = 1
	want := 1.0 / NumLandmarks
	if got := lms.Visibility(); math.Abs(got-want) > 1e-9 {
		t.Errorf("visibility = %v, want %v", got, want)
	}
}

func TestPixelPoint(t *testing.T) {
	lms := &Landmarks{}
	lms.Points[Nose] = Landmark{X: 0.5, Y: 0.25}

	p := lms.PixelPoint(Nose, 1920, 1080)
	if p.X != 960 || p.Y != 270 {
		t.Errorf("PixelPoint = %+v, want {960 270}", p)
	}
}

func TestScriptedStream(t *testing.T) {
	frames := []Frame{
		{Index: 0, Width: 640, Height: 480},
		{Index: 1, Width: 640, Height: 480, Landmarks: &Landmarks{}},
	}
	stream := NewScriptedStream(frames)

	f, ok := stream.Next()
	if !ok || f.Index != 0 || f.Landmarks != nil {
		t.Errorf("first frame = %+v ok=%v", f, ok)
	}

	f, ok = stream.Next()
	if !ok || f.Index != 1 || f.Landmarks == nil {
		t.Errorf("second frame = %+v ok=%v", f, ok)
	}

	if _, ok := stream.Next(); ok {
		t.Error("exhausted stream should report ok=false")
	}
}

func TestStubDetectorClose(t *testing.T) {
	det := NewStubDetector()
	if det.Closed() {
		t.Error("new detector should not be closed")
	}
	if err := det.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if !det.Closed() {
		t.Error("detector should report closed")
	}
}
