package analysis

import (
	"math"

	"github.com/ayusman/formcheck/internal/pose"
)

// Test frames use a 1000x1000 image so pixel coordinates map to normalized
// landmark coordinates by dividing by 1000.
const testFrameSize = 1000

// pixelLandmarks builds a landmark set from pixel coordinates. Every named
// landmark gets full visibility; all others stay at zero.
func pixelLandmarks(points map[int][2]float64) *pose.Landmarks {
	lms := &pose.Landmarks{}
	for i, p := range points {
		lms.Points[i] = pose.Landmark{
			X:          p[0] / testFrameSize,
			Y:          p[1] / testFrameSize,
			Visibility: 1,
		}
	}
	return lms
}

func testFrame(index int, points map[int][2]float64) pose.Frame {
	return pose.Frame{
		Index:     index,
		Width:     testFrameSize,
		Height:    testFrameSize,
		Landmarks: pixelLandmarks(points),
	}
}

// squatFrame builds a side-view squat frame with the left knee flexed to the
// given angle in degrees. The torso stays upright, the knee stays on the
// ankle-toe line, and the dorsiflexion proxy stays high, so only the depth
// metric varies with the angle.
func squatFrame(index int, kneeAngle float64) pose.Frame {
	rad := kneeAngle * math.Pi / 180
	knee := [2]float64{500, 500}
	ankle := [2]float64{500, 600}
	hip := [2]float64{knee[0] + 100*math.Sin(rad), knee[1] + 100*math.Cos(rad)}
	shoulder := [2]float64{hip[0], hip[1] - 200}
	toe := [2]float64{500, 550} // on the knee-ankle line

	return testFrame(index, map[int][2]float64{
		pose.LeftShoulder:  shoulder,
		pose.LeftHip:       hip,
		pose.LeftKnee:      knee,
		pose.LeftAnkle:     ankle,
		pose.LeftFootIndex: toe,
	})
}

// goodFormSquatFrames builds a descend-hold-ascend squat rep whose 10th
// percentile knee angle lands exactly at the hold angle.
func goodFormSquatFrames(holdAngle float64) []pose.Frame {
	var frames []pose.Frame
	add := func(angle float64) {
		frames = append(frames, squatFrame(len(frames), angle))
	}

	for a := 170.0; a > holdAngle; a -= 10 {
		add(a)
	}
	for i := 0; i < 12; i++ {
		add(holdAngle)
	}
	for a := holdAngle + 10; a <= 170; a += 10 {
		add(a)
	}
	return frames
}
