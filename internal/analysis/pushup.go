package analysis

import (
	"fmt"
	"math"

	"github.com/ayusman/formcheck/internal/geometry"
	"github.com/ayusman/formcheck/internal/pose"
)

// Push-up metric series.
const (
	puElbowFlex  = "elbow_flexion"
	puBodyLine   = "body_line_deviation"
	puNeckTilt   = "neck_tilt"
	puHandOffset = "hand_offset"
)

// extractPushup measures one frame of a push-up from the more visible arm
// side: elbow flexion, hip deviation from the shoulder-ankle line
// normalized by body length, neck tilt against the horizontal, and the
// horizontal wrist-to-shoulder offset normalized by upper-arm length.
func extractPushup(f pose.Frame, set seriesSet) {
	lms := f.Landmarks

	shoulderI, elbowI, wristI, hipI, ankleI, earI := pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist, pose.LeftHip, pose.LeftAnkle, pose.LeftEar
	if armSide(lms) == Right {
		shoulderI, elbowI, wristI, hipI, ankleI, earI = pose.RightShoulder, pose.RightElbow, pose.RightWrist, pose.RightHip, pose.RightAnkle, pose.RightEar
	}

	shoulder := lms.PixelPoint(shoulderI, f.Width, f.Height)
	elbow := lms.PixelPoint(elbowI, f.Width, f.Height)
	wrist := lms.PixelPoint(wristI, f.Width, f.Height)
	hip := lms.PixelPoint(hipI, f.Width, f.Height)
	ankle := lms.PixelPoint(ankleI, f.Width, f.Height)
	ear := lms.PixelPoint(earI, f.Width, f.Height)

	if elbowAngle, ok := geometry.AngleAtVertex(shoulder, elbow, wrist); ok {
		set.add(puElbowFlex, elbowAngle)
	}

	if dev, ok := geometry.DistPointToLine(hip, shoulder, ankle); ok {
		if body := shoulder.Dist(ankle); body > 0 {
			set.add(puBodyLine, dev/body)
		}
	}

	if neck, ok := geometry.AngleToHorizontal(ear, shoulder); ok {
		set.add(puNeckTilt, neck)
	}

	if upperArm := shoulder.Dist(elbow); upperArm > 0 {
		set.add(puHandOffset, math.Abs(wrist.X-shoulder.X)/upperArm)
	}
}

var pushupPlan = &plan{
	name:    "pushup",
	primary: puElbowFlex,
	extract: extractPushup,
	policies: []seriesPolicy{
		{puElbowFlex, aggP10},
		{puBodyLine, aggMedian},
		{puNeckTilt, aggMedian},
		{puHandOffset, aggMedian},
	},
	groups: []metricGroup{
		{
			key:      "elbow_depth",
			series:   puElbowFlex,
			rules:    []scoreRule{atMost(70, 95), atMost(90, 85), atMost(110, 70), otherwise(55)},
			weight:   0.35,
			positive: "Solid push-up depth.",
			detail: func(st map[string]float64) string {
				return fmt.Sprintf("Bottom elbow angle ≈ %.0f°.", st[puElbowFlex])
			},
			issue:    "Shallow depth",
			severity: sevScaled,
			complaint: func(st map[string]float64) string {
				return fmt.Sprintf("Bottom elbow angle ~%.0f° indicates limited depth.", st[puElbowFlex])
			},
			instruction: "Use incline push-ups to keep full ROM without losing body line. Slow 2-3s descent.",
		},
		{
			key:      "body_line",
			series:   puBodyLine,
			rules:    []scoreRule{atMost(0.04, 95), atMost(0.07, 82), atMost(0.12, 68), otherwise(50)},
			weight:   0.35,
			positive: "Strong plank line.",
			detail: func(st map[string]float64) string {
				return fmt.Sprintf("Hip deviation (norm) ≈ %.2f.", st[puBodyLine])
			},
			issue:    "Hip sag/pike",
			severity: sevScaled,
			complaint: func(st map[string]float64) string {
				return "Hips not aligned with shoulders/ankles."
			},
			instruction: "Squeeze glutes/quads and keep ribs down; reduce reps if the line breaks.",
		},
		{
			key:      "neck_alignment",
			series:   puNeckTilt,
			rules:    []scoreRule{atMost(10, 95), atMost(20, 82), atMost(30, 68), otherwise(55)},
			weight:   0.15,
			positive: "Neutral head/neck.",
			detail: func(st map[string]float64) string {
				return fmt.Sprintf("Neck tilt ≈ %.0f°.", st[puNeckTilt])
			},
			issue:    "Neck not neutral",
			severity: sevInfo,
			complaint: func(st map[string]float64) string {
				return "Head position suggests craning or dropping."
			},
			instruction: "Gaze 30-50 cm ahead; keep the back of your head long.",
		},
		{
			key:      "hand_placement",
			series:   puHandOffset,
			rules:    []scoreRule{atMost(0.5, 95), atMost(0.8, 82), atMost(1.1, 68), otherwise(55)},
			weight:   0.15,
			positive: "Good hand stacking.",
			detail: func(st map[string]float64) string {
				return fmt.Sprintf("Hand offset ≈ %.2f× upper-arm length.", st[puHandOffset])
			},
			issue:    "Hands not under shoulders",
			severity: sevWarning,
			complaint: func(st map[string]float64) string {
				return "Hands appear too far forward/back or width off."
			},
			instruction: "Stack wrists under shoulders; screw hands into the floor.",
		},
	},
	priority: []string{"elbow_depth", "body_line", "neck_alignment", "hand_placement"},
	tips: []string{
		"Film from the side; include wrists to ankles.",
		"Brace like a plank (glutes + quads on).",
		"Use tempo (3s down, 1s up) for control.",
	},
}
