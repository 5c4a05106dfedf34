package analysis

import (
	"fmt"
	"math"

	"github.com/ayusman/formcheck/internal/geometry"
	"github.com/ayusman/formcheck/internal/pose"
)

// Lunge metric series.
const (
	luFrontKnee  = "front_knee_flexion"
	luShinLean   = "shin_lean"
	luTorsoLean  = "torso_lean"
	luKneeDrift  = "knee_drift"
	luStepWidth  = "step_width_ratio"
	luStrideLen  = "stride_length_ratio"
	luKneeWobble = "knee_wobble"
)

// lungeLeg gathers the pixel points of one leg chain.
type lungeLeg struct {
	shoulder geometry.Point
	hip      geometry.Point
	knee     geometry.Point
	ankle    geometry.Point
	toe      geometry.Point
}

func legPoints(f pose.Frame, side Side) lungeLeg {
	lms := f.Landmarks
	shoulderI, hipI, kneeI, ankleI, toeI := pose.LeftShoulder, pose.LeftHip, pose.LeftKnee, pose.LeftAnkle, pose.LeftFootIndex
	if side == Right {
		shoulderI, hipI, kneeI, ankleI, toeI = pose.RightShoulder, pose.RightHip, pose.RightKnee, pose.RightAnkle, pose.RightFootIndex
	}
	return lungeLeg{
		shoulder: lms.PixelPoint(shoulderI, f.Width, f.Height),
		hip:      lms.PixelPoint(hipI, f.Width, f.Height),
		knee:     lms.PixelPoint(kneeI, f.Width, f.Height),
		ankle:    lms.PixelPoint(ankleI, f.Width, f.Height),
		toe:      lms.PixelPoint(toeI, f.Width, f.Height),
	}
}

// extractLunge measures one frame of a lunge. Unlike squat and push-up it
// needs both legs: the leg with the smaller (more flexed) knee angle is
// classified as the front leg before any front-leg metric is computed. A
// frame where either knee angle is degenerate contributes nothing.
func extractLunge(f pose.Frame, set seriesSet) {
	left := legPoints(f, Left)
	right := legPoints(f, Right)

	leftKnee, leftOK := geometry.AngleAtVertex(left.hip, left.knee, left.ankle)
	rightKnee, rightOK := geometry.AngleAtVertex(right.hip, right.knee, right.ankle)
	if !leftOK || !rightOK {
		return
	}

	front, frontKnee := left, leftKnee
	if rightKnee < leftKnee {
		front, frontKnee = right, rightKnee
	}

	set.add(luFrontKnee, frontKnee)

	if shin, ok := leanFromUpright(front.knee, front.ankle); ok {
		set.add(luShinLean, shin)
	}

	if torso, ok := leanFromUpright(front.shoulder, front.hip); ok {
		set.add(luTorsoLean, torso)
	}

	if dev, ok := geometry.DistPointToLine(front.knee, front.ankle, front.toe); ok {
		if thigh := front.hip.Dist(front.knee); thigh > 0 {
			set.add(luKneeDrift, dev/thigh)
		}
	}

	if pelvis := left.hip.Dist(right.hip); pelvis > 0 {
		set.add(luStepWidth, math.Abs(left.toe.X-right.toe.X)/pelvis)
	}

	if leg := front.hip.Dist(front.ankle); leg > 0 {
		set.add(luStrideLen, math.Abs(left.toe.Y-right.toe.Y)/leg)
	}

	// Raw front-knee x sample, normalized by frame width so the wobble
	// spread is resolution-independent.
	set.add(luKneeWobble, front.knee.X/float64(f.Width))
}

var lungePlan = &plan{
	name:    "lunge",
	primary: luFrontKnee,
	extract: extractLunge,
	policies: []seriesPolicy{
		{luFrontKnee, aggP10},
		{luShinLean, aggMedian},
		{luTorsoLean, aggMedian},
		{luKneeDrift, aggP90},
		{luStepWidth, aggMedian},
		{luStrideLen, aggMedian},
		{luKneeWobble, aggStdDev},
	},
	groups: []metricGroup{
		{
			key:      "front_knee_depth",
			series:   luFrontKnee,
			rules:    []scoreRule{atMost(95, 95), atMost(110, 85), atMost(125, 70), otherwise(50)},
			weight:   0.30,
			positive: "Good lunge depth on the front leg.",
			detail: func(st map[string]float64) string {
				return fmt.Sprintf("Deepest front-knee angle ≈ %.0f°. Aim ~90-110°.", st[luFrontKnee])
			},
			issue:    "Shallow front-knee depth",
			severity: sevWarning,
			complaint: func(st map[string]float64) string {
				return fmt.Sprintf("Deepest front-knee angle ≈ %.0f° at stride length ≈ %.2f× leg length, suggesting limited range.", st[luFrontKnee], st[luStrideLen])
			},
			instruction: "Take a slightly longer stride, drop the back knee more vertically, and keep the front heel rooted. Try bodyweight tempo lunges (3-0-3).",
		},
		{
			key:      "knee_tracking",
			series:   luKneeDrift,
			rules:    []scoreRule{atMost(0.15, 95), atMost(0.25, 80), atMost(0.35, 65), otherwise(50)},
			weight:   0.20,
			positive: "Front knee tracks well over the toes.",
			detail: func(st map[string]float64) string {
				return fmt.Sprintf("Peak lateral knee drift (normalized) ≈ %.2f. Track knee over 2nd-3rd toe.", st[luKneeDrift])
			},
			issue:    "Front knee valgus/varus",
			severity: sevScaled,
			complaint: func(st map[string]float64) string {
				return "The front knee drifts laterally relative to the foot line."
			},
			instruction: "Press the front foot evenly (tripod) and guide the knee over the 2nd-3rd toe. Slow tempo to build control.",
		},
		{
			key:      "shin_angle",
			series:   luShinLean,
			rules:    []scoreRule{atMost(15, 95), atMost(25, 80), atMost(35, 65), otherwise(50)},
			weight:   0.15,
			positive: "Appropriate shin angle.",
			detail: func(st map[string]float64) string {
				return fmt.Sprintf("Median shin angle vs vertical ≈ %.0f°. Keep the tibia more upright if you feel knee stress.", st[luShinLean])
			},
			issue:    "Excessive shin angle",
			severity: sevWarning,
			complaint: func(st map[string]float64) string {
				return fmt.Sprintf("Shin angle vs vertical ≈ %.0f°.", st[luShinLean])
			},
			instruction: "Scoot the front foot forward a touch and descend more vertically. Keep the knee stacked over the mid-foot.",
		},
		{
			key:      "torso_alignment",
			series:   luTorsoLean,
			rules:    []scoreRule{atMost(15, 95), atMost(25, 80), atMost(35, 65), otherwise(50)},
			weight:   0.15,
			positive: "Upright torso and good bracing.",
			detail: func(st map[string]float64) string {
				return fmt.Sprintf("Median torso lean ≈ %.0f°. Brace and keep ribs stacked over hips.", st[luTorsoLean])
			},
			issue:    "Torso leaning forward",
			severity: sevScaled,
			complaint: func(st map[string]float64) string {
				return fmt.Sprintf("Torso lean ≈ %.0f° may indicate poor bracing or stride setup.", st[luTorsoLean])
			},
			instruction: "Big breath into the belly/obliques before each rep; keep ribs stacked over hips. Goblet reverse lunges help groove posture.",
		},
		{
			key:      "step_width",
			series:   luStepWidth,
			rules:    []scoreRule{between(0.6, 1.2, 95), between(0.4, 1.6, 80), otherwise(60)},
			weight:   0.10,
			positive: "Solid step width for balance.",
			detail: func(st map[string]float64) string {
				return fmt.Sprintf("Step width ratio ≈ %.2f (feet width / pelvis width). Avoid tightrope stance.", st[luStepWidth])
			},
			issue:    "Tightrope stance",
			severity: sevInfo,
			complaint: func(st map[string]float64) string {
				return fmt.Sprintf("Step width ratio ≈ %.2f, which may reduce balance.", st[luStepWidth])
			},
			instruction: "Set the feet hip-width apart like two rails, not a single line. Maintain that width during the step.",
		},
		{
			key:      "stability",
			series:   luKneeWobble,
			rules:    []scoreRule{atMost(0.01, 95), atMost(0.02, 80), atMost(0.03, 65), otherwise(50)},
			weight:   0.10,
			positive: "Stable knee path through reps.",
			detail: func(st map[string]float64) string {
				return fmt.Sprintf("Knee path wobble (normalized) ≈ %.3f. Slow the descent; focus on tripod foot.", st[luKneeWobble])
			},
			issue:    "Knee wobble",
			severity: sevWarning,
			complaint: func(st map[string]float64) string {
				return "Notable side-to-side front-knee movement frame-to-frame."
			},
			instruction: "Slow the eccentric (2-3s), focus the knee toward the 2nd-3rd toe, and use light support (fingertips on a rack) while learning.",
		},
	},
	priority: []string{"knee_tracking", "front_knee_depth", "shin_angle", "torso_alignment", "step_width", "stability"},
	tips: []string{
		"Film at ~45° front angle with the entire body in frame.",
		"Brace before each rep: inhale, ribs down, descend vertically; exhale at the top.",
		"Keep the front heel heavy; think 'down not forward'.",
		"Use a slow 2-3s descent to control tracking and stability.",
		"Practice stationary split squats to build balance before dynamic lunges.",
	},
}
