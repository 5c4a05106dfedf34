package analysis

import (
	"fmt"

	"github.com/ayusman/formcheck/internal/geometry"
	"github.com/ayusman/formcheck/internal/pose"
)

// Squat metric series.
const (
	sqKneeFlex   = "knee_flexion"
	sqHipFlex    = "hip_flexion"
	sqTorsoLean  = "torso_lean"
	sqAnkleDorsi = "ankle_dorsiflexion"
	sqKneeDrift  = "knee_drift"
	sqHipDrop    = "hip_drop"
)

// extractSquat measures one frame of a squat from the more visible leg
// side: the three joint flexion angles, torso lean, a dorsiflexion proxy,
// lateral knee drift normalized by thigh length, and the signed hip-to-knee
// vertical offset.
func extractSquat(f pose.Frame, set seriesSet) {
	lms := f.Landmarks

	hipI, kneeI, ankleI, shoulderI, toeI := pose.LeftHip, pose.LeftKnee, pose.LeftAnkle, pose.LeftShoulder, pose.LeftFootIndex
	if legSide(lms) == Right {
		hipI, kneeI, ankleI, shoulderI, toeI = pose.RightHip, pose.RightKnee, pose.RightAnkle, pose.RightShoulder, pose.RightFootIndex
	}

	hip := lms.PixelPoint(hipI, f.Width, f.Height)
	knee := lms.PixelPoint(kneeI, f.Width, f.Height)
	ankle := lms.PixelPoint(ankleI, f.Width, f.Height)
	shoulder := lms.PixelPoint(shoulderI, f.Width, f.Height)
	toe := lms.PixelPoint(toeI, f.Width, f.Height)

	kneeAngle, kneeOK := geometry.AngleAtVertex(hip, knee, ankle)
	hipAngle, hipOK := geometry.AngleAtVertex(shoulder, hip, knee)
	torso, torsoOK := leanFromUpright(shoulder, hip)
	ankleAngle, ankleOK := geometry.AngleAtVertex(knee, ankle, toe)

	// The joint angles travel together: a frame contributes all four or
	// none, so their series stay in lockstep.
	if kneeOK && hipOK && torsoOK && ankleOK {
		set.add(sqKneeFlex, kneeAngle)
		set.add(sqHipFlex, hipAngle)
		set.add(sqTorsoLean, torso)
		set.add(sqAnkleDorsi, 180-ankleAngle)
	}

	if dev, ok := geometry.DistPointToLine(knee, ankle, toe); ok {
		if thigh := hip.Dist(knee); thigh > 0 {
			set.add(sqKneeDrift, dev/thigh)
		}
	}

	// Positive when the hip sits below the knee (image y grows downward).
	set.add(sqHipDrop, hip.Y-knee.Y)
}

var squatPlan = &plan{
	name:    "squat",
	primary: sqKneeFlex,
	extract: extractSquat,
	policies: []seriesPolicy{
		{sqKneeFlex, aggP10},
		{sqHipFlex, aggP10},
		{sqTorsoLean, aggMedian},
		{sqAnkleDorsi, aggP90},
		{sqKneeDrift, aggP90},
		{sqHipDrop, aggP90},
	},
	groups: []metricGroup{
		{
			key:      "depth",
			series:   sqKneeFlex,
			rules:    []scoreRule{atMost(95, 95), atMost(110, 85), atMost(125, 70), otherwise(50)},
			weight:   0.35,
			positive: "Good squat depth.",
			detail: func(st map[string]float64) string {
				return fmt.Sprintf("Deepest knee angle ≈ %.0f°, hip flexion ≈ %.0f°.", st[sqKneeFlex], st[sqHipFlex])
			},
			issue:    "Shallow depth",
			severity: sevWarning,
			complaint: func(st map[string]float64) string {
				if st[sqHipDrop] <= 0 {
					return fmt.Sprintf("Deepest knee angle %.0f°; the hips never dropped below knee level.", st[sqKneeFlex])
				}
				return fmt.Sprintf("Deepest knee angle %.0f° suggests limited depth.", st[sqKneeFlex])
			},
			instruction: "Try light heel elevation and tempo squats (3-0-3) to build control.",
		},
		{
			key:      "torso_alignment",
			series:   sqTorsoLean,
			rules:    []scoreRule{atMost(5, 95), atMost(10, 80), atMost(15, 65), otherwise(50)},
			weight:   0.30,
			positive: "Solid torso control.",
			detail: func(st map[string]float64) string {
				return fmt.Sprintf("Median torso lean ≈ %.0f° from vertical.", st[sqTorsoLean])
			},
			issue:    "Excessive torso lean",
			severity: sevScaled,
			complaint: func(st map[string]float64) string {
				return fmt.Sprintf("Torso lean ≈ %.0f° may stress the lower back.", st[sqTorsoLean])
			},
			instruction: "Brace and keep chest/hips rising together; try goblet squats.",
		},
		{
			key:      "knee_tracking",
			series:   sqKneeDrift,
			rules:    []scoreRule{atMost(0.15, 95), atMost(0.25, 80), atMost(0.35, 65), otherwise(50)},
			weight:   0.25,
			positive: "Knees tracking well.",
			detail: func(st map[string]float64) string {
				return fmt.Sprintf("Peak knee drift ≈ %.2f of thigh length.", st[sqKneeDrift])
			},
			issue:    "Knee valgus",
			severity: sevScaled,
			complaint: func(st map[string]float64) string {
				return "Knees show lateral drift versus the toe line."
			},
			instruction: "Screw feet into the floor, push knees over the 2nd-3rd toe; add mini-band warm-ups.",
		},
		{
			key:      "ankle_mobility",
			series:   sqAnkleDorsi,
			rules:    []scoreRule{atLeast(30, 95), atLeast(20, 80), atLeast(15, 65), otherwise(50)},
			weight:   0.10,
			positive: "Adequate ankle mobility.",
			detail: func(st map[string]float64) string {
				return fmt.Sprintf("Peak dorsiflexion proxy ≈ %.0f°.", st[sqAnkleDorsi])
			},
			issue:    "Limited ankle mobility",
			severity: sevInfo,
			complaint: func(st map[string]float64) string {
				return fmt.Sprintf("Peak dorsiflexion proxy ≈ %.0f° suggests a restricted ankle range.", st[sqAnkleDorsi])
			},
			instruction: "Spend time on wall dorsiflexion drills, or elevate the heels slightly while squatting.",
		},
	},
	priority: []string{"knee_tracking", "depth", "torso_alignment", "ankle_mobility"},
	tips: []string{
		"Film from ~45° front, full body in frame.",
		"Brace before descent; exhale on top.",
		"Tripod foot pressure; slow 2-3s eccentric.",
	},
}
