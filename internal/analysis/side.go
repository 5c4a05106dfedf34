package analysis

import "github.com/ayusman/formcheck/internal/pose"

// Side identifies which half of the body a limb group is read from.
type Side int

const (
	Left Side = iota
	Right
)

// legSide picks the leg side to trust for this frame by comparing summed
// hip and knee visibility. Ties default to Left. The choice is re-evaluated
// on every frame with no hysteresis, so the tracked side may change if the
// subject turns.
func legSide(l *pose.Landmarks) Side {
	left := l.Points[pose.LeftHip].Visibility + l.Points[pose.LeftKnee].Visibility
	right := l.Points[pose.RightHip].Visibility + l.Points[pose.RightKnee].Visibility
	if left >= right {
		return Left
	}
	return Right
}

// armSide picks the arm side to trust for this frame by comparing summed
// shoulder, elbow, and wrist visibility. Ties default to Left.
func armSide(l *pose.Landmarks) Side {
	left := l.Points[pose.LeftShoulder].Visibility +
		l.Points[pose.LeftElbow].Visibility +
		l.Points[pose.LeftWrist].Visibility
	right := l.Points[pose.RightShoulder].Visibility +
		l.Points[pose.RightElbow].Visibility +
		l.Points[pose.RightWrist].Visibility
	if left >= right {
		return Left
	}
	return Right
}
