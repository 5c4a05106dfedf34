// Package analysis turns sampled pose frames into a scored biomechanical
// assessment of an exercise repetition.
//
// The pipeline is: side selection + per-frame feature extraction over the
// geometry kernel, temporal aggregation of each metric series into one
// summary statistic, threshold-table scoring, and feedback assembly. All
// stages past frame iteration are pure transformations over collected data.
package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// Exercise identifies one of the supported movements. The set is closed:
// dispatch is an exhaustive switch, so adding an exercise is a compile-time
// checked extension rather than a runtime table lookup.
type Exercise int

const (
	Squat Exercise = iota
	Pushup
	Lunge
)

// ErrUnsupportedExercise is returned for exercise identifiers with no
// analyzer.
var ErrUnsupportedExercise = errors.New("unsupported exercise")

// ParseExercise maps a request identifier to an Exercise. It returns
// ErrUnsupportedExercise for anything outside the closed set, before any
// frame is read.
func ParseExercise(s string) (Exercise, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "squat":
		return Squat, nil
	case "pushup", "push-up", "push_up":
		return Pushup, nil
	case "lunge":
		return Lunge, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedExercise, s)
}

// String returns the canonical identifier for the exercise.
func (e Exercise) String() string {
	switch e {
	case Squat:
		return "squat"
	case Pushup:
		return "pushup"
	case Lunge:
		return "lunge"
	}
	return "unknown"
}

// plan returns the exercise's extraction, aggregation, scoring, and
// feedback tables, or nil for values outside the closed set.
func (e Exercise) plan() *plan {
	switch e {
	case Squat:
		return squatPlan
	case Pushup:
		return pushupPlan
	case Lunge:
		return lungePlan
	}
	return nil
}
