package analysis

import "github.com/ayusman/formcheck/internal/geometry"

// seriesSet accumulates per-frame metric values keyed by metric name.
// Extractors append a value only when every geometry input it depends on
// was defined for that frame, so a series never contains the result of
// degenerate geometry.
type seriesSet map[string][]float64

func (s seriesSet) add(name string, v float64) {
	s[name] = append(s[name], v)
}

func (s seriesSet) count(name string) int {
	return len(s[name])
}

// leanFromUpright measures how far the segment b->a tilts away from
// upright, in degrees: 0 when a is directly above b in image coordinates.
// This is the single sign convention used for every torso and shin posture
// metric.
func leanFromUpright(a, b geometry.Point) (float64, bool) {
	deg, ok := geometry.AngleToVertical(a, b)
	if !ok {
		return 0, false
	}
	return 180 - deg, true
}
