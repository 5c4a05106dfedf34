package analysis

import (
	"errors"
	"fmt"

	"github.com/ayusman/formcheck/internal/pose"
)

// Config carries the sampling policy for one analysis. The stride is
// consumed by the frame source (it decides which raw frames reach the
// detector); MaxFrames and MinFrames are enforced here.
type Config struct {
	// Stride processes every Nth raw frame to bound cost.
	Stride int
	// MaxFrames caps the number of sampled frames to bound worst-case
	// latency on long videos.
	MaxFrames int
	// MinFrames is the minimum number of frames that must yield the
	// exercise's primary flexion metric before scoring is attempted.
	MinFrames int
}

// DefaultConfig returns the standard sampling policy.
func DefaultConfig() Config {
	return Config{
		Stride:    3,
		MaxFrames: 600,
		MinFrames: 3,
	}
}

// ErrInsufficientFrames is returned when too few frames produced the
// exercise's primary metric to score the movement honestly.
var ErrInsufficientFrames = errors.New("not enough pose detections to analyze")

// Analyze runs the full pipeline over the stream for one exercise: it
// consumes sampled frames up to the configured cap, extracts per-frame
// metrics for frames with a detection, aggregates each metric series, and
// scores and assembles the result.
//
// The stream and any pose resources behind it are owned by the caller;
// Analyze never closes them, so release stays the caller's obligation on
// every exit path.
func Analyze(stream pose.Stream, exercise Exercise, cfg Config) (*Result, error) {
	pl := exercise.plan()
	if pl == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedExercise, int(exercise))
	}

	if cfg.MaxFrames <= 0 {
		cfg.MaxFrames = DefaultConfig().MaxFrames
	}
	if cfg.MinFrames <= 0 {
		cfg.MinFrames = DefaultConfig().MinFrames
	}

	set := seriesSet{}
	processed := 0
	for processed < cfg.MaxFrames {
		frame, ok := stream.Next()
		if !ok {
			break
		}
		processed++

		// No detection on this frame: it still counts against the cap
		// but contributes no data.
		if frame.Landmarks == nil {
			continue
		}
		pl.extract(frame, set)
	}

	usable := set.count(pl.primary)
	if usable < cfg.MinFrames {
		return nil, fmt.Errorf("%w: %d usable frames (need %d). Ensure the full body is in frame with decent lighting",
			ErrInsufficientFrames, usable, cfg.MinFrames)
	}

	stats := make(map[string]float64, len(pl.policies))
	for _, p := range pl.policies {
		stats[p.series] = summarize(set[p.series], p.agg)
	}

	scores := make(map[string]int, len(pl.groups))
	for _, g := range pl.groups {
		scores[g.key] = applyRules(g.rules, stats[g.series])
	}

	return pl.assemble(stats, scores, usable), nil
}
