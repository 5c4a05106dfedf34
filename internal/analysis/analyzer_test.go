package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/ayusman/formcheck/internal/pose"
)

// pushupHandsForwardFrame is a push-up frame with good depth, body line, and
// neck but the wrist well forward of the shoulder (offset ≈ 0.91 upper-arm
// lengths).
func pushupHandsForwardFrame(index int) pose.Frame {
	rad := 65 * math.Pi / 180
	shoulder := [2]float64{500, 300}
	elbow := [2]float64{500, 400}
	wrist := [2]float64{elbow[0] + 100*math.Sin(rad), elbow[1] - 100*math.Cos(rad)}

	return testFrame(index, map[int][2]float64{
		pose.LeftShoulder: shoulder,
		pose.LeftElbow:    elbow,
		pose.LeftWrist:    wrist,
		pose.LeftHip:      {700, 300},
		pose.LeftAnkle:    {900, 300},
		pose.LeftEar:      {550, 300},
	})
}

func TestAnalyze_GoodFormSquat(t *testing.T) {
	stream := pose.NewScriptedStream(goodFormSquatFrames(90))

	result, err := Analyze(stream, Squat, DefaultConfig())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.Exercise != "squat" {
		t.Errorf("exercise = %q, want squat", result.Exercise)
	}
	if result.OverallScore != 95 {
		t.Errorf("overall score = %d, want 95", result.OverallScore)
	}
	if len(result.Corrections) != 0 {
		t.Errorf("corrections = %v, want none", result.Corrections)
	}
	if len(result.WhatsRight) != 4 {
		t.Errorf("whats right has %d entries, want 4", len(result.WhatsRight))
	}
	if len(result.Breakdown) != 4 {
		t.Errorf("breakdown has %d entries, want 4", len(result.Breakdown))
	}
	if result.Summary != "Excellent form! Minor adjustments can make it perfect." {
		t.Errorf("summary = %q", result.Summary)
	}
	if result.FramesAnalyzed != 28 {
		t.Errorf("frames analyzed = %d, want 28", result.FramesAnalyzed)
	}
}

func TestAnalyze_SquatBreakdownScores(t *testing.T) {
	stream := pose.NewScriptedStream(goodFormSquatFrames(120))

	result, err := Analyze(stream, Squat, DefaultConfig())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	// A 120-degree hold is shallow: depth drops to 70 while the posture
	// metrics stay perfect.
	byKey := make(map[string]int)
	for _, g := range result.Breakdown {
		byKey[g.Key] = g.Score
	}

	if byKey["depth"] != 70 {
		t.Errorf("depth score = %d, want 70", byKey["depth"])
	}
	if byKey["torso_alignment"] != 95 {
		t.Errorf("torso score = %d, want 95", byKey["torso_alignment"])
	}

	// Depth is below the positive cutoff: it must surface as a correction.
	found := false
	for _, c := range result.Corrections {
		if c.Issue == "Shallow depth" {
			found = true
			if c.Severity != SeverityWarning {
				t.Errorf("depth severity = %q, want warning", c.Severity)
			}
		}
	}
	if !found {
		t.Error("expected a shallow depth correction")
	}
}

func TestAnalyze_PushupHandPlacement(t *testing.T) {
	frames := make([]pose.Frame, 20)
	for i := range frames {
		frames[i] = pushupHandsForwardFrame(i)
	}

	result, err := Analyze(pose.NewScriptedStream(frames), Pushup, DefaultConfig())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.OverallScore != 91 {
		t.Errorf("overall score = %d, want 91", result.OverallScore)
	}
	if len(result.Corrections) != 1 {
		t.Fatalf("corrections = %v, want exactly one", result.Corrections)
	}

	c := result.Corrections[0]
	if c.Issue != "Hands not under shoulders" {
		t.Errorf("issue = %q, want hand placement", c.Issue)
	}
	if c.Severity != SeverityWarning {
		t.Errorf("severity = %q, want warning", c.Severity)
	}
}

func TestAnalyze_LungeCorrectionsInPriorityOrder(t *testing.T) {
	frames := make([]pose.Frame, 6)
	for i := range frames {
		frames[i] = testFrame(i, lungeFramePoints())
	}

	result, err := Analyze(pose.NewScriptedStream(frames), Lunge, DefaultConfig())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.OverallScore != 83 {
		t.Errorf("overall score = %d, want 83", result.OverallScore)
	}
	if len(result.Corrections) != 2 {
		t.Fatalf("corrections = %v, want two", result.Corrections)
	}

	// Knee tracking outranks step width in the lunge priority order.
	if result.Corrections[0].Issue != "Front knee valgus/varus" {
		t.Errorf("first correction = %q, want knee tracking", result.Corrections[0].Issue)
	}
	if result.Corrections[0].Severity != SeverityCritical {
		t.Errorf("knee tracking severity = %q, want critical", result.Corrections[0].Severity)
	}
	if result.Corrections[1].Issue != "Tightrope stance" {
		t.Errorf("second correction = %q, want step width", result.Corrections[1].Issue)
	}
	if result.Corrections[1].Severity != SeverityInfo {
		t.Errorf("step width severity = %q, want info", result.Corrections[1].Severity)
	}
}

func TestAnalyze_InsufficientFrames(t *testing.T) {
	// Ten sampled frames, none with a detection.
	frames := make([]pose.Frame, 10)
	for i := range frames {
		frames[i] = pose.Frame{Index: i, Width: testFrameSize, Height: testFrameSize}
	}

	_, err := Analyze(pose.NewScriptedStream(frames), Squat, DefaultConfig())
	if !errors.Is(err, ErrInsufficientFrames) {
		t.Errorf("err = %v, want ErrInsufficientFrames", err)
	}

	// Two usable frames are still below the floor of three.
	_, err = Analyze(pose.NewScriptedStream([]pose.Frame{
		squatFrame(0, 120),
		squatFrame(1, 110),
	}), Squat, DefaultConfig())
	if !errors.Is(err, ErrInsufficientFrames) {
		t.Errorf("err = %v, want ErrInsufficientFrames", err)
	}
}

func TestAnalyze_UnsupportedExercise(t *testing.T) {
	stream := pose.NewScriptedStream(goodFormSquatFrames(90))

	_, err := Analyze(stream, Exercise(99), DefaultConfig())
	if !errors.Is(err, ErrUnsupportedExercise) {
		t.Errorf("err = %v, want ErrUnsupportedExercise", err)
	}
}

func TestAnalyze_RespectsFrameCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFrames = 5

	result, err := Analyze(pose.NewScriptedStream(goodFormSquatFrames(90)), Squat, cfg)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.FramesAnalyzed != 5 {
		t.Errorf("frames analyzed = %d, want 5", result.FramesAnalyzed)
	}
}

func TestAnalyze_UndetectedFramesCountAgainstCap(t *testing.T) {
	// Three empty frames exhaust most of a four-frame cap, leaving one
	// usable frame, below the minimum of three.
	frames := []pose.Frame{
		{Index: 0, Width: testFrameSize, Height: testFrameSize},
		{Index: 1, Width: testFrameSize, Height: testFrameSize},
		{Index: 2, Width: testFrameSize, Height: testFrameSize},
		squatFrame(3, 90),
		squatFrame(4, 90),
		squatFrame(5, 90),
	}

	cfg := DefaultConfig()
	cfg.MaxFrames = 4

	_, err := Analyze(pose.NewScriptedStream(frames), Squat, cfg)
	if !errors.Is(err, ErrInsufficientFrames) {
		t.Errorf("err = %v, want ErrInsufficientFrames", err)
	}
}
