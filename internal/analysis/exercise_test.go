package analysis

import (
	"errors"
	"testing"
)

func TestParseExercise(t *testing.T) {
	tests := []struct {
		input string
		want  Exercise
	}{
		{"squat", Squat},
		{"Squat", Squat},
		{"  squat  ", Squat},
		{"pushup", Pushup},
		{"push-up", Pushup},
		{"push_up", Pushup},
		{"PUSHUP", Pushup},
		{"lunge", Lunge},
	}

	for _, tt := range tests {
		got, err := ParseExercise(tt.input)
		if err != nil {
			t.Errorf("ParseExercise(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseExercise(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseExercise_Unsupported(t *testing.T) {
	for _, input := range []string{"burpee", "", "deadlift", "squats"} {
		_, err := ParseExercise(input)
		if !errors.Is(err, ErrUnsupportedExercise) {
			t.Errorf("ParseExercise(%q) err = %v, want ErrUnsupportedExercise", input, err)
		}
	}
}

func TestExerciseString(t *testing.T) {
	tests := []struct {
		ex   Exercise
		want string
	}{
		{Squat, "squat"},
		{Pushup, "pushup"},
		{Lunge, "lunge"},
		{Exercise(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.ex.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.ex), got, tt.want)
		}
	}
}

func TestExercisePlans(t *testing.T) {
	for _, ex := range []Exercise{Squat, Pushup, Lunge} {
		pl := ex.plan()
		if pl == nil {
			t.Fatalf("%v has no plan", ex)
		}
		if pl.name != ex.String() {
			t.Errorf("plan name %q does not match exercise %q", pl.name, ex.String())
		}
	}

	if Exercise(99).plan() != nil {
		t.Error("out-of-range exercise should have no plan")
	}
}
