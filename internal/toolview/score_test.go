package toolview

import "testing"

func TestClassifyBands(t *testing.T) {
	cases := []struct {
		score float64
		want  Level
	}{
		{0, LevelLow},
		{39.9, LevelLow},
		{40, LevelMedium},
		{42, LevelMedium},
		{69.9, LevelMedium},
		{70, LevelHigh},
		{100, LevelHigh},
	}
	for _, tc := range cases {
		if got := Classify(tc.score); got.Level != tc.want {
			t.Errorf("Classify(%v).Level = %q, want %q", tc.score, got.Level, tc.want)
		}
	}
}

func TestClassifyClamps(t *testing.T) {
	if got := Classify(-50); got.Level != LevelLow {
		t.Errorf("Classify(-50) = %q, want low band", got.Level)
	}
	if got := Classify(250); got.Level != LevelHigh {
		t.Errorf("Classify(250) = %q, want high band", got.Level)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	first := Classify(42)
	for i := 0; i < 10; i++ {
		if got := Classify(42); got != first {
			t.Fatalf("Classify(42) varied: %+v vs %+v", got, first)
		}
	}
	if first.Colors.Text == "" || first.Colors.Background == "" || first.Colors.Border == "" {
		t.Errorf("Band colors incomplete: %+v", first.Colors)
	}
}

func TestScoreAt(t *testing.T) {
	data := map[string]any{"score": float64(87), "nested": map[string]any{"s": float64(12)}}

	if got := scoreAt(data, "score"); got != 87 {
		t.Errorf("scoreAt = %v, want 87", got)
	}
	if got := scoreAt(data, "nested.s"); got != 12 {
		t.Errorf("scoreAt nested = %v, want 12", got)
	}
	// Absent or unusable scores read as 0.
	if got := scoreAt(data, "missing"); got != 0 {
		t.Errorf("scoreAt missing = %v, want 0", got)
	}
	if got := scoreAt(data, ""); got != 0 {
		t.Errorf("scoreAt empty path = %v, want 0", got)
	}
	if got := scoreAt(map[string]any{"score": "high"}, "score"); got != 0 {
		t.Errorf("scoreAt non-numeric = %v, want 0", got)
	}
}
