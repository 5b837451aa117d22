package sentiment

import "testing"

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "empty", text: "", want: 0},
		{name: "unknown words", text: "the quick brown fox", want: 0},
		{name: "positive", text: "Great song!", want: 0.6},
		{name: "negative", text: "terrible", want: -0.6},
		{name: "case folded", text: "LOVE", want: 0.6},
		{name: "negated", text: "not good", want: -0.6},
		{name: "clamped", text: "superb superb amazing", want: 1},
		{name: "mixed", text: "love it, hate the intro", want: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Score(tc.text); got != tc.want {
				t.Fatalf("Score(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  string
	}{
		{score: 1, want: "hsl(120, 100%, 85%)"},
		{score: -1, want: "hsl(0, 100%, 85%)"},
		{score: 0.5, want: "hsl(90, 100%, 85%)"},
		{score: -0.5, want: "hsl(30, 100%, 85%)"},
		{score: 0.06, want: "hsl(63.6, 100%, 85%)"},
		{score: -0.06, want: "hsl(56.4, 100%, 85%)"},
		{score: 0, want: "hsl(0, 0%, 95%)"},
		{score: 0.05, want: "hsl(0, 0%, 95%)"},
		{score: 3, want: "hsl(120, 100%, 85%)"},
	}

	for _, tc := range tests {
		if got := Color(tc.score); got != tc.want {
			t.Fatalf("Color(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
