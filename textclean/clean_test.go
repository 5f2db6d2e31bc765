package textclean

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "longest filler wins over substring rule",
			input: "I mean, you know what I mean, the project is great",
			want:  "the project is great",
		},
		{
			name:  "spacing and punctuation repair",
			input: "hello ,  world !   next sentence",
			want:  "hello, world! next sentence",
		},
		{
			name:  "capitalized filler variant",
			input: "Um, this works. You know, mostly.",
			want:  "this works. mostly.",
		},
		{
			name:  "mid-sentence um",
			input: "the result is um fine",
			want:  "the result is fine",
		},
		{
			name:  "filler removal exposes another filler",
			input: "I, um, mean hello",
			want:  "hello",
		},
		{
			name:  "leading punctuation without fillers is preserved",
			input: ", hello",
			want:  ", hello",
		},
		{
			name:  "surrounding case untouched",
			input: "The API, you know, returns JSON",
			want:  "The API, returns JSON",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  "",
		},
		{
			name:  "clean text passes through",
			input: "nothing to do here.",
			want:  "nothing to do here.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"I mean, you know what I mean, the project is great",
		"hello ,  world !   next sentence",
		"Um, so, uh, let's start.",
		"Plain sentence with no fillers.",
		"trailing spaces   ",
		"Multiple. Sentences.  With gaps.",
		"I, um, mean hello",
		"you, um, know the, uh, you know drill",
		", hello",
		"",
	}
	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
