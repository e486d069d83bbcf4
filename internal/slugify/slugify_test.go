package slugify

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"punctuation and parentheses", "Hello, World! (Draft)", "hello-world-draft"},
		{"stripped character class", `a*b+c~d.e(f)g'h"i!j:k@l`, "abcdefghijkl"},
		{"french accents", "L'été à Paris", "lete-a-paris"},
		{"ligature", "Cœur de la ville", "coeur-de-la-ville"},
		{"collapses whitespace", "  Many   spaces\there ", "many-spaces-here"},
		{"keeps digits", "Top 10 Albums of 2024", "top-10-albums-of-2024"},
		{"existing hyphens", "Post-Rock -- a primer", "post-rock-a-primer"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
		{"no latin letters or digits", "日本語のタイトルですよね", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.title); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
