package processor

import "testing"

func TestHTMLProcessor_PlainText(t *testing.T) {
	p := NewHTMLProcessor()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bold highlight", "<b>hello</b> there", "hello there"},
		{"nested markup", "say <b><i>hello</i></b> to her", "say hello to her"},
		{"entities", "it&#39;s <b>hello</b> &amp; goodbye", "it's hello & goodbye"},
		{"no markup", "hello   there", "hello there"},
		{"line break", "hello<br>there", "hello there"},
		{"script dropped", "hello<script>alert(1)</script> there", "hello there"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.PlainText(tt.input)
			if err != nil {
				t.Fatalf("PlainText failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHTMLProcessor_CustomIgnoredTags(t *testing.T) {
	p := NewHTMLProcessorWithIgnoredTags([]string{"SMALL"})

	got, err := p.PlainText("hello <small>(informal)</small> there")
	if err != nil {
		t.Fatalf("PlainText failed: %v", err)
	}
	if got != "hello there" {
		t.Errorf("got %q", got)
	}

	// Default ignored tags no longer apply
	got, _ = p.PlainText("a<style>b</style>c")
	if got != "abc" {
		t.Errorf("got %q", got)
	}
}
