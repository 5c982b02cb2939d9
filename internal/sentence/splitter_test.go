package sentence

import (
	"reflect"
	"testing"
)

func TestSplitBasic(t *testing.T) {
	text := "The court ruled. The defendant appealed! Was it granted?"
	got := Texts(Split(text))
	want := []string{"The court ruled.", "The defendant appealed!", "Was it granted?"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split: got %v, want %v", got, want)
	}
}

func TestSplitAbbreviations(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"case caption", "Meridian Co. v. Atlas Inc. brought this claim. It failed.", 2},
		{"honorific", "Mr. Smith testified. Dr. Jones agreed.", 2},
		{"middle initial", "John Q. Adams signed the contract.", 1},
		{"citation", "See Art. 5 of the agreement. It controls.", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text)
			if len(got) != tt.want {
				t.Errorf("Split(%q): got %d sentences %v, want %d", tt.text, len(got), Texts(got), tt.want)
			}
		})
	}
}

func TestSplitLowercaseContinuation(t *testing.T) {
	// A period followed by a lowercase word does not end the sentence.
	text := "The fee was approx. twenty percent of the total."
	got := Split(text)
	if len(got) != 1 {
		t.Fatalf("got %d sentences %v, want 1", len(got), Texts(got))
	}
}

func TestSplitSpans(t *testing.T) {
	text := "  First ruling.  Second ruling."
	got := Split(text)
	if len(got) != 2 {
		t.Fatalf("got %d sentences, want 2", len(got))
	}
	for i, s := range got {
		if text[s.Start:s.End] != s.Text {
			t.Errorf("sentence %d: span [%d,%d) = %q, text = %q", i, s.Start, s.End, text[s.Start:s.End], s.Text)
		}
	}
	if got[0].Text != "First ruling." {
		t.Errorf("first sentence: got %q", got[0].Text)
	}
}

func TestSplitTrailingFragment(t *testing.T) {
	text := "Complete sentence. Trailing fragment without period"
	got := Texts(Split(text))
	if len(got) != 2 || got[1] != "Trailing fragment without period" {
		t.Errorf("got %v", got)
	}
}

func TestSplitEmpty(t *testing.T) {
	if got := Split("   "); len(got) != 0 {
		t.Errorf("whitespace-only input: got %v, want none", got)
	}
}

func TestContains(t *testing.T) {
	s := Sentence{Text: "abc", Start: 10, End: 13}
	if !s.Contains(10, 13) || !s.Contains(11, 12) {
		t.Error("Contains should accept spans inside the sentence")
	}
	if s.Contains(9, 12) || s.Contains(11, 14) {
		t.Error("Contains should reject spans crossing the boundary")
	}
}

func TestSplitClosingQuote(t *testing.T) {
	text := `The witness said "it was late." The court agreed.`
	got := Texts(Split(text))
	if len(got) != 2 {
		t.Fatalf("got %d sentences %v, want 2", len(got), got)
	}
	if got[0] != `The witness said "it was late."` {
		t.Errorf("first sentence: got %q", got[0])
	}
}

func TestSplitAbbreviationBeforeClosingQuote(t *testing.T) {
	// An abbreviation period followed by a quote run must not end the
	// sentence, and the quote bytes must stay inside the span.
	text := `The filing named "Meridian Co." as lead plaintiff. It proceeded.`
	got := Split(text)
	if len(got) != 2 {
		t.Fatalf("got %d sentences %v, want 2", len(got), Texts(got))
	}
	if got[0].Text != `The filing named "Meridian Co." as lead plaintiff.` {
		t.Errorf("first sentence: got %q", got[0].Text)
	}
	for i, s := range got {
		if text[s.Start:s.End] != s.Text {
			t.Errorf("sentence %d: span [%d,%d) does not match text", i, s.Start, s.End)
		}
	}
}
