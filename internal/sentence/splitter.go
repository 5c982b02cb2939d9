// Package sentence provides sentence segmentation with byte spans.
package sentence

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentence is a segmented sentence with its byte span in the source text.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// Contains reports whether the span [start, end) falls inside the sentence span.
func (s *Sentence) Contains(start, end int) bool {
	return start >= s.Start && end <= s.End
}

// abbreviations that end with a period but do not terminate a sentence.
// Lowercased, without the trailing period. Covers the forms common in
// case text (citations, honorifics, corporate designators).
var abbreviations = map[string]bool{
	"v": true, "vs": true, "no": true, "nos": true, "art": true, "sec": true,
	"inc": true, "co": true, "corp": true, "ltd": true, "llc": true, "llp": true,
	"mr": true, "ms": true, "mrs": true, "dr": true, "hon": true, "jr": true, "sr": true,
	"etc": true, "cf": true, "al": true, "approx": true, "st": true,
}

// Split segments text into sentences. A sentence ends at '.', '!' or '?'
// followed by whitespace, unless the period closes a known abbreviation or
// the next word starts lowercase. Spans are byte offsets into text with
// surrounding whitespace trimmed.
func Split(text string) []Sentence {
	var out []Sentence
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		end := i + 1
		for end < len(text) && (text[end] == '"' || text[end] == '\'' || text[end] == ')') {
			end++
		}
		if end < len(text) && !isSpace(text[end]) {
			i = end - 1
			continue
		}
		if c == '.' && isAbbreviation(text[:i]) {
			i = end - 1
			continue
		}
		if next, ok := nextRune(text, end); ok && unicode.IsLower(next) {
			i = end - 1
			continue
		}
		if s, ok := trimSpan(text, start, end); ok {
			out = append(out, s)
		}
		start = end
		i = end - 1
	}
	if s, ok := trimSpan(text, start, len(text)); ok {
		out = append(out, s)
	}
	return out
}

// Texts returns just the sentence strings, in document order.
func Texts(sentences []Sentence) []string {
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = s.Text
	}
	return out
}

// trimSpan trims whitespace from the span [start, end) and returns the
// resulting sentence. ok is false when the span is empty after trimming.
func trimSpan(text string, start, end int) (Sentence, bool) {
	for start < end && isSpace(text[start]) {
		start++
	}
	for end > start && isSpace(text[end-1]) {
		end--
	}
	if start >= end {
		return Sentence{}, false
	}
	return Sentence{Text: text[start:end], Start: start, End: end}, true
}

// isAbbreviation reports whether the text before a period ends in a known
// abbreviation or a single capital letter (a middle initial).
func isAbbreviation(before string) bool {
	j := len(before)
	for j > 0 && isLetterByte(before[j-1]) {
		j--
	}
	word := before[j:]
	if word == "" {
		return false
	}
	if len(word) == 1 && word[0] >= 'A' && word[0] <= 'Z' {
		return true
	}
	return abbreviations[strings.ToLower(word)]
}

func nextRune(text string, i int) (rune, bool) {
	for i < len(text) && isSpace(text[i]) {
		i++
	}
	if i >= len(text) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return r, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isLetterByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
