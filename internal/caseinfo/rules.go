// Package caseinfo extracts structured commercial-case information from raw
// case text: monetary values, parties, key dates, and contract elements.
// Classification is keyword-driven over small context windows; entities with
// no matching keyword stay unclassified.
package caseinfo

import "strings"

// Rule associates a label with the keyword terms that select it. Terms are
// matched as lowercase substrings.
type Rule struct {
	Label string
	Terms []string
}

// RuleTable is an ordered rule list evaluated first-match-wins, making the
// tie-break policy explicit and testable in isolation.
type RuleTable []Rule

// Classify returns the label of the first rule with a term contained in
// window, or fallback when no rule matches. Matching is case-insensitive.
func (t RuleTable) Classify(window, fallback string) string {
	w := strings.ToLower(window)
	for _, r := range t {
		for _, term := range r.Terms {
			if strings.Contains(w, term) {
				return r.Label
			}
		}
	}
	return fallback
}

// MatchAll returns the labels of every rule with a term contained in window,
// in table order. Used for non-exclusive classification.
func (t RuleTable) MatchAll(window string) []string {
	w := strings.ToLower(window)
	var labels []string
	for _, r := range t {
		for _, term := range r.Terms {
			if strings.Contains(w, term) {
				labels = append(labels, r.Label)
				break
			}
		}
	}
	return labels
}

// contextWindow returns the text in a symmetric window of n bytes around the
// span [start, end), clamped to the text bounds.
func contextWindow(text string, start, end, n int) string {
	lo := start - n
	if lo < 0 {
		lo = 0
	}
	hi := end + n
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}
