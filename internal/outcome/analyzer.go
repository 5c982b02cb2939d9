// Package outcome analyzes the judgment section of case text.
package outcome

import (
	"strings"

	"github.com/hyperjump/youyaku/internal/models"
)

// triggerPhrases switch the analyzer into the judgment section. The switch
// is irreversible; nothing is recorded before the first trigger sentence.
var triggerPhrases = []string{"court finds", "court concludes", "it is ordered"}

var (
	decisionTerms  = []string{"grant", "deni", "deny", "dismiss"}
	reasoningTerms = []string{"because", "therefore", "since", "consequently", "accordingly", "as a result"}
	findingTerms   = []string{"finds", "found", "holds", "held", "determines", "determined", "concludes", "concluded"}
)

type state int

const (
	scanning state = iota
	inJudgment
)

// Analyze runs a linear scan over sentences. Before a trigger sentence the
// analyzer only scans; once in the judgment section each subsequent sentence
// is classified by priority: decision keywords (overwriting any prior
// decision), the "damages" substring (overwriting prior damages), reasoning
// connectives (appended), then finding verbs (appended). There is no
// terminal state; analysis ends at the last sentence.
func Analyze(sentences []string) *models.Outcome {
	out := &models.Outcome{}
	st := scanning
	for _, s := range sentences {
		lower := strings.ToLower(s)
		if st == scanning {
			if containsAny(lower, triggerPhrases) {
				st = inJudgment
			}
			continue
		}
		switch {
		case containsAny(lower, decisionTerms):
			out.Decision = s
		case strings.Contains(lower, "damages"):
			out.DamagesAwarded = s
		case containsAny(lower, reasoningTerms):
			out.Reasoning = append(out.Reasoning, s)
		case containsAny(lower, findingTerms):
			out.KeyFindings = append(out.KeyFindings, s)
		}
	}
	return out
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
