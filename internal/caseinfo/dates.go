package caseinfo

import (
	"github.com/hyperjump/youyaku/internal/entity"
	"github.com/hyperjump/youyaku/internal/models"
	"github.com/hyperjump/youyaku/internal/sentence"
)

// dateRules classifies the sentence containing a date entity. Groups are
// disjoint by priority: filing terms win over contract terms, and so on.
// A sentence yields at most one label per entity.
var dateRules = RuleTable{
	{Label: string(models.DateCaseFiling), Terms: []string{"filed", "filing", "commenced", "complaint"}},
	{Label: string(models.DateContract), Terms: []string{"contract", "agreement", "executed", "entered into"}},
	{Label: string(models.DateBreach), Terms: []string{"breach", "violation", "default", "failed to"}},
	{Label: string(models.DateJudgment), Terms: []string{"judgment", "judgement", "ruled", "ordered", "decision", "decree"}},
}

// ExtractKeyDates maps date entities to key case events. For each DATE
// entity the first sentence whose span contains the entity span is
// classified; dates outside any sentence are skipped. At most one mention is
// kept per label: a later qualifying date overwrites an earlier one.
func ExtractKeyDates(sentences []sentence.Sentence, entities []entity.Entity) models.KeyDates {
	dates := make(models.KeyDates)
	for _, e := range entity.FilterLabel(entities, entity.Date) {
		var enclosing *sentence.Sentence
		for i := range sentences {
			if sentences[i].Contains(e.Start, e.End) {
				enclosing = &sentences[i]
				break
			}
		}
		if enclosing == nil {
			continue
		}
		label := dateRules.Classify(enclosing.Text, "")
		if label == "" {
			continue
		}
		dates[models.DateLabel(label)] = models.DateMention{Date: e.Text, Sentence: enclosing.Text}
	}
	return dates
}
