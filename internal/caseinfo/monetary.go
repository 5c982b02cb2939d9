package caseinfo

import (
	"regexp"

	"github.com/hyperjump/youyaku/internal/models"
)

// DefaultMonetaryWindow is the context window (bytes each side) used to
// categorize a currency match when no explicit size is configured.
const DefaultMonetaryWindow = 50

// moneyPattern matches a dollar amount: digits with optional comma-separated
// groups, optional cents, optional magnitude word. The leading run is not
// capped at three digits so comma-free amounts match in full.
var moneyPattern = regexp.MustCompile(`\$\d+(?:,\d{3})*(?:\.\d+)?(?:\s?(?:thousand|million|billion))?`)

// monetaryRules is the category priority order for currency matches:
// damage/compensation terms, then cost terms, then settlement terms.
var monetaryRules = RuleTable{
	{Label: "damages", Terms: []string{"damag", "compensat", "award"}},
	{Label: "costs", Terms: []string{"cost", "fee", "expense"}},
	{Label: "settlements", Terms: []string{"settl"}},
}

// ExtractMonetary finds currency amounts in text and categorizes each one by
// the keywords in a symmetric context window around the match. window <= 0
// uses DefaultMonetaryWindow. Matches are stored verbatim in document order;
// a value appearing twice is recorded twice.
func ExtractMonetary(text string, window int) *models.MonetaryRecord {
	if window <= 0 {
		window = DefaultMonetaryWindow
	}
	rec := &models.MonetaryRecord{}
	for _, m := range moneyPattern.FindAllStringIndex(text, -1) {
		value := text[m[0]:m[1]]
		ctx := contextWindow(text, m[0], m[1], window)
		switch monetaryRules.Classify(ctx, "other") {
		case "damages":
			rec.Damages = append(rec.Damages, value)
		case "costs":
			rec.Costs = append(rec.Costs, value)
		case "settlements":
			rec.Settlements = append(rec.Settlements, value)
		default:
			rec.Other = append(rec.Other, value)
		}
	}
	return rec
}
