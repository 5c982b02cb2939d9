package caseinfo

import (
	"github.com/hyperjump/youyaku/internal/models"
)

// contractRules groups sentences by contract element. Unlike the other
// tables this one is evaluated non-exclusively: a sentence matching several
// groups is appended to each of them.
var contractRules = RuleTable{
	{Label: "obligations", Terms: []string{"shall", "must", "obligat", "agrees to", "required to", "covenant"}},
	{Label: "breaches", Terms: []string{"breach", "violation", "failed to", "default"}},
	{Label: "remedies", Terms: []string{"damag", "remedy", "remedies", "compensat", "injunction", "specific performance", "restitution"}},
	{Label: "terms", Terms: []string{"term", "condition", "provision", "clause", "warrant"}},
}

// ExtractContractElements tests each sentence independently against the four
// contract keyword groups and appends it to every matching list, preserving
// document order.
func ExtractContractElements(sentences []string) *models.ContractElements {
	rec := &models.ContractElements{}
	for _, s := range sentences {
		for _, label := range contractRules.MatchAll(s) {
			switch label {
			case "obligations":
				rec.Obligations = append(rec.Obligations, s)
			case "breaches":
				rec.Breaches = append(rec.Breaches, s)
			case "remedies":
				rec.Remedies = append(rec.Remedies, s)
			case "terms":
				rec.Terms = append(rec.Terms, s)
			}
		}
	}
	return rec
}
