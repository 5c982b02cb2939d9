package caseinfo

import (
	"sort"

	"github.com/hyperjump/youyaku/internal/entity"
	"github.com/hyperjump/youyaku/internal/models"
)

// DefaultPartyWindow is the context window (bytes each side) used to classify
// a party entity when no explicit size is configured.
const DefaultPartyWindow = 20

// partyRules is the role priority order: a window mentioning both roles
// classifies as plaintiff.
var partyRules = RuleTable{
	{Label: "plaintiffs", Terms: []string{"plaintiff"}},
	{Label: "defendants", Terms: []string{"defendant"}},
}

// ExtractParties classifies organization and person entities by litigation
// role using the context window around each entity span. Names are
// deduplicated within each role; output lists are sorted for determinism
// (set semantics, no document order promised). window <= 0 uses
// DefaultPartyWindow.
func ExtractParties(text string, entities []entity.Entity, window int) *models.PartyRecord {
	if window <= 0 {
		window = DefaultPartyWindow
	}
	sets := map[string]map[string]bool{
		"plaintiffs": {},
		"defendants": {},
		"other":      {},
	}
	for _, e := range entity.FilterLabel(entities, entity.Org, entity.Person) {
		ctx := contextWindow(text, e.Start, e.End, window)
		role := partyRules.Classify(ctx, "other")
		sets[role][e.Text] = true
	}
	return &models.PartyRecord{
		Plaintiffs:   sortedKeys(sets["plaintiffs"]),
		Defendants:   sortedKeys(sets["defendants"]),
		OtherParties: sortedKeys(sets["other"]),
	}
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
