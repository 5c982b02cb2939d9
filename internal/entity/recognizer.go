// Package entity provides rule-based named-entity recognition for case text.
// It recognizes the three labels the extraction pipeline needs: organizations,
// persons, and dates. Recognition is heuristic; unrecognized spans are simply
// absent from the output.
package entity

import (
	"regexp"
	"sort"
	"strings"
)

// Label is a named-entity category.
type Label string

const (
	Org    Label = "ORG"
	Person Label = "PERSON"
	Date   Label = "DATE"
)

// Entity is a recognized span of text with its label and byte offsets.
type Entity struct {
	Text  string
	Label Label
	Start int
	End   int
}

const months = `January|February|March|April|May|June|July|August|September|October|November|December`

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:` + months + `)\s+\d{1,2},\s*\d{4}\b`),
	regexp.MustCompile(`\b\d{1,2}\s+(?:` + months + `)\s+\d{4}\b`),
	regexp.MustCompile(`\b(?:` + months + `)\s+\d{4}\b`),
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
}

// orgPattern matches a run of capitalized words ending in a corporate designator.
var orgPattern = regexp.MustCompile(
	`\b(?:[A-Z][\w&'-]*\.?\s+){1,5}` +
		`(?:Inc|Incorporated|Corp|Corporation|Company|Co|Ltd|Limited|LLC|LLP|PLC|GmbH|Group|Bank|Holdings|Partners|Industries|Enterprises|Technologies|Solutions)\.?`)

// titledPersonPattern matches an honorific followed by capitalized names.
var titledPersonPattern = regexp.MustCompile(
	`\b(?:Mr|Ms|Mrs|Dr|Hon|Judge|Justice)\.?\s+(?:[A-Z][a-z]+(?:\s+[A-Z]\.)?\s*){1,3}`)

// barePersonPattern matches two adjacent capitalized words. Kept conservative
// via the exclusion list below; single-document misses are acceptable.
var barePersonPattern = regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`)

// orgLeadingExclusions are capitalized words the org pattern may swallow at
// the front of a match but that are not part of the organization name.
var orgLeadingExclusions = map[string]bool{
	"Plaintiff": true, "Defendant": true, "Petitioner": true, "Respondent": true,
	"Appellant": true, "Appellee": true, "The": true, "A": true, "An": true,
}

// personExclusions are leading words that signal the match is not a name.
var personExclusions = map[string]bool{
	"The": true, "This": true, "That": true, "These": true, "Those": true,
	"United": true, "Supreme": true, "District": true, "Superior": true,
	"Commercial": true, "Federal": true, "High": true, "Court": true,
	"In": true, "On": true, "It": true, "Whereas": true, "Pursuant": true,
	"New": true, "North": true, "South": true, "East": true, "West": true,
}

// Recognize scans text and returns entities sorted by start offset.
// Organization matches take precedence over overlapping person matches.
func Recognize(text string) []Entity {
	var out []Entity

	orgSpans := make([][2]int, 0)
	for _, m := range orgPattern.FindAllStringIndex(text, -1) {
		start := trimOrgLeading(text, m[0], m[1])
		out = append(out, Entity{Text: strings.TrimSpace(text[start:m[1]]), Label: Org, Start: start, End: m[1]})
		orgSpans = append(orgSpans, [2]int{start, m[1]})
	}

	personSpans := make([][2]int, 0)
	for _, m := range titledPersonPattern.FindAllStringIndex(text, -1) {
		if overlapsAny(m[0], m[1], orgSpans) {
			continue
		}
		out = append(out, Entity{Text: strings.TrimSpace(text[m[0]:m[1]]), Label: Person, Start: m[0], End: m[1]})
		personSpans = append(personSpans, [2]int{m[0], m[1]})
	}
	for _, m := range barePersonPattern.FindAllStringIndex(text, -1) {
		if overlapsAny(m[0], m[1], orgSpans) || overlapsAny(m[0], m[1], personSpans) {
			continue
		}
		match := text[m[0]:m[1]]
		first := strings.Fields(match)[0]
		if personExclusions[first] {
			continue
		}
		out = append(out, Entity{Text: match, Label: Person, Start: m[0], End: m[1]})
	}

	for _, p := range datePatterns {
		for _, m := range p.FindAllStringIndex(text, -1) {
			if overlapsLabel(out, m[0], m[1], Date) {
				continue
			}
			out = append(out, Entity{Text: text[m[0]:m[1]], Label: Date, Start: m[0], End: m[1]})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}

// FilterLabel returns entities matching any of the given labels, preserving order.
func FilterLabel(entities []Entity, labels ...Label) []Entity {
	var out []Entity
	for _, e := range entities {
		for _, l := range labels {
			if e.Label == l {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// trimOrgLeading advances start past excluded leading words in an org match.
func trimOrgLeading(text string, start, end int) int {
	for {
		rest := text[start:end]
		fields := strings.Fields(rest)
		if len(fields) < 2 || !orgLeadingExclusions[fields[0]] {
			return start
		}
		start += strings.Index(rest, fields[0]) + len(fields[0])
		for start < end && text[start] == ' ' {
			start++
		}
	}
}

func overlapsAny(start, end int, spans [][2]int) bool {
	for _, s := range spans {
		if start < s[1] && end > s[0] {
			return true
		}
	}
	return false
}

func overlapsLabel(entities []Entity, start, end int, label Label) bool {
	for _, e := range entities {
		if e.Label == label && start < e.End && end > e.Start {
			return true
		}
	}
	return false
}
