// Package report assembles extraction results into a structured text report.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hyperjump/youyaku/internal/caseinfo"
	"github.com/hyperjump/youyaku/internal/entity"
	"github.com/hyperjump/youyaku/internal/models"
	"github.com/hyperjump/youyaku/internal/outcome"
	"github.com/hyperjump/youyaku/internal/sentence"
)

// ErrEmptyDocument is returned when the input contains no text.
var ErrEmptyDocument = errors.New("empty document")

// BuildError wraps a failure in a named assembly stage so callers can
// distinguish extraction failures from legitimately empty sections.
type BuildError struct {
	Stage string
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("report %s: %v", e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Options controls the extraction context windows. Zero values use the
// caseinfo defaults (50 bytes monetary, 20 bytes party).
type Options struct {
	MonetaryWindow int
	PartyWindow    int
}

// maxElementSentences caps how many sentences are rendered per contract
// element category.
const maxElementSentences = 3

// Report holds all extraction records for one case document. Records are
// derived freshly per Build call; nothing is cached between documents.
type Report struct {
	Parties  *models.PartyRecord
	KeyDates models.KeyDates
	Monetary *models.MonetaryRecord
	Contract *models.ContractElements
	Outcome  *models.Outcome
}

// Build runs every extractor over text and returns the assembled report.
// Each extractor scans the full document independently.
func Build(text string, opts Options) (*Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &BuildError{Stage: "input", Err: ErrEmptyDocument}
	}
	sentences := sentence.Split(text)
	entities := entity.Recognize(text)
	texts := sentence.Texts(sentences)
	return &Report{
		Parties:  caseinfo.ExtractParties(text, entities, opts.PartyWindow),
		KeyDates: caseinfo.ExtractKeyDates(sentences, entities),
		Monetary: caseinfo.ExtractMonetary(text, opts.MonetaryWindow),
		Contract: caseinfo.ExtractContractElements(texts),
		Outcome:  outcome.Analyze(texts),
	}, nil
}

// BuildString is the legacy convenience form: any build error is converted
// to a human-readable string returned in place of the report.
func BuildString(text string, opts Options) string {
	r, err := Build(text, opts)
	if err != nil {
		return "Error generating summary: " + err.Error()
	}
	return r.Render()
}

// dateLabelTitles maps key-date labels to their report headings.
var dateLabelTitles = map[models.DateLabel]string{
	models.DateCaseFiling: "Case Filing",
	models.DateContract:   "Contract Date",
	models.DateBreach:     "Breach Date",
	models.DateJudgment:   "Judgment Date",
}

// Render produces the plain-text report with fixed section order: PARTIES
// INVOLVED, KEY DATES, MONETARY ASPECTS, KEY CONTRACT ELEMENTS, then CASE
// OUTCOME. Sections with no data are omitted entirely; contract element
// categories render at most their first three sentences.
func (r *Report) Render() string {
	var b strings.Builder
	b.WriteString("COMMERCIAL CASE SUMMARY\n")
	b.WriteString("=======================\n")

	if !r.Parties.Empty() {
		b.WriteString("\nPARTIES INVOLVED:\n")
		writeNameLine(&b, "Plaintiffs", r.Parties.Plaintiffs)
		writeNameLine(&b, "Defendants", r.Parties.Defendants)
		writeNameLine(&b, "Other Parties", r.Parties.OtherParties)
	}

	if len(r.KeyDates) > 0 {
		b.WriteString("\nKEY DATES:\n")
		for _, label := range models.DateLabels {
			if m, ok := r.KeyDates[label]; ok {
				fmt.Fprintf(&b, "  %s: %s\n", dateLabelTitles[label], m.Date)
			}
		}
	}

	if !r.Monetary.Empty() {
		b.WriteString("\nMONETARY ASPECTS:\n")
		writeNameLine(&b, "Damages", r.Monetary.Damages)
		writeNameLine(&b, "Costs", r.Monetary.Costs)
		writeNameLine(&b, "Settlements", r.Monetary.Settlements)
		writeNameLine(&b, "Other", r.Monetary.Other)
	}

	if !r.Contract.Empty() {
		b.WriteString("\nKEY CONTRACT ELEMENTS:\n")
		writeElementBlock(&b, "Obligations", r.Contract.Obligations)
		writeElementBlock(&b, "Breaches", r.Contract.Breaches)
		writeElementBlock(&b, "Remedies", r.Contract.Remedies)
		writeElementBlock(&b, "Terms", r.Contract.Terms)
	}

	if !r.Outcome.Empty() {
		b.WriteString("\nCASE OUTCOME:\n")
		if r.Outcome.Decision != "" {
			fmt.Fprintf(&b, "  Decision: %s\n", r.Outcome.Decision)
		}
		if r.Outcome.DamagesAwarded != "" {
			fmt.Fprintf(&b, "  Damages Awarded: %s\n", r.Outcome.DamagesAwarded)
		}
		writeElementBlock(&b, "Reasoning", r.Outcome.Reasoning)
		writeElementBlock(&b, "Key Findings", r.Outcome.KeyFindings)
	}

	return b.String()
}

func writeNameLine(b *strings.Builder, title string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s: %s\n", title, strings.Join(values, ", "))
}

func writeElementBlock(b *strings.Builder, title string, sentences []string) {
	if len(sentences) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s:\n", title)
	for i, s := range sentences {
		if i >= maxElementSentences {
			break
		}
		fmt.Fprintf(b, "    - %s\n", s)
	}
}
