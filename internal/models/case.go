// Package models defines core data structures for cases, extraction records, and summaries.
package models

import "time"

// Case represents a stored commercial-legal case document.
type Case struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SummaryKind identifies which pipeline produced a summary.
type SummaryKind string

const (
	// KindReport is the structured extraction report.
	KindReport SummaryKind = "report"
	// KindPipeline is the extractive+abstractive summary.
	KindPipeline SummaryKind = "pipeline"
)

// Summary is a generated summary stored in the archive.
type Summary struct {
	ID        string      `json:"id" db:"id"`
	CaseID    string      `json:"case_id" db:"case_id"`
	Kind      SummaryKind `json:"kind" db:"kind"`
	Content   string      `json:"content" db:"content"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

// MonetaryRecord holds matched currency strings grouped by category.
// Within each category the order is document order; values are stored
// verbatim and are not deduplicated across categories.
type MonetaryRecord struct {
	Damages     []string `json:"damages,omitempty"`
	Costs       []string `json:"costs,omitempty"`
	Settlements []string `json:"settlements,omitempty"`
	Other       []string `json:"other,omitempty"`
}

// Empty reports whether no monetary values were found in any category.
func (m *MonetaryRecord) Empty() bool {
	return len(m.Damages) == 0 && len(m.Costs) == 0 && len(m.Settlements) == 0 && len(m.Other) == 0
}

// PartyRecord holds deduplicated party names classified by litigation role.
// Order within each list is unspecified (set semantics).
type PartyRecord struct {
	Plaintiffs   []string `json:"plaintiffs,omitempty"`
	Defendants   []string `json:"defendants,omitempty"`
	OtherParties []string `json:"other_parties,omitempty"`
}

// Empty reports whether no parties were found.
func (p *PartyRecord) Empty() bool {
	return len(p.Plaintiffs) == 0 && len(p.Defendants) == 0 && len(p.OtherParties) == 0
}

// DateLabel identifies a key event a date is associated with.
type DateLabel string

const (
	DateCaseFiling DateLabel = "case_filing"
	DateContract   DateLabel = "contract_date"
	DateBreach     DateLabel = "breach_date"
	DateJudgment   DateLabel = "judgment_date"
)

// DateLabels lists all key-date labels in report order.
var DateLabels = []DateLabel{DateCaseFiling, DateContract, DateBreach, DateJudgment}

// DateMention is a matched date together with the sentence containing it.
type DateMention struct {
	Date     string `json:"date"`
	Sentence string `json:"sentence"`
}

// KeyDates maps event labels to their date mention. At most one entry per
// label is kept; a later qualifying mention overwrites an earlier one.
type KeyDates map[DateLabel]DateMention

// ContractElements holds sentences matching contract-related keyword groups.
// A sentence may appear in more than one list; order is document order.
type ContractElements struct {
	Obligations []string `json:"obligations,omitempty"`
	Breaches    []string `json:"breaches,omitempty"`
	Remedies    []string `json:"remedies,omitempty"`
	Terms       []string `json:"terms,omitempty"`
}

// Empty reports whether no contract elements were found.
func (c *ContractElements) Empty() bool {
	return len(c.Obligations) == 0 && len(c.Breaches) == 0 && len(c.Remedies) == 0 && len(c.Terms) == 0
}

// Outcome holds the judgment-section analysis result. Decision and
// DamagesAwarded are single slots (later matches overwrite); Reasoning and
// KeyFindings are append-only ordered lists. All fields stay empty until a
// judgment trigger sentence is seen.
type Outcome struct {
	Decision       string   `json:"decision,omitempty"`
	DamagesAwarded string   `json:"damages_awarded,omitempty"`
	Reasoning      []string `json:"reasoning,omitempty"`
	KeyFindings    []string `json:"key_findings,omitempty"`
}

// Empty reports whether the outcome record is unpopulated.
func (o *Outcome) Empty() bool {
	return o.Decision == "" && o.DamagesAwarded == "" && len(o.Reasoning) == 0 && len(o.KeyFindings) == 0
}
