// Package archive maintains a full-text index over generated summaries so
// past case summaries can be searched by keyword.
package archive

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"

	"github.com/hyperjump/youyaku/internal/models"
)

// snippetLen caps the snippet returned with each search hit.
const snippetLen = 200

// indexedSummary is the document shape stored in the index.
type indexedSummary struct {
	CaseID  string `json:"case_id"`
	Kind    string `json:"kind"`
	Content string `json:"content"`
}

// Archive is a Bleve-backed summary index.
type Archive struct {
	index bleve.Index
}

// Open creates or opens the summary index at path. An existing index is
// reused; delete the directory to force a rebuild after a mapping change.
func Open(path string) (*Archive, error) {
	if _, err := os.Stat(path); err == nil {
		index, openErr := bleve.Open(path)
		if openErr != nil {
			return nil, fmt.Errorf("failed to open summary index: %w", openErr)
		}
		return &Archive{index: index}, nil
	}

	im := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()
	textFieldMapping := bleve.NewTextFieldMapping()
	// Standard analyzer: lowercase and tokenize without stemming, so legal
	// terms like "damages" match exactly as typed.
	textFieldMapping.Analyzer = standard.Name
	docMapping.AddFieldMappingsAt("content", textFieldMapping)
	keywordFieldMapping := bleve.NewKeywordFieldMapping()
	docMapping.AddFieldMappingsAt("case_id", keywordFieldMapping)
	docMapping.AddFieldMappingsAt("kind", keywordFieldMapping)
	im.AddDocumentMapping("summary", docMapping)
	im.DefaultType = "summary"
	im.DefaultMapping = docMapping

	index, err := bleve.New(path, im)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary index: %w", err)
	}
	return &Archive{index: index}, nil
}

// Index adds or replaces a summary in the index.
func (a *Archive) Index(ctx context.Context, sum *models.Summary) error {
	return a.index.Index(sum.ID, indexedSummary{
		CaseID:  sum.CaseID,
		Kind:    string(sum.Kind),
		Content: sum.Content,
	})
}

// Delete removes a summary from the index.
func (a *Archive) Delete(ctx context.Context, id string) error {
	return a.index.Delete(id)
}

// Search runs a match query over summary content and returns up to limit
// results with stored fields and a content snippet.
func (a *Archive) Search(ctx context.Context, query string, limit int) ([]*models.SearchResult, error) {
	q := bleve.NewMatchQuery(query)
	q.SetField("content")
	req := bleve.NewSearchRequest(q)
	req.Size = limit
	req.Fields = []string{"case_id", "kind", "content"}

	results, err := a.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("summary search failed: %w", err)
	}

	out := make([]*models.SearchResult, len(results.Hits))
	for i, hit := range results.Hits {
		r := &models.SearchResult{SummaryID: hit.ID, Score: hit.Score}
		if v, ok := hit.Fields["case_id"].(string); ok {
			r.CaseID = v
		}
		if v, ok := hit.Fields["kind"].(string); ok {
			r.Kind = v
		}
		if v, ok := hit.Fields["content"].(string); ok {
			r.Snippet = snippet(v, query)
		}
		out[i] = r
	}
	return out, nil
}

// Count returns the number of indexed summaries.
func (a *Archive) Count() (uint64, error) {
	return a.index.DocCount()
}

// Close closes the underlying index.
func (a *Archive) Close() error {
	return a.index.Close()
}

// snippet returns the region of content around the first query term, or the
// head of the content when no term is found.
func snippet(content, query string) string {
	lower := strings.ToLower(content)
	pos := -1
	for _, term := range strings.Fields(strings.ToLower(query)) {
		if i := strings.Index(lower, term); i >= 0 && (pos < 0 || i < pos) {
			pos = i
		}
	}
	start := 0
	if pos > snippetLen/2 {
		start = pos - snippetLen/2
	}
	end := start + snippetLen
	if end > len(content) {
		end = len(content)
	}
	s := strings.TrimSpace(content[start:end])
	if start > 0 {
		s = "..." + s
	}
	if end < len(content) {
		s += "..."
	}
	return s
}
