package models

// SummarizeMode selects which pipelines run for a summarize request.
type SummarizeMode string

const (
	ModeReport   SummarizeMode = "report"
	ModePipeline SummarizeMode = "pipeline"
	ModeBoth     SummarizeMode = "both"
)

// SummarizeRequest is the input for POST /api/v1/summarize.
type SummarizeRequest struct {
	Title string        `json:"title,omitempty"`
	Text  string        `json:"text"`
	Mode  SummarizeMode `json:"mode,omitempty"`
}

// SummarizeResponse is returned by POST /api/v1/summarize.
type SummarizeResponse struct {
	CaseID     string   `json:"case_id"`
	SummaryIDs []string `json:"summary_ids"`
	Report     string   `json:"report,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	TookMS     int64    `json:"took_ms"`
}

// SearchQuery is the input for POST /api/v1/search over archived summaries.
type SearchQuery struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// SearchResult is a single archive search hit.
type SearchResult struct {
	SummaryID string  `json:"summary_id"`
	CaseID    string  `json:"case_id"`
	Kind      string  `json:"kind"`
	Score     float64 `json:"score"`
	Snippet   string  `json:"snippet,omitempty"`
}

// SearchResponse is returned by POST /api/v1/search.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
	TookMS  int64          `json:"took_ms"`
}
