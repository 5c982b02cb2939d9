// Package service orchestrates case ingestion: extraction reports, pipeline
// summaries, persistence, and the summary archive.
package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/youyaku/internal/archive"
	"github.com/hyperjump/youyaku/internal/ingest"
	"github.com/hyperjump/youyaku/internal/models"
	"github.com/hyperjump/youyaku/internal/pipeline"
	"github.com/hyperjump/youyaku/internal/report"
	"github.com/hyperjump/youyaku/internal/storage"
)

// Service ties the extractors, the pipeline, storage, and the archive
// together behind the operations the API and CLI expose.
type Service struct {
	storage    storage.Storage
	archive    *archive.Archive
	pipeline   *pipeline.Pipeline
	reader     *ingest.Reader
	reportOpts report.Options
	logger     *zap.Logger
}

// New creates a service. pipeline may be nil; pipeline-mode requests then
// fail with an error while report mode keeps working.
func New(st storage.Storage, ar *archive.Archive, pl *pipeline.Pipeline, reportOpts report.Options, logger *zap.Logger) *Service {
	return &Service{
		storage:    st,
		archive:    ar,
		pipeline:   pl,
		reader:     ingest.NewReader(),
		reportOpts: reportOpts,
		logger:     logger,
	}
}

// Summarize stores text as a new case and generates the summaries selected
// by mode. Empty mode defaults to report.
func (s *Service) Summarize(ctx context.Context, title, text string, mode models.SummarizeMode) (*models.SummarizeResponse, error) {
	start := time.Now()
	if mode == "" {
		mode = models.ModeReport
	}

	c := &models.Case{ID: uuid.New().String(), Title: title, Content: text}
	if err := s.storage.CreateCase(ctx, c); err != nil {
		return nil, fmt.Errorf("store case: %w", err)
	}

	resp := &models.SummarizeResponse{CaseID: c.ID}

	if mode == models.ModeReport || mode == models.ModeBoth {
		rep, err := report.Build(text, s.reportOpts)
		if err != nil {
			return nil, err
		}
		rendered := rep.Render()
		if err := s.saveSummary(ctx, c.ID, models.KindReport, rendered, resp); err != nil {
			return nil, err
		}
		resp.Report = rendered
	}

	if mode == models.ModePipeline || mode == models.ModeBoth {
		if s.pipeline == nil {
			return nil, fmt.Errorf("pipeline summarizer not configured")
		}
		sum, err := s.pipeline.Summarize(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("pipeline summarize: %w", err)
		}
		if err := s.saveSummary(ctx, c.ID, models.KindPipeline, sum, resp); err != nil {
			return nil, err
		}
		resp.Summary = sum
	}

	resp.TookMS = time.Since(start).Milliseconds()
	return resp, nil
}

func (s *Service) saveSummary(ctx context.Context, caseID string, kind models.SummaryKind, content string, resp *models.SummarizeResponse) error {
	sum := &models.Summary{
		ID:      uuid.New().String(),
		CaseID:  caseID,
		Kind:    kind,
		Content: content,
	}
	if err := s.storage.CreateSummary(ctx, sum); err != nil {
		return fmt.Errorf("store %s summary: %w", kind, err)
	}
	if err := s.archive.Index(ctx, sum); err != nil {
		return fmt.Errorf("index %s summary: %w", kind, err)
	}
	resp.SummaryIDs = append(resp.SummaryIDs, sum.ID)
	return nil
}

// IngestFile extracts text from the file at path and summarizes it in report
// mode. The file name becomes the case title.
func (s *Service) IngestFile(ctx context.Context, path string) (*models.SummarizeResponse, error) {
	text, err := s.reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", path, err)
	}
	title := filepath.Base(path)
	resp, err := s.Summarize(ctx, title, text, models.ModeReport)
	if err != nil {
		return nil, err
	}
	s.logger.Info("ingested case file",
		zap.String("path", path),
		zap.String("case_id", resp.CaseID))
	return resp, nil
}

// Search queries the summary archive.
func (s *Service) Search(ctx context.Context, q *models.SearchQuery) (*models.SearchResponse, error) {
	start := time.Now()
	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}
	hits, err := s.archive.Search(ctx, q.Query, limit)
	if err != nil {
		return nil, err
	}
	resp := &models.SearchResponse{
		Results: make([]models.SearchResult, len(hits)),
		Total:   len(hits),
	}
	for i, h := range hits {
		resp.Results[i] = *h
	}
	resp.TookMS = time.Since(start).Milliseconds()
	return resp, nil
}

// GetSummary returns a stored summary by ID.
func (s *Service) GetSummary(ctx context.Context, id string) (*models.Summary, error) {
	return s.storage.GetSummary(ctx, id)
}

// GetCase returns a stored case by ID.
func (s *Service) GetCase(ctx context.Context, id string) (*models.Case, error) {
	return s.storage.GetCase(ctx, id)
}

// ListSummaries returns stored summaries, newest first.
func (s *Service) ListSummaries(ctx context.Context, offset, limit int) ([]*models.Summary, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.storage.ListSummaries(ctx, offset, limit)
}

// Status reports stored case and summary counts plus the archive size.
func (s *Service) Status(ctx context.Context) (map[string]interface{}, error) {
	cases, err := s.storage.CountCases(ctx)
	if err != nil {
		return nil, err
	}
	summaries, err := s.storage.CountSummaries(ctx)
	if err != nil {
		return nil, err
	}
	indexed, err := s.archive.Count()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"cases":             cases,
		"summaries":         summaries,
		"indexed_summaries": indexed,
	}, nil
}
