// Package storage persists cases and their summaries.
package storage

import (
	"context"

	"github.com/hyperjump/youyaku/internal/models"
)

// Storage is the persistence interface for cases and summaries.
type Storage interface {
	CreateCase(ctx context.Context, c *models.Case) error
	GetCase(ctx context.Context, id string) (*models.Case, error)
	UpdateCase(ctx context.Context, c *models.Case) error
	DeleteCase(ctx context.Context, id string) error
	ListCases(ctx context.Context, offset, limit int) ([]*models.Case, error)

	CreateSummary(ctx context.Context, s *models.Summary) error
	GetSummary(ctx context.Context, id string) (*models.Summary, error)
	GetSummariesByCaseID(ctx context.Context, caseID string) ([]*models.Summary, error)
	ListSummaries(ctx context.Context, offset, limit int) ([]*models.Summary, error)
	DeleteSummariesByCaseID(ctx context.Context, caseID string) error

	CountCases(ctx context.Context) (int64, error)
	CountSummaries(ctx context.Context) (int64, error)

	Close() error
}
