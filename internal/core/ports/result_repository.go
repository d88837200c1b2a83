package ports

import (
	"context"

	"github.com/campusboard/result-api/internal/core/domain"
)

// ResultRepository is the persistence boundary for published result sheets.
type ResultRepository interface {
	InsertBatch(ctx context.Context, entries []domain.ResultEntry) error
	// FindByStudent matches studentName case-insensitively within a class.
	FindByStudent(ctx context.Context, classKey, studentName string) ([]domain.ResultEntry, error)
	// Summary returns domain.ErrClassNotFound when the class has no rows.
	Summary(ctx context.Context, classKey string) (*domain.ResultSummary, error)
	TopStudents(ctx context.Context, classKey string, limit int) ([]domain.ResultEntry, error)
}

// SummaryCache fronts Summary computations. Get returns (nil, nil) on a miss.
type SummaryCache interface {
	Get(ctx context.Context, classKey string) (*domain.ResultSummary, error)
	Set(ctx context.Context, summary *domain.ResultSummary) error
	Invalidate(ctx context.Context, classKey string) error
}
