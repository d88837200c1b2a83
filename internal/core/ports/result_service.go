package ports

import (
	"context"

	"github.com/campusboard/result-api/internal/core/domain"
)

// ResultRow is a single uploaded row before it is stamped with class and
// uploader metadata.
type ResultRow struct {
	StudentName string
	Grade       float64
	Outcome     string
}

// ResultBatchInput is one uploaded sheet as it travels through the ingest
// dispatcher.
type ResultBatchInput struct {
	ClassKey   string
	UploadedBy string
	Rows       []ResultRow
}

type ResultService interface {
	IngestBatch(ctx context.Context, in ResultBatchInput) error
	Summary(ctx context.Context, classKey string) (*domain.ResultSummary, error)
	TopStudents(ctx context.Context, classKey string, limit int) ([]domain.ResultEntry, error)
	StudentResults(ctx context.Context, classKey, studentName string) ([]domain.ResultEntry, error)
}
