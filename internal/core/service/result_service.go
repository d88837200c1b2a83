package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusboard/result-api/internal/core/domain"
	"github.com/campusboard/result-api/internal/core/ports"
)

type resultService struct {
	repo  ports.ResultRepository
	cache ports.SummaryCache
	log   zerolog.Logger
}

// NewResultService returns a ResultService backed by the given repository and
// summary cache.
func NewResultService(repo ports.ResultRepository, cache ports.SummaryCache, log zerolog.Logger) ports.ResultService {
	return &resultService{repo: repo, cache: cache, log: log}
}

// IngestBatch validates and persists one uploaded result sheet, then drops
// any cached summary for the class so the next read recomputes it.
func (s *resultService) IngestBatch(ctx context.Context, in ports.ResultBatchInput) error {
	if in.ClassKey == "" || len(in.Rows) == 0 {
		return domain.ErrEmptyBatch
	}

	now := time.Now().UTC()
	entries := make([]domain.ResultEntry, 0, len(in.Rows))
	for i, row := range in.Rows {
		outcome := domain.Outcome(strings.ToUpper(row.Outcome))
		if !outcome.Valid() {
			return fmt.Errorf("row %d: %w: %q", i, domain.ErrInvalidOutcome, row.Outcome)
		}
		if strings.TrimSpace(row.StudentName) == "" {
			return fmt.Errorf("row %d: %w: missing student name", i, domain.ErrInvalidEntry)
		}
		entries = append(entries, domain.ResultEntry{
			ClassKey:    in.ClassKey,
			StudentName: strings.TrimSpace(row.StudentName),
			Grade:       row.Grade,
			Outcome:     outcome,
			UploadedBy:  in.UploadedBy,
			UploadedAt:  now,
		})
	}

	if err := s.repo.InsertBatch(ctx, entries); err != nil {
		return fmt.Errorf("ingest batch: %w", err)
	}

	// Stale summaries are worse than a recompute; a failed invalidation only
	// delays freshness until the TTL expires.
	if err := s.cache.Invalidate(ctx, in.ClassKey); err != nil {
		s.log.Warn().Err(err).Str("class", in.ClassKey).Msg("summary cache invalidation failed")
	}

	s.log.Info().
		Str("class", in.ClassKey).
		Str("uploaded_by", in.UploadedBy).
		Int("rows", len(entries)).
		Msg("result batch ingested")

	return nil
}

// Summary returns the aggregate for a class, read through the cache.
func (s *resultService) Summary(ctx context.Context, classKey string) (*domain.ResultSummary, error) {
	if cached, err := s.cache.Get(ctx, classKey); err != nil {
		s.log.Warn().Err(err).Str("class", classKey).Msg("summary cache read failed, falling back to store")
	} else if cached != nil {
		return cached, nil
	}

	summary, err := s.repo.Summary(ctx, classKey)
	if err != nil {
		if errors.Is(err, domain.ErrClassNotFound) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("summary %q: %w", classKey, err)
	}

	if err := s.cache.Set(ctx, summary); err != nil {
		s.log.Warn().Err(err).Str("class", classKey).Msg("summary cache write failed")
	}
	return summary, nil
}

func (s *resultService) TopStudents(ctx context.Context, classKey string, limit int) ([]domain.ResultEntry, error) {
	if limit <= 0 {
		limit = 5
	}
	entries, err := s.repo.TopStudents(ctx, classKey, limit)
	if err != nil {
		return nil, fmt.Errorf("top students %q: %w", classKey, err)
	}
	return entries, nil
}

func (s *resultService) StudentResults(ctx context.Context, classKey, studentName string) ([]domain.ResultEntry, error) {
	entries, err := s.repo.FindByStudent(ctx, classKey, studentName)
	if err != nil {
		return nil, fmt.Errorf("student results %q/%q: %w", classKey, studentName, err)
	}
	return entries, nil
}
