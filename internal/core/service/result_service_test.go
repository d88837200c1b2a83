package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campusboard/result-api/internal/core/domain"
	"github.com/campusboard/result-api/internal/core/ports"
)

type stubResultRepo struct {
	inserted  []domain.ResultEntry
	insertErr error
	summary   *domain.ResultSummary
	top       []domain.ResultEntry
	topLimit  int
	byStudent []domain.ResultEntry
}

func (r *stubResultRepo) InsertBatch(_ context.Context, entries []domain.ResultEntry) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, entries...)
	return nil
}

func (r *stubResultRepo) FindByStudent(_ context.Context, _, _ string) ([]domain.ResultEntry, error) {
	return r.byStudent, nil
}

func (r *stubResultRepo) Summary(_ context.Context, classKey string) (*domain.ResultSummary, error) {
	if r.summary == nil {
		return nil, domain.ErrClassNotFound
	}
	return r.summary, nil
}

func (r *stubResultRepo) TopStudents(_ context.Context, _ string, limit int) ([]domain.ResultEntry, error) {
	r.topLimit = limit
	return r.top, nil
}

type stubSummaryCache struct {
	cached      *domain.ResultSummary
	set         *domain.ResultSummary
	invalidated []string
	getErr      error
}

func (c *stubSummaryCache) Get(_ context.Context, _ string) (*domain.ResultSummary, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.cached, nil
}

func (c *stubSummaryCache) Set(_ context.Context, summary *domain.ResultSummary) error {
	c.set = summary
	return nil
}

func (c *stubSummaryCache) Invalidate(_ context.Context, classKey string) error {
	c.invalidated = append(c.invalidated, classKey)
	return nil
}

func TestResultService_IngestBatch_Success(t *testing.T) {
	repo := &stubResultRepo{}
	cache := &stubSummaryCache{}
	svc := NewResultService(repo, cache, zerolog.Nop())

	in := ports.ResultBatchInput{
		ClassKey:   "FE_CS_I",
		UploadedBy: "teacher_1",
		Rows: []ports.ResultRow{
			{StudentName: "  Alice ", Grade: 81.5, Outcome: "pass"},
			{StudentName: "Bob", Grade: 32, Outcome: "FAIL"},
		},
	}
	if err := svc.IngestBatch(context.Background(), in); err != nil {
		t.Fatalf("IngestBatch returned error: %v", err)
	}

	if len(repo.inserted) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(repo.inserted))
	}
	first := repo.inserted[0]
	if first.StudentName != "Alice" {
		t.Fatalf("expected trimmed name, got %q", first.StudentName)
	}
	if first.Outcome != domain.OutcomePass {
		t.Fatalf("expected normalised outcome PASS, got %s", first.Outcome)
	}
	if first.ClassKey != "FE_CS_I" || first.UploadedBy != "teacher_1" {
		t.Fatalf("metadata not stamped: %+v", first)
	}
	if first.UploadedAt.IsZero() {
		t.Fatalf("expected upload timestamp")
	}

	if len(cache.invalidated) != 1 || cache.invalidated[0] != "FE_CS_I" {
		t.Fatalf("expected summary invalidation for class, got %v", cache.invalidated)
	}
}

func TestResultService_IngestBatch_Validation(t *testing.T) {
	svc := NewResultService(&stubResultRepo{}, &stubSummaryCache{}, zerolog.Nop())

	err := svc.IngestBatch(context.Background(), ports.ResultBatchInput{ClassKey: "FE_CS_I"})
	if !errors.Is(err, domain.ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}

	err = svc.IngestBatch(context.Background(), ports.ResultBatchInput{
		ClassKey: "FE_CS_I",
		Rows:     []ports.ResultRow{{StudentName: "Alice", Outcome: "MAYBE"}},
	})
	if !errors.Is(err, domain.ErrInvalidOutcome) {
		t.Fatalf("expected ErrInvalidOutcome, got %v", err)
	}

	err = svc.IngestBatch(context.Background(), ports.ResultBatchInput{
		ClassKey: "FE_CS_I",
		Rows:     []ports.ResultRow{{StudentName: "   ", Outcome: "PASS"}},
	})
	if !errors.Is(err, domain.ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry, got %v", err)
	}
}

func TestResultService_Summary_CacheHit(t *testing.T) {
	repo := &stubResultRepo{summary: &domain.ResultSummary{ClassKey: "FE_CS_I", Total: 99}}
	cache := &stubSummaryCache{cached: &domain.ResultSummary{ClassKey: "FE_CS_I", Total: 2}}
	svc := NewResultService(repo, cache, zerolog.Nop())

	got, err := svc.Summary(context.Background(), "FE_CS_I")
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if got.Total != 2 {
		t.Fatalf("expected cached summary, got %+v", got)
	}
}

func TestResultService_Summary_CacheMissComputesAndStores(t *testing.T) {
	repo := &stubResultRepo{summary: &domain.ResultSummary{ClassKey: "FE_CS_I", Total: 3, Passed: 2, Failed: 1}}
	cache := &stubSummaryCache{}
	svc := NewResultService(repo, cache, zerolog.Nop())

	got, err := svc.Summary(context.Background(), "FE_CS_I")
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if got.Total != 3 {
		t.Fatalf("unexpected summary: %+v", got)
	}
	if cache.set == nil || cache.set.Total != 3 {
		t.Fatalf("expected summary written back to cache, got %+v", cache.set)
	}
}

func TestResultService_Summary_CacheErrorFallsThrough(t *testing.T) {
	repo := &stubResultRepo{summary: &domain.ResultSummary{ClassKey: "FE_CS_I", Total: 1}}
	cache := &stubSummaryCache{getErr: errors.New("redis down")}
	svc := NewResultService(repo, cache, zerolog.Nop())

	got, err := svc.Summary(context.Background(), "FE_CS_I")
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if got.Total != 1 {
		t.Fatalf("expected store summary despite cache error, got %+v", got)
	}
}

func TestResultService_Summary_UnknownClass(t *testing.T) {
	svc := NewResultService(&stubResultRepo{}, &stubSummaryCache{}, zerolog.Nop())

	if _, err := svc.Summary(context.Background(), "ghost"); !errors.Is(err, domain.ErrClassNotFound) {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}
}

func TestResultService_TopStudents_DefaultLimit(t *testing.T) {
	repo := &stubResultRepo{}
	svc := NewResultService(repo, &stubSummaryCache{}, zerolog.Nop())

	if _, err := svc.TopStudents(context.Background(), "FE_CS_I", 0); err != nil {
		t.Fatalf("TopStudents returned error: %v", err)
	}
	if repo.topLimit != 5 {
		t.Fatalf("expected default limit 5, got %d", repo.topLimit)
	}
}
