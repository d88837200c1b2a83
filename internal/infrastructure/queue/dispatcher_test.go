package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusboard/result-api/internal/core/domain"
	"github.com/campusboard/result-api/internal/core/ports"
)

type recordingService struct {
	mu      sync.Mutex
	batches []ports.ResultBatchInput
	done    chan struct{}
	want    int
}

func (s *recordingService) IngestBatch(_ context.Context, in ports.ResultBatchInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, in)
	if len(s.batches) == s.want {
		close(s.done)
	}
	return nil
}

func (s *recordingService) Summary(context.Context, string) (*domain.ResultSummary, error) {
	return nil, nil
}

func (s *recordingService) TopStudents(context.Context, string, int) ([]domain.ResultEntry, error) {
	return nil, nil
}

func (s *recordingService) StudentResults(context.Context, string, string) ([]domain.ResultEntry, error) {
	return nil, nil
}

func TestDispatcher_PreservesPerClassOrder(t *testing.T) {
	svc := &recordingService{done: make(chan struct{}), want: 3}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for _, uploader := range []string{"first", "second", "third"} {
		d.Enqueue(ports.ResultBatchInput{
			ClassKey:   "FE_CS_I",
			UploadedBy: uploader,
			Rows:       []ports.ResultRow{{StudentName: "Alice", Outcome: "PASS"}},
		})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for batches")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for i, want := range []string{"first", "second", "third"} {
		if svc.batches[i].UploadedBy != want {
			t.Fatalf("batch %d processed out of order: got %s", i, svc.batches[i].UploadedBy)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, &recordingService{done: make(chan struct{})}, zerolog.Nop())

	a := d.shardIndex("FE_CS_I")
	for i := 0; i < 10; i++ {
		if d.shardIndex("FE_CS_I") != a {
			t.Fatalf("shard index not stable")
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingService{done: make(chan struct{})}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
