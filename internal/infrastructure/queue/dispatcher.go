package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusboard/result-api/internal/api/metrics"
	"github.com/campusboard/result-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher routes uploaded result batches to a fixed set of workers using
// consistent hashing on the class key, so sheets for the same class are
// persisted in upload order.
type Dispatcher struct {
	workers []chan ports.ResultBatchInput
	service ports.ResultService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ResultService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ResultBatchInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ResultBatchInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a batch to the worker responsible for its class key.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(batch ports.ResultBatchInput) {
	idx := d.shardIndex(batch.ClassKey)
	d.workers[idx] <- batch
	metrics.IngestQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a class key deterministically to a worker index.
func (d *Dispatcher) shardIndex(classKey string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(classKey))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ResultBatchInput) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case batch, ok := <-ch:
			if !ok {
				return
			}
			metrics.IngestQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.service.IngestBatch(ctx, batch); err != nil {
				metrics.ResultsIngestErrorsTotal.WithLabelValues("ingest_failed").Inc()
				d.log.Error().Err(err).
					Str("class", batch.ClassKey).
					Int("worker_id", id).
					Msg("result batch ingestion failed")
				continue
			}
			for _, row := range batch.Rows {
				metrics.ResultsIngestedTotal.WithLabelValues(strings.ToUpper(row.Outcome)).Inc()
			}
		}
	}
}
