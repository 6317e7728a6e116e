package queue

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/coursehub/catalog-api/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// ErrStopped is returned for mutations submitted to, or still pending in, a
// stopped Serializer.
var ErrStopped = errors.New("mutation queue stopped")

// Job is a unit of work executed on a serializer worker.
type Job = func(ctx context.Context) error

type task struct {
	ctx  context.Context
	job  Job
	done chan error
}

// Serializer runs mutations on a fixed set of workers, routing each key to the
// same worker so that mutations on one key never interleave.
type Serializer struct {
	workers  []chan task
	log      zerolog.Logger
	wg       sync.WaitGroup
	stopped  chan struct{}
	stopOnce sync.Once
}

// NewSerializer creates a Serializer with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewSerializer(numWorkers int, log zerolog.Logger) *Serializer {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	s := &Serializer{
		workers: make([]chan task, numWorkers),
		log:     log,
		stopped: make(chan struct{}),
	}
	for i := range s.workers {
		s.workers[i] = make(chan task, channelBuffer)
	}
	return s
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (s *Serializer) Start(ctx context.Context) {
	for i, ch := range s.workers {
		s.wg.Add(1)
		go s.runWorker(ctx, i, ch)
	}
	go func() {
		s.wg.Wait()
		s.stopOnce.Do(func() { close(s.stopped) })
	}()
}

// Do runs job on the worker owning key and waits for its result.
func (s *Serializer) Do(ctx context.Context, key string, job Job) error {
	id := s.shardIndex(key)
	t := task{ctx: ctx, job: job, done: make(chan error, 1)}

	select {
	case s.workers[id] <- t:
		metrics.MutationQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(s.workers[id])))
	case <-ctx.Done():
		return ctx.Err()
	case <-s.stopped:
		return ErrStopped
	}

	select {
	case err := <-t.done:
		return err
	case <-s.stopped:
		// The worker may have finished the job just before exiting.
		select {
		case err := <-t.done:
			return err
		default:
			return ErrStopped
		}
	}
}

// shardIndex maps a key deterministically to a worker index.
func (s *Serializer) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(s.workers)))
}

func (s *Serializer) runWorker(ctx context.Context, id int, ch <-chan task) {
	defer s.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ch:
			metrics.MutationQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := t.ctx.Err(); err != nil {
				t.done <- err
				continue
			}
			start := time.Now()
			err := run(t)
			metrics.MutationDuration.Observe(time.Since(start).Seconds())
			if err != nil {
				s.log.Debug().Err(err).Int("worker_id", id).Msg("mutation failed")
			}
			t.done <- err
		}
	}
}

// run executes the job, turning a panic into an error so the worker survives.
func run(t task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mutation panicked: %v", r)
		}
	}()
	return t.job(t.ctx)
}
