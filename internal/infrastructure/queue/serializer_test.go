package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func startSerializer(t *testing.T, workers int) (*Serializer, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	s := NewSerializer(workers, zerolog.Nop())
	s.Start(ctx)
	t.Cleanup(cancel)
	return s, cancel
}

func TestSerializer_ReturnsJobError(t *testing.T) {
	s, _ := startSerializer(t, 2)
	want := errors.New("boom")

	err := s.Do(context.Background(), "catalog", func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestSerializer_SameKeyNeverInterleaves(t *testing.T) {
	s, _ := startSerializer(t, 4)

	var (
		mu      sync.Mutex
		running int
		overlap bool
		counter int
	)
	job := func(context.Context) error {
		mu.Lock()
		running++
		if running > 1 {
			overlap = true
		}
		mu.Unlock()

		time.Sleep(time.Millisecond)
		counter++

		mu.Lock()
		running--
		mu.Unlock()
		return nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Do(context.Background(), "catalog", job); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if overlap {
		t.Fatalf("jobs for the same key overlapped")
	}
	if counter != 50 {
		t.Fatalf("expected 50 jobs to run, got %d", counter)
	}
}

func TestSerializer_ShardIndexIsStable(t *testing.T) {
	s := NewSerializer(8, zerolog.Nop())
	first := s.shardIndex("schedule:42")
	for i := 0; i < 10; i++ {
		if got := s.shardIndex("schedule:42"); got != first {
			t.Fatalf("shard index changed: %d != %d", got, first)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestSerializer_DefaultWorkers(t *testing.T) {
	s := NewSerializer(0, zerolog.Nop())
	if len(s.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(s.workers))
	}
}

func TestSerializer_StoppedReturnsErrStopped(t *testing.T) {
	s, cancel := startSerializer(t, 1)
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatalf("serializer did not stop")
	}

	err := s.Do(context.Background(), "catalog", func(context.Context) error {
		return nil
	})
	if !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}

func TestSerializer_RecoversPanics(t *testing.T) {
	s, _ := startSerializer(t, 1)

	err := s.Do(context.Background(), "catalog", func(context.Context) error { panic("bad") })
	if err == nil {
		t.Fatalf("expected error from panicking job")
	}

	if err := s.Do(context.Background(), "catalog", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("worker did not survive panic: %v", err)
	}
}

func TestSerializer_CancelledContextSkipsJob(t *testing.T) {
	s, _ := startSerializer(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := s.Do(ctx, "catalog", func(context.Context) error {
		ran = true
		return nil
	})
	if err == nil {
		t.Fatalf("expected context error")
	}
	if ran {
		t.Fatalf("job should not run with a cancelled context")
	}
}
