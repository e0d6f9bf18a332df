package syncs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(2)
	var running, peak atomic.Int64
	var wg sync.WaitGroup
	for range 10 {
		if err := sem.Acquire(t.Context()); err != nil {
			t.Fatal(err)
		}
		wg.Go(func() {
			defer sem.Release()
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			running.Add(-1)
		})
	}
	wg.Wait()
	if p := peak.Load(); p > 2 {
		t.Fatalf("got %d", p)
	}
}

func TestSemaphoreCanceled(t *testing.T) {
	sem := NewSemaphore(1)
	if err := sem.Acquire(t.Context()); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	if err := sem.Acquire(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
	sem.Release()
}

func TestSemaphoreZero(t *testing.T) {
	sem := NewSemaphore(0)
	if cap(sem) != 1 {
		t.Fatalf("got %d", cap(sem))
	}
}
