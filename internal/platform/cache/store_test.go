package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_DeduplicatesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore[[]string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) ([]string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return []string{"Ulsan", "Jeonbuk"}, nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "teams", loader)
			if err != nil {
				errCh <- err
				return
			}
			if len(v) != 2 {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_ReloadsAfterExpiry(t *testing.T) {
	store := NewStore[int](time.Minute)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	var calls int
	loader := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	first, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil || first != 1 {
		t.Fatalf("first load: got=%d err=%v", first, err)
	}
	if v, _ := store.GetOrLoad(context.Background(), "k", loader); v != 1 {
		t.Fatalf("expected cached value, got %d", v)
	}

	now = now.Add(time.Minute)
	if v, _ := store.GetOrLoad(context.Background(), "k", loader); v != 2 {
		t.Fatalf("expected reload after ttl, got %d", v)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	store := NewStore[string](time.Minute)
	boom := errors.New("boom")

	if _, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (string, error) {
		return "", boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("failed load must not be cached")
	}

	v, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (string, error) {
		return "ok", nil
	})
	if err != nil || v != "ok" {
		t.Fatalf("unexpected retry result: %q %v", v, err)
	}
}

func TestStore_GetOrLoad_RequiresLoader(t *testing.T) {
	store := NewStore[int](time.Minute)
	if _, err := store.GetOrLoad(context.Background(), "k", nil); !errors.Is(err, ErrNilLoader) {
		t.Fatalf("expected ErrNilLoader, got %v", err)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
