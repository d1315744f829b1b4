package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/riskibarqy/fkl-dashboard/internal/domain/selection"
	"github.com/riskibarqy/fkl-dashboard/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

type fakeCommands struct {
	mu      sync.Mutex
	values  map[string]string
	ttls    map[string]time.Duration
	expires int
	failErr error
}

func newFakeCommands() *fakeCommands {
	return &fakeCommands{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCommands) Get(_ context.Context, key string) *goredis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return goredis.NewStringResult("", f.failErr)
	}
	v, ok := f.values[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (f *fakeCommands) Set(_ context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return goredis.NewStatusResult("", f.failErr)
	}
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	f.ttls[key] = expiration
	return goredis.NewStatusResult("OK", nil)
}

func (f *fakeCommands) Del(_ context.Context, keys ...string) *goredis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return goredis.NewIntResult(0, f.failErr)
	}
	var n int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			n++
		}
	}
	return goredis.NewIntResult(n, nil)
}

func (f *fakeCommands) Expire(_ context.Context, key string, expiration time.Duration) *goredis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return goredis.NewBoolResult(false, f.failErr)
	}
	if _, ok := f.values[key]; !ok {
		return goredis.NewBoolResult(false, nil)
	}
	f.ttls[key] = expiration
	f.expires++
	return goredis.NewBoolResult(true, nil)
}

func TestSelectionStore_RoundTrip(t *testing.T) {
	client := newFakeCommands()
	store := NewSelectionStore(client, 30*time.Minute, logging.NewNop())
	ctx := context.Background()

	got, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, selection.Unselected(), got, "missing key reads as unselected")

	require.NoError(t, store.Save(ctx, "s1", selection.Selected("<b>Kim</b>")))
	require.JSONEq(t, `{"player":"<b>Kim</b>","selected":true}`, client.values["fkl:selection:s1"])
	require.Equal(t, 30*time.Minute, client.ttls["fkl:selection:s1"])

	got, err = store.Load(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, selection.Selected("<b>Kim</b>"), got)

	require.NoError(t, store.Delete(ctx, "s1"))
	got, err = store.Load(ctx, "s1")
	require.NoError(t, err)
	require.False(t, got.IsSelected())
}

func TestSelectionStore_SaveUnselectedDeletes(t *testing.T) {
	client := newFakeCommands()
	store := NewSelectionStore(client, time.Minute, logging.NewNop())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", selection.Selected("Kim")))
	require.NoError(t, store.Save(ctx, "s1", selection.Unselected()))
	require.Empty(t, client.values)
}

func TestSelectionStore_CorruptValuesReadAsUnselected(t *testing.T) {
	client := newFakeCommands()
	store := NewSelectionStore(client, time.Minute, logging.NewNop())
	ctx := context.Background()

	client.values["fkl:selection:bad"] = "{not json"
	got, err := store.Load(ctx, "bad")
	require.NoError(t, err)
	require.False(t, got.IsSelected())
	require.NotContains(t, client.values, "fkl:selection:bad", "undecodable values are deleted")

	client.values["fkl:selection:ctrl"] = `{"player":"Kim\u0000","selected":true}`
	got, err = store.Load(ctx, "ctrl")
	require.NoError(t, err)
	require.False(t, got.IsSelected(), "stored values that fail validation are dropped")
	require.NotContains(t, client.values, "fkl:selection:ctrl")
	require.Zero(t, client.expires)
}

func TestSelectionStore_LoadRefreshesTTL(t *testing.T) {
	client := newFakeCommands()
	store := NewSelectionStore(client, 30*time.Minute, logging.NewNop())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", selection.Selected("Kim")))
	client.ttls["fkl:selection:s1"] = time.Second

	got, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.True(t, got.IsSelected())
	require.Equal(t, 1, client.expires)
	require.Equal(t, 30*time.Minute, client.ttls["fkl:selection:s1"])
}

func TestSelectionStore_PropagatesErrors(t *testing.T) {
	client := newFakeCommands()
	client.failErr = errors.New("connection refused")
	store := NewSelectionStore(client, time.Minute, logging.NewNop())
	ctx := context.Background()

	_, err := store.Load(ctx, "s1")
	require.ErrorIs(t, err, client.failErr)
	require.ErrorIs(t, store.Save(ctx, "s1", selection.Selected("Kim")), client.failErr)
	require.ErrorIs(t, store.Delete(ctx, "s1"), client.failErr)
}
