package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	goredis "github.com/redis/go-redis/v9"
	"github.com/riskibarqy/fkl-dashboard/internal/domain/selection"
	"github.com/riskibarqy/fkl-dashboard/internal/platform/logging"
)

const selectionKeyPrefix = "fkl:selection:"

// Commands is the subset of the go-redis client the store needs.
type Commands interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *goredis.BoolCmd
}

// SelectionStore keeps one JSON value per session. Every read of a selection
// pushes its expiry ttl further out.
type SelectionStore struct {
	client Commands
	ttl    time.Duration
	logger *logging.Logger
}

func NewSelectionStore(client Commands, ttl time.Duration, logger *logging.Logger) *SelectionStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &SelectionStore{client: client, ttl: ttl, logger: logger}
}

// Load treats a missing key as Unselected. Values that do not decode to a valid
// selection are dropped and also read as Unselected.
func (s *SelectionStore) Load(ctx context.Context, sessionID string) (selection.State, error) {
	key := selectionKey(sessionID)
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return selection.Unselected(), nil
	}
	if err != nil {
		return selection.State{}, fmt.Errorf("redis get selection: %w", err)
	}

	var state selection.State
	if err := sonic.Unmarshal(raw, &state); err != nil {
		s.discard(ctx, key, err)
		return selection.Unselected(), nil
	}
	if state.Selected && !selection.ValidPlayerParam(state.Player) {
		s.discard(ctx, key, errors.New("invalid player in stored selection"))
		return selection.Unselected(), nil
	}

	if s.ttl > 0 {
		if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
			s.logger.WarnContext(ctx, "refresh selection ttl failed", "key", key, "error", err)
		}
	}
	return state, nil
}

func (s *SelectionStore) discard(ctx context.Context, key string, cause error) {
	s.logger.WarnContext(ctx, "dropping unreadable selection", "key", key, "error", cause)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.WarnContext(ctx, "delete unreadable selection failed", "key", key, "error", err)
	}
}

func (s *SelectionStore) Save(ctx context.Context, sessionID string, state selection.State) error {
	if !state.IsSelected() {
		return s.Delete(ctx, sessionID)
	}

	raw, err := sonic.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}
	if err := s.client.Set(ctx, selectionKey(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set selection: %w", err)
	}
	return nil
}

func (s *SelectionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, selectionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del selection: %w", err)
	}
	return nil
}

func selectionKey(sessionID string) string {
	return selectionKeyPrefix + sessionID
}
