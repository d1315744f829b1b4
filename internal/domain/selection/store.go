package selection

import "context"

// Store keeps selection state per session. Loading an unknown session yields Unselected.
type Store interface {
	Load(ctx context.Context, sessionID string) (State, error)
	Save(ctx context.Context, sessionID string, state State) error
	Delete(ctx context.Context, sessionID string) error
}
