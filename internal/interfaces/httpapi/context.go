package httpapi

import "context"

type contextKey string

const sessionIDContextKey contextKey = "session_id"

func withSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDContextKey, sessionID)
}

func sessionIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(sessionIDContextKey).(string)
	return v, ok && v != ""
}
