package auth

import (
	"context"

	"fundforge/platform/internal/common"
)

type contextKey string

var sessionDataKey contextKey = "session_data"

// SetSession stores the authenticated session in the request context.
func SetSession(ctx context.Context, session *common.SessionData) context.Context {
	return context.WithValue(ctx, sessionDataKey, session)
}

// GetSession retrieves the authenticated session, or nil.
func GetSession(ctx context.Context) *common.SessionData {
	val := ctx.Value(sessionDataKey)
	if session, ok := val.(*common.SessionData); ok {
		return session
	}
	return nil
}

// CurrentUserID returns the authenticated user's ID.
func CurrentUserID(ctx context.Context) (int64, bool) {
	session := GetSession(ctx)
	if session == nil {
		return 0, false
	}
	return session.UserID, true
}
