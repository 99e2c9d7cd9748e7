package store

import (
	"context"

	"campusfound/internal/kv"
	"campusfound/internal/model"
)

// GetSession returns the active session pointer, or nil when logged out.
func GetSession(ctx context.Context, q kv.Querier) *model.Session {
	return kv.Load(ctx, q, KeySession, (*model.Session)(nil))
}

// SetSession points the session at the given user.
func SetSession(ctx context.Context, q kv.Querier, userID string) error {
	return kv.Save(ctx, q, KeySession, &model.Session{UserID: userID})
}

// ClearSession logs the active user out.
func ClearSession(ctx context.Context, q kv.Querier) error {
	return kv.Save(ctx, q, KeySession, (*model.Session)(nil))
}

// CurrentUser resolves the session pointer against the users collection. A
// dangling pointer (the user no longer exists) resolves to nil, not an error.
func CurrentUser(ctx context.Context, q kv.Querier) *model.User {
	session := GetSession(ctx, q)
	if session == nil || session.UserID == "" {
		return nil
	}
	return GetUser(ctx, q, session.UserID)
}
