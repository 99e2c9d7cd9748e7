package store

import (
	"context"
	"strings"
	"time"

	"campusfound/internal/kv"
	"campusfound/internal/model"
)

// Seed admin account. Deterministic so a fresh installation always has a
// known administrator.
const (
	SeedAdminName     = "Campus Admin"
	SeedAdminEmail    = "admin@campus.edu"
	SeedAdminPassword = "admin123"
)

// EnsureSeedAdmin prepends the seed admin when no admin-role user exists.
// Idempotent: safe to call on every startup.
func EnsureSeedAdmin(ctx context.Context, q kv.Querier) error {
	users := ListUsers(ctx, q)
	for _, u := range users {
		if u.Role == model.RoleAdmin {
			return nil
		}
	}

	admin := model.User{
		ID:        model.NewID(model.PrefixUser),
		Name:      SeedAdminName,
		Email:     SeedAdminEmail,
		Password:  SeedAdminPassword,
		Role:      model.RoleAdmin,
		CreatedAt: time.Now().UnixMilli(),
	}
	return kv.Save(ctx, q, KeyUsers, append([]model.User{admin}, users...))
}

// ListUsers returns all users, newest first.
func ListUsers(ctx context.Context, q kv.Querier) []model.User {
	return kv.Load(ctx, q, KeyUsers, []model.User(nil))
}

// GetUser returns a user by ID, or nil if absent.
func GetUser(ctx context.Context, q kv.Querier, id string) *model.User {
	for _, u := range ListUsers(ctx, q) {
		if u.ID == id {
			return &u
		}
	}
	return nil
}

// GetUserByEmail returns a user by case-insensitive email, or nil if absent.
func GetUserByEmail(ctx context.Context, q kv.Querier, email string) *model.User {
	normalized := strings.ToLower(strings.TrimSpace(email))
	for _, u := range ListUsers(ctx, q) {
		if strings.ToLower(u.Email) == normalized {
			return &u
		}
	}
	return nil
}

// Signup creates a student account and logs it in. It fails with a
// ValidationError on an empty email, a password shorter than 4 characters, or
// a duplicate (case-insensitive) email, leaving the collection untouched.
func Signup(ctx context.Context, q kv.Querier, name, email, password string) (*model.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, &ValidationError{Msg: "email is required"}
	}
	if len(password) < 4 {
		return nil, &ValidationError{Msg: "password must be at least 4 characters"}
	}

	users := ListUsers(ctx, q)
	for _, u := range users {
		if strings.ToLower(u.Email) == normalized {
			return nil, &ValidationError{Msg: "an account with this email already exists"}
		}
	}

	user := model.User{
		ID:        model.NewID(model.PrefixUser),
		Name:      strings.TrimSpace(name),
		Email:     normalized,
		Password:  password,
		Role:      model.RoleStudent,
		CreatedAt: time.Now().UnixMilli(),
	}
	if user.Name == "" {
		user.Name = "Student"
	}

	if err := kv.Save(ctx, q, KeyUsers, append([]model.User{user}, users...)); err != nil {
		return nil, err
	}
	if err := SetSession(ctx, q, user.ID); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates by email and exact password match and points the
// session at the user. Any mismatch returns ErrInvalidCredentials.
func Login(ctx context.Context, q kv.Querier, email, password string) (*model.User, error) {
	user := GetUserByEmail(ctx, q, email)
	if user == nil || user.Password != password {
		return nil, ErrInvalidCredentials
	}

	if err := SetSession(ctx, q, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile patches the session user's name and phone. A blank name keeps
// the existing one; the phone is always replaced.
func UpdateProfile(ctx context.Context, q kv.Querier, name, phone string) (*model.User, error) {
	current := CurrentUser(ctx, q)
	if current == nil {
		return nil, ErrNotLoggedIn
	}
	return UpdateProfileFor(ctx, q, current.ID, name, phone)
}

// UpdateProfileFor patches the named user's name and phone. Callers that
// identify the user some other way than the session pointer use this
// directly so they can never write through to a different account.
func UpdateProfileFor(ctx context.Context, q kv.Querier, userID, name, phone string) (*model.User, error) {
	users := ListUsers(ctx, q)
	var updated *model.User
	for i, u := range users {
		if u.ID != userID {
			continue
		}
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			u.Name = trimmed
		}
		u.Phone = strings.TrimSpace(phone)
		users[i] = u
		updated = &users[i]
	}
	if updated == nil {
		return nil, ErrNotLoggedIn
	}

	if err := kv.Save(ctx, q, KeyUsers, users); err != nil {
		return nil, err
	}
	return updated, nil
}
