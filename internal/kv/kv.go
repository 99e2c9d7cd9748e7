// Package kv implements the JSON key/value persistence layer. Every
// collection in the application is one JSON document stored under one key in
// the kv table; mutations rewrite the whole document.
package kv

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Querier is satisfied by both *sql.DB and *sql.Tx, so collection reads and
// writes can run standalone or inside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Load reads and decodes the value stored under key. It returns fallback if
// the key is absent or the stored value fails to decode; it never surfaces an
// error to the caller.
func Load[T any](ctx context.Context, q Querier, key string, fallback T) T {
	raw, ok, err := LoadRaw(ctx, q, key)
	if err != nil || !ok {
		return fallback
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return fallback
	}
	return value
}

// Save serializes value to JSON and writes it under key, replacing any
// previous value. Write failures are surfaced to the caller.
func Save[T any](ctx context.Context, q Querier, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	return SaveRaw(ctx, q, key, raw)
}

// LoadRaw reads the raw JSON stored under key. The second return value
// reports whether the key exists.
func LoadRaw(ctx context.Context, q Querier, key string) ([]byte, bool, error) {
	var raw []byte
	err := q.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, key,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading %q: %w", key, err)
	}
	return raw, true, nil
}

// SaveRaw writes raw JSON under key without re-encoding it.
func SaveRaw(ctx context.Context, q Querier, key string, raw []byte) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, raw,
	)
	if err != nil {
		return fmt.Errorf("saving %q: %w", key, err)
	}
	return nil
}
