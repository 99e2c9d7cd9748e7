// Package backup implements the export/import file format: a versioned JSON
// envelope carrying every persisted collection.
package backup

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"campusfound/internal/kv"
	"campusfound/internal/model"
	"campusfound/internal/store"
)

// Version is the current envelope version.
const Version = "1.0"

// RedactedPassword replaces user passwords in exports. Re-importing a
// redacted backup intentionally breaks those logins; the redaction is not
// reversed on import.
const RedactedPassword = "[REDACTED]"

// Backup is the envelope written to and read from backup files.
type Backup struct {
	Version    string                     `json:"version"`
	ExportedAt string                     `json:"exportedAt"`
	Data       map[string]json.RawMessage `json:"data"`
}

// FormatError reports a malformed envelope. Nothing is written when import
// fails with it.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return "invalid backup format: " + e.Msg }

// IsFormat reports whether err is a FormatError.
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// Export snapshots every collection plus the session key. User passwords are
// replaced with RedactedPassword.
func Export(ctx context.Context, q kv.Querier) (*Backup, error) {
	b := &Backup{
		Version:    Version,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Data:       make(map[string]json.RawMessage, len(store.CollectionKeys)),
	}

	for _, key := range store.CollectionKeys {
		switch key {
		case store.KeyUsers:
			users := store.ListUsers(ctx, q)
			redacted := make([]model.User, len(users))
			for i, u := range users {
				u.Password = RedactedPassword
				redacted[i] = u
			}
			raw, err := json.Marshal(redacted)
			if err != nil {
				return nil, fmt.Errorf("encoding users: %w", err)
			}
			b.Data[key] = raw
		case store.KeySession:
			raw, ok, err := kv.LoadRaw(ctx, q, key)
			if err != nil {
				return nil, err
			}
			if !ok {
				raw = []byte("null")
			}
			b.Data[key] = raw
		default:
			raw, ok, err := kv.LoadRaw(ctx, q, key)
			if err != nil {
				return nil, err
			}
			if !ok {
				raw = []byte("[]")
			}
			b.Data[key] = raw
		}
	}
	return b, nil
}

// Import restores collections from an envelope. It fails with a FormatError
// before writing anything if the version or data field is missing. The
// session key is never overwritten, and non-array values are ignored. All
// writes run in one transaction.
func Import(ctx context.Context, db *sql.DB, raw []byte) error {
	var b Backup
	if err := json.Unmarshal(raw, &b); err != nil {
		return &FormatError{Msg: err.Error()}
	}
	if b.Version == "" {
		return &FormatError{Msg: "missing version"}
	}
	if b.Data == nil {
		return &FormatError{Msg: "missing data"}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting import transaction: %w", err)
	}
	defer tx.Rollback()

	for key, value := range b.Data {
		if key == store.KeySession || !isArray(value) {
			continue
		}
		if err := kv.SaveRaw(ctx, tx, key, value); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
