package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"

	"campusfound/internal/kv"
)

// JWTSecret retrieves the token signing secret from the kv table, generating
// and storing one on first use. Uses INSERT OR IGNORE + re-SELECT so
// concurrent startups agree on a single secret.
func JWTSecret(ctx context.Context, q kv.Querier) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating jwt secret: %w", err)
	}
	candidate := hex.EncodeToString(buf)

	_, err := q.ExecContext(ctx,
		`INSERT OR IGNORE INTO kv (key, value) VALUES ('jwt_secret', ?)`,
		candidate,
	)
	if err != nil {
		return "", fmt.Errorf("storing jwt_secret: %w", err)
	}

	// Always read back (either our insert or the existing value).
	var secret string
	err = q.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = 'jwt_secret'`,
	).Scan(&secret)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("jwt_secret missing after insert")
	}
	if err != nil {
		return "", fmt.Errorf("querying jwt_secret: %w", err)
	}

	return secret, nil
}
