// Package store implements the entity repositories. Each repository owns one
// collection persisted as a JSON array (or object, for the session) under a
// fixed key; mutations load the collection, transform it in memory, and write
// it back synchronously.
package store

// Storage keys. Collections hold JSON arrays; KeySession holds an object or
// null.
const (
	KeyUsers   = "users"
	KeyItems   = "items"
	KeyClaims  = "claims"
	KeyReviews = "reviews"
	KeySession = "session"
)

// CollectionKeys lists every persisted key, in backup order.
var CollectionKeys = []string{KeyUsers, KeyItems, KeyClaims, KeyReviews, KeySession}
