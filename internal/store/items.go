package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"campusfound/internal/kv"
	"campusfound/internal/model"
)

// ItemInput is the payload for reporting a found item.
type ItemInput struct {
	Title        string
	Category     string
	Location     string
	DateFound    string
	Description  string
	ImageDataURL string
	ReportedBy   *string
}

// ItemPatch is a typed partial update. Nil fields are left untouched.
type ItemPatch struct {
	Title        *string
	Category     *string
	Location     *string
	DateFound    *string
	Description  *string
	ImageDataURL *string
	Status       *string
}

// ListItems returns all items, newest first.
func ListItems(ctx context.Context, q kv.Querier) []model.Item {
	return kv.Load(ctx, q, KeyItems, []model.Item(nil))
}

// GetItem returns an item by ID, or nil if absent.
func GetItem(ctx context.Context, q kv.Querier, id string) *model.Item {
	for _, it := range ListItems(ctx, q) {
		if it.ID == id {
			return &it
		}
	}
	return nil
}

// AddItem creates an item from the report payload. Free-text fields are
// trimmed, the category defaults to "Other", and the status is forced to
// pending regardless of input. The item is prepended so the collection stays
// newest-first.
func AddItem(ctx context.Context, q kv.Querier, in ItemInput) (*model.Item, error) {
	item := model.Item{
		ID:           model.NewID(model.PrefixItem),
		Title:        strings.TrimSpace(in.Title),
		Category:     strings.TrimSpace(in.Category),
		Location:     strings.TrimSpace(in.Location),
		DateFound:    strings.TrimSpace(in.DateFound),
		Description:  strings.TrimSpace(in.Description),
		ImageDataURL: in.ImageDataURL,
		Status:       model.ItemStatusPending,
		CreatedAt:    time.Now().UnixMilli(),
		ReportedBy:   in.ReportedBy,
	}
	if item.Category == "" {
		item.Category = "Other"
	}

	items := append([]model.Item{item}, ListItems(ctx, q)...)
	if err := kv.Save(ctx, q, KeyItems, items); err != nil {
		return nil, err
	}
	return &item, nil
}

// SetItemStatus sets an item's status unconditionally; any status is
// reachable from any other and repeated calls are idempotent. An unknown ID
// is a no-op.
func SetItemStatus(ctx context.Context, q kv.Querier, id, status string) error {
	items := ListItems(ctx, q)
	for i, it := range items {
		if it.ID == id {
			items[i].Status = status
		}
	}
	return kv.Save(ctx, q, KeyItems, items)
}

// UpdateItem merges the non-nil patch fields into the matched item. An
// unknown ID is a no-op.
func UpdateItem(ctx context.Context, q kv.Querier, id string, patch ItemPatch) error {
	items := ListItems(ctx, q)
	for i, it := range items {
		if it.ID != id {
			continue
		}
		if patch.Title != nil {
			it.Title = *patch.Title
		}
		if patch.Category != nil {
			it.Category = *patch.Category
		}
		if patch.Location != nil {
			it.Location = *patch.Location
		}
		if patch.DateFound != nil {
			it.DateFound = *patch.DateFound
		}
		if patch.Description != nil {
			it.Description = *patch.Description
		}
		if patch.ImageDataURL != nil {
			it.ImageDataURL = *patch.ImageDataURL
		}
		if patch.Status != nil {
			it.Status = *patch.Status
		}
		items[i] = it
	}
	return kv.Save(ctx, q, KeyItems, items)
}

// DeleteItem removes the item and every claim referencing it. Both collection
// writes run in one transaction so the pair can never be observed
// half-deleted. An unknown ID is a no-op.
func DeleteItem(ctx context.Context, db *sql.DB, id string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting delete transaction: %w", err)
	}
	defer tx.Rollback()

	items := ListItems(ctx, tx)
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if err := kv.Save(ctx, tx, KeyItems, kept); err != nil {
		return err
	}

	claims := ListClaims(ctx, tx)
	keptClaims := claims[:0]
	for _, c := range claims {
		if c.ItemID != id {
			keptClaims = append(keptClaims, c)
		}
	}
	if err := kv.Save(ctx, tx, KeyClaims, keptClaims); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}
	return nil
}
