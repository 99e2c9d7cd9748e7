package store

import (
	"context"
	"reflect"
	"testing"

	"campusfound/internal/db"
	"campusfound/internal/model"
)

func TestAddItemDefaults(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, err := AddItem(ctx, database, ItemInput{
		Title:    "  Keys  ",
		Location: " Cafeteria entrance ",
	})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if item.Title != "Keys" || item.Location != "Cafeteria entrance" {
		t.Errorf("fields not trimmed: %+v", item)
	}
	if item.Category != "Other" {
		t.Errorf("empty category must default to Other, got %q", item.Category)
	}
	if item.Status != model.ItemStatusPending {
		t.Errorf("new items must be pending, got %q", item.Status)
	}
	if item.ReportedBy != nil {
		t.Errorf("expected nil reporter, got %v", *item.ReportedBy)
	}
}

func TestAddItemPrependsNewestFirst(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, _ := AddItem(ctx, database, ItemInput{Title: "First"})
	second, _ := AddItem(ctx, database, ItemInput{Title: "Second"})

	items := ListItems(ctx, database)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Error("collection is not newest-first")
	}
}

func TestSetItemStatusIdempotent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := AddItem(ctx, database, ItemInput{Title: "Keys"})

	if err := SetItemStatus(ctx, database, item.ID, model.ItemStatusApproved); err != nil {
		t.Fatal(err)
	}
	once := ListItems(ctx, database)

	if err := SetItemStatus(ctx, database, item.ID, model.ItemStatusApproved); err != nil {
		t.Fatal(err)
	}
	twice := ListItems(ctx, database)

	if !reflect.DeepEqual(once, twice) {
		t.Error("repeated SetItemStatus changed state")
	}
	if twice[0].Status != model.ItemStatusApproved {
		t.Errorf("expected approved, got %q", twice[0].Status)
	}

	// Any direction is allowed, including back to pending.
	if err := SetItemStatus(ctx, database, item.ID, model.ItemStatusPending); err != nil {
		t.Fatal(err)
	}
	if got := GetItem(ctx, database, item.ID); got.Status != model.ItemStatusPending {
		t.Errorf("expected pending after reversal, got %q", got.Status)
	}
}

func TestSetItemStatusUnknownIDNoop(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddItem(ctx, database, ItemInput{Title: "Keys"})
	before := ListItems(ctx, database)

	if err := SetItemStatus(ctx, database, "itm_missing", model.ItemStatusApproved); err != nil {
		t.Fatalf("unknown id must not error: %v", err)
	}
	if !reflect.DeepEqual(before, ListItems(ctx, database)) {
		t.Error("no-op mutated the collection")
	}
}

func TestUpdateItemPatch(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := AddItem(ctx, database, ItemInput{Title: "Keys", Category: "Keys", Location: "Gym"})

	title := "Silver Keys"
	status := model.ItemStatusApproved
	if err := UpdateItem(ctx, database, item.ID, ItemPatch{Title: &title, Status: &status}); err != nil {
		t.Fatal(err)
	}

	got := GetItem(ctx, database, item.ID)
	if got.Title != "Silver Keys" || got.Status != model.ItemStatusApproved {
		t.Errorf("patched fields not applied: %+v", got)
	}
	if got.Category != "Keys" || got.Location != "Gym" {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestDeleteItemCascadesClaims(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	target, _ := AddItem(ctx, database, ItemInput{Title: "Wallet"})
	other, _ := AddItem(ctx, database, ItemInput{Title: "Phone"})

	AddClaim(ctx, database, ClaimInput{ItemID: target.ID, UserID: "usr_1", Contact: "a@b.c", Message: "mine"})
	AddClaim(ctx, database, ClaimInput{ItemID: target.ID, UserID: "usr_2", Contact: "b@b.c", Message: "no, mine"})
	kept, _ := AddClaim(ctx, database, ClaimInput{ItemID: other.ID, UserID: "usr_3", Contact: "c@b.c", Message: "phone"})

	if err := DeleteItem(ctx, database, target.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	items := ListItems(ctx, database)
	if len(items) != 1 || items[0].ID != other.ID {
		t.Errorf("expected only the other item to remain, got %+v", items)
	}

	claims := ListClaims(ctx, database)
	if len(claims) != 1 || claims[0].ID != kept.ID {
		t.Errorf("cascade must remove exactly the deleted item's claims, got %+v", claims)
	}
}

func TestDeleteItemUnknownIDNoop(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddItem(ctx, database, ItemInput{Title: "Keys"})
	if err := DeleteItem(ctx, database, "itm_missing"); err != nil {
		t.Fatalf("unknown id must not error: %v", err)
	}
	if len(ListItems(ctx, database)) != 1 {
		t.Error("no-op delete removed an item")
	}
}
