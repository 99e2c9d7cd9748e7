package store

import (
	"context"
	"testing"

	"campusfound/internal/db"
	"campusfound/internal/model"
)

func TestAddClaimDefaultsAndOrder(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, err := AddClaim(ctx, database, ClaimInput{
		ItemID:  "itm_1",
		UserID:  "usr_1",
		Contact: "  ana@campus.edu ",
		Message: " it is mine ",
	})
	if err != nil {
		t.Fatalf("AddClaim: %v", err)
	}
	if first.Status != model.ClaimStatusSubmitted {
		t.Errorf("new claims must be submitted, got %q", first.Status)
	}
	if first.Contact != "ana@campus.edu" || first.Message != "it is mine" {
		t.Errorf("fields not trimmed: %+v", first)
	}

	second, _ := AddClaim(ctx, database, ClaimInput{ItemID: "itm_2", UserID: "usr_2"})
	claims := ListClaims(ctx, database)
	if len(claims) != 2 || claims[0].ID != second.ID {
		t.Error("claims are not newest-first")
	}
}

func TestSetClaimStatusAnyDirection(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	claim, _ := AddClaim(ctx, database, ClaimInput{ItemID: "itm_1", UserID: "usr_1"})

	for _, status := range []string{
		model.ClaimStatusResolved,
		model.ClaimStatusInReview,
		model.ClaimStatusSubmitted,
	} {
		if err := SetClaimStatus(ctx, database, claim.ID, status); err != nil {
			t.Fatalf("SetClaimStatus(%q): %v", status, err)
		}
		if got := ListClaims(ctx, database)[0].Status; got != status {
			t.Errorf("expected %q, got %q", status, got)
		}
	}
}

func TestClaimsForUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddClaim(ctx, database, ClaimInput{ItemID: "itm_1", UserID: "usr_1"})
	AddClaim(ctx, database, ClaimInput{ItemID: "itm_2", UserID: "usr_2"})
	AddClaim(ctx, database, ClaimInput{ItemID: "itm_3", UserID: "usr_1"})

	mine := ClaimsForUser(ctx, database, "usr_1")
	if len(mine) != 2 {
		t.Fatalf("expected 2 claims for usr_1, got %d", len(mine))
	}
	for _, c := range mine {
		if c.UserID != "usr_1" {
			t.Errorf("foreign claim leaked: %+v", c)
		}
	}
}
