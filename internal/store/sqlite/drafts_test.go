package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	"github.com/clutchboard/clutchboard-server/internal/store"
)

// makeTestDraft creates a pending two-block draft for testing.
func makeTestDraft(id string) *domain.ExtractedDraft {
	now := time.Now()
	return &domain.ExtractedDraft{
		ID: id,
		Blocks: []domain.ExtractedTeamBlock{
			{Score: 13, Players: []domain.ExtractedPlayerRecord{
				{RawName: "SHADOW", Kills: 20, Deaths: 12, Assists: 3},
				{RawName: "blitz.rac", Kills: 15, Deaths: 14, Assists: 7},
			}},
			{Score: 7, Players: []domain.ExtractedPlayerRecord{
				{RawName: "shadow_ast.pro", Kills: 11, Deaths: 16, Assists: 2},
			}},
		},
		WinnerSide: 1,
		Confidence: 0.92,
		Status:     domain.DraftStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestCreateAndGetDraft(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	d := makeTestDraft("draft-1")
	if err := s.CreateDraft(ctx, d); err != nil {
		t.Fatalf("CreateDraft: %v", err)
	}

	got, err := s.GetDraft(ctx, "draft-1")
	if err != nil {
		t.Fatalf("GetDraft: %v", err)
	}
	if got.Status != domain.DraftStatusPending {
		t.Errorf("Status: got %q", got.Status)
	}
	if got.WinnerSide != 1 {
		t.Errorf("WinnerSide: got %d, want 1", got.WinnerSide)
	}
	if got.Confidence != 0.92 {
		t.Errorf("Confidence: got %v, want 0.92", got.Confidence)
	}
	if len(got.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(got.Blocks))
	}
	if got.Blocks[0].Score != 13 || len(got.Blocks[0].Players) != 2 {
		t.Errorf("block 1: %+v", got.Blocks[0])
	}
	if got.Blocks[0].Players[0].RawName != "SHADOW" || got.Blocks[0].Players[0].Kills != 20 {
		t.Errorf("block 1 slot 0: %+v", got.Blocks[0].Players[0])
	}
	if got.AppliedAt != nil {
		t.Error("AppliedAt: expected nil for a pending draft")
	}
	if len(got.Overrides) != 0 {
		t.Errorf("Overrides: expected empty, got %v", got.Overrides)
	}
}

func TestCreateDraftDuplicateID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateDraft(ctx, makeTestDraft("draft-1")); err != nil {
		t.Fatalf("CreateDraft: %v", err)
	}
	err := s.CreateDraft(ctx, makeTestDraft("draft-1"))
	if !errors.Is(err, store.ErrAlreadyExists) {
		t.Fatalf("got %v, want ErrAlreadyExists", err)
	}
}

func TestUpdateDraftReviewState(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	d := makeTestDraft("draft-1")
	if err := s.CreateDraft(ctx, d); err != nil {
		t.Fatalf("CreateDraft: %v", err)
	}

	d.Block1TeamID = "team-rac"
	d.Block2TeamID = "team-ast"
	d.Overrides = map[domain.SlotKey]string{
		{Block: 1, Slot: 1}: "player-9",
	}
	d.Status = domain.DraftStatusApplied
	applied := time.Now()
	d.AppliedAt = &applied
	d.UpdatedAt = applied

	if err := s.UpdateDraft(ctx, d); err != nil {
		t.Fatalf("UpdateDraft: %v", err)
	}

	got, err := s.GetDraft(ctx, "draft-1")
	if err != nil {
		t.Fatalf("GetDraft: %v", err)
	}
	if got.Block1TeamID != "team-rac" || got.Block2TeamID != "team-ast" {
		t.Errorf("sides: got %q, %q", got.Block1TeamID, got.Block2TeamID)
	}
	if got.Status != domain.DraftStatusApplied {
		t.Errorf("Status: got %q", got.Status)
	}
	if got.AppliedAt == nil {
		t.Fatal("AppliedAt: expected non-nil")
	}

	// Overrides round-trip through the "block:slot" JSON encoding.
	playerID, ok := got.Overrides[domain.SlotKey{Block: 1, Slot: 1}]
	if !ok || playerID != "player-9" {
		t.Errorf("Overrides: got %v", got.Overrides)
	}
}

func TestUpdateDraftNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateDraft(context.Background(), makeTestDraft("missing"))
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestDeleteDraft(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateDraft(ctx, makeTestDraft("draft-1")); err != nil {
		t.Fatalf("CreateDraft: %v", err)
	}
	if err := s.DeleteDraft(ctx, "draft-1"); err != nil {
		t.Fatalf("DeleteDraft: %v", err)
	}
	if _, err := s.GetDraft(ctx, "draft-1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound after delete", err)
	}
}

func TestListDraftsFiltersByStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	d1 := makeTestDraft("draft-1")
	d1.CreatedAt = time.Now().Add(-time.Hour)
	d2 := makeTestDraft("draft-2")
	d2.Status = domain.DraftStatusApplied

	for _, d := range []*domain.ExtractedDraft{d1, d2} {
		if err := s.CreateDraft(ctx, d); err != nil {
			t.Fatalf("CreateDraft(%s): %v", d.ID, err)
		}
	}

	pending, err := s.ListDrafts(ctx, domain.DraftStatusPending)
	if err != nil {
		t.Fatalf("ListDrafts(pending): %v", err)
	}
	if len(pending) != 1 || pending[0].ID != "draft-1" {
		t.Errorf("pending: got %d drafts", len(pending))
	}

	all, err := s.ListDrafts(ctx, "")
	if err != nil {
		t.Fatalf("ListDrafts(all): %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d drafts, want 2", len(all))
	}
	// Newest first.
	if all[0].ID != "draft-2" {
		t.Errorf("order: got %q first", all[0].ID)
	}
}
