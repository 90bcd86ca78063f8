package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	"github.com/clutchboard/clutchboard-server/internal/store"
)

// makeTestMatch creates a committed match between the standard test teams.
func makeTestMatch(id, draftID string) *domain.MatchResult {
	now := time.Now()
	return &domain.MatchResult{
		ID:           id,
		DraftID:      draftID,
		Team1ID:      "team-rac",
		Team2ID:      "team-ast",
		Team1Score:   13,
		Team2Score:   7,
		WinnerTeamID: "team-rac",
		PlayedAt:     now,
		CreatedAt:    now,
	}
}

func TestCreateAndGetMatch(t *testing.T) {
	s := newTestStore(t)
	seedRoster(t, s)
	ctx := context.Background()

	m := makeTestMatch("match-1", "draft-1")
	stats := []domain.PlayerMatchStat{
		{MatchID: "match-1", PlayerID: "player-1", TeamID: "team-rac", Kills: 20, Deaths: 12, Assists: 3},
		{MatchID: "match-1", PlayerID: "player-2", TeamID: "team-ast", Kills: 11, Deaths: 16, Assists: 2},
	}
	if err := s.CreateMatch(ctx, m, stats); err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}

	got, err := s.GetMatch(ctx, "match-1")
	if err != nil {
		t.Fatalf("GetMatch: %v", err)
	}
	if got.Team1Score != 13 || got.Team2Score != 7 || got.WinnerTeamID != "team-rac" {
		t.Errorf("got %+v", got)
	}

	rows, err := s.ListMatchStats(ctx, "match-1")
	if err != nil {
		t.Fatalf("ListMatchStats: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d stat rows, want 2", len(rows))
	}
	if rows[0].PlayerID != "player-1" || rows[0].Kills != 20 {
		t.Errorf("stat row: %+v", rows[0])
	}
}

func TestCreateMatchSameDraftTwice(t *testing.T) {
	s := newTestStore(t)
	seedRoster(t, s)
	ctx := context.Background()

	if err := s.CreateMatch(ctx, makeTestMatch("match-1", "draft-1"), nil); err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}
	err := s.CreateMatch(ctx, makeTestMatch("match-2", "draft-1"), nil)
	if !errors.Is(err, store.ErrAlreadyExists) {
		t.Fatalf("applying the same draft twice: got %v, want ErrAlreadyExists", err)
	}
}

func TestCreateMatchRollsBackOnBadStat(t *testing.T) {
	s := newTestStore(t)
	seedRoster(t, s)
	ctx := context.Background()

	stats := []domain.PlayerMatchStat{
		{MatchID: "match-1", PlayerID: "player-missing", TeamID: "team-rac", Kills: 1},
	}
	if err := s.CreateMatch(ctx, makeTestMatch("match-1", "draft-1"), stats); err == nil {
		t.Fatal("expected error for stat row with unknown player")
	}

	// The match insert must not survive the failed transaction.
	if _, err := s.GetMatch(ctx, "match-1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound after rollback", err)
	}
}

func TestGetPlayerStatTotals(t *testing.T) {
	s := newTestStore(t)
	seedRoster(t, s)
	ctx := context.Background()

	m1 := makeTestMatch("match-1", "draft-1")
	m2 := makeTestMatch("match-2", "draft-2")
	if err := s.CreateMatch(ctx, m1, []domain.PlayerMatchStat{
		{MatchID: "match-1", PlayerID: "player-1", TeamID: "team-rac", Kills: 20, Deaths: 12, Assists: 3},
	}); err != nil {
		t.Fatalf("CreateMatch(match-1): %v", err)
	}
	if err := s.CreateMatch(ctx, m2, []domain.PlayerMatchStat{
		{MatchID: "match-2", PlayerID: "player-1", TeamID: "team-rac", Kills: 10, Deaths: 8, Assists: 5},
	}); err != nil {
		t.Fatalf("CreateMatch(match-2): %v", err)
	}

	totals, err := s.GetPlayerStatTotals(ctx, "player-1")
	if err != nil {
		t.Fatalf("GetPlayerStatTotals: %v", err)
	}
	if totals.Matches != 2 || totals.Kills != 30 || totals.Deaths != 20 || totals.Assists != 8 {
		t.Errorf("got %+v", totals)
	}

	// A player with no stat rows gets zero totals, not an error.
	empty, err := s.GetPlayerStatTotals(ctx, "player-2")
	if err != nil {
		t.Fatalf("GetPlayerStatTotals(player-2): %v", err)
	}
	if empty.Matches != 0 || empty.Kills != 0 {
		t.Errorf("got %+v, want zero totals", empty)
	}
}

func TestListMatchesNewestFirst(t *testing.T) {
	s := newTestStore(t)
	seedRoster(t, s)
	ctx := context.Background()

	m1 := makeTestMatch("match-1", "draft-1")
	m1.PlayedAt = time.Now().Add(-time.Hour)
	m2 := makeTestMatch("match-2", "draft-2")

	if err := s.CreateMatch(ctx, m1, nil); err != nil {
		t.Fatalf("CreateMatch(match-1): %v", err)
	}
	if err := s.CreateMatch(ctx, m2, nil); err != nil {
		t.Fatalf("CreateMatch(match-2): %v", err)
	}

	matches, err := s.ListMatches(ctx)
	if err != nil {
		t.Fatalf("ListMatches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].ID != "match-2" {
		t.Errorf("order: got %q first", matches[0].ID)
	}
}
