package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	"github.com/clutchboard/clutchboard-server/internal/store"
)

// makeTestPlayer creates a domain.Player with sensible defaults for testing.
func makeTestPlayer(id, name, teamID string) *domain.Player {
	now := time.Now()
	p := &domain.Player{Name: name, TeamID: teamID}
	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
	return p
}

// seedTeams creates the two standard test teams.
func seedTeams(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	for _, tm := range []*domain.Team{
		makeTestTeam("team-rac", "Raccoons"),
		makeTestTeam("team-ast", "Asteroids"),
	} {
		if err := s.CreateTeam(ctx, tm); err != nil {
			t.Fatalf("CreateTeam(%s): %v", tm.ID, err)
		}
	}
}

func TestCreateAndGetPlayer(t *testing.T) {
	s := newTestStore(t)
	seedTeams(t, s)
	ctx := context.Background()

	p := makeTestPlayer("player-1", "Shadow", "team-rac")
	if err := s.CreatePlayer(ctx, p); err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}

	got, err := s.GetPlayer(ctx, "player-1")
	if err != nil {
		t.Fatalf("GetPlayer: %v", err)
	}
	if got.Name != "Shadow" || got.TeamID != "team-rac" {
		t.Errorf("got %+v", got)
	}
}

func TestCreatePlayerUnknownTeam(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.CreatePlayer(ctx, makeTestPlayer("player-1", "Shadow", "team-missing"))

	var serr *store.Error
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want *store.Error", err)
	}
	if serr.HTTPCode() != store.ErrInvalidInput.HTTPCode() {
		t.Errorf("code: got %d, want %d", serr.HTTPCode(), store.ErrInvalidInput.HTTPCode())
	}
}

func TestUpdatePlayerMovesTeam(t *testing.T) {
	s := newTestStore(t)
	seedTeams(t, s)
	ctx := context.Background()

	p := makeTestPlayer("player-1", "Shadow", "team-rac")
	if err := s.CreatePlayer(ctx, p); err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}

	p.TeamID = "team-ast"
	p.Touch()
	if err := s.UpdatePlayer(ctx, p); err != nil {
		t.Fatalf("UpdatePlayer: %v", err)
	}

	got, err := s.GetPlayer(ctx, "player-1")
	if err != nil {
		t.Fatalf("GetPlayer: %v", err)
	}
	if got.TeamID != "team-ast" {
		t.Errorf("TeamID: got %q, want team-ast", got.TeamID)
	}
}

func TestDeletePlayerCascadesAliases(t *testing.T) {
	s := newTestStore(t)
	seedTeams(t, s)
	ctx := context.Background()

	if err := s.CreatePlayer(ctx, makeTestPlayer("player-1", "Shadow", "team-rac")); err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}
	if err := s.CreateAlias(ctx, makeTestAlias("alias-1", "player-1", "shdw")); err != nil {
		t.Fatalf("CreateAlias: %v", err)
	}

	if err := s.DeletePlayer(ctx, "player-1"); err != nil {
		t.Fatalf("DeletePlayer: %v", err)
	}

	aliases, err := s.ListAliasesByPlayer(ctx, "player-1")
	if err != nil {
		t.Fatalf("ListAliasesByPlayer: %v", err)
	}
	if len(aliases) != 0 {
		t.Errorf("aliases must cascade on player delete, got %d rows", len(aliases))
	}
}

func TestListPlayersByTeam(t *testing.T) {
	s := newTestStore(t)
	seedTeams(t, s)
	ctx := context.Background()

	for _, p := range []*domain.Player{
		makeTestPlayer("player-1", "Shadow", "team-rac"),
		makeTestPlayer("player-2", "Blitz", "team-rac"),
		makeTestPlayer("player-3", "Shadowfax", "team-ast"),
	} {
		if err := s.CreatePlayer(ctx, p); err != nil {
			t.Fatalf("CreatePlayer(%s): %v", p.ID, err)
		}
	}

	players, err := s.ListPlayersByTeam(ctx, "team-rac")
	if err != nil {
		t.Fatalf("ListPlayersByTeam: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("got %d players, want 2", len(players))
	}
	// Sorted by name.
	if players[0].Name != "Blitz" || players[1].Name != "Shadow" {
		t.Errorf("order: got %q, %q", players[0].Name, players[1].Name)
	}

	all, err := s.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("ListPlayers: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d players, want 3", len(all))
	}
}
