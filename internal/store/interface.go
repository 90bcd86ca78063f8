// Package store defines the persistence interface for the Clutchboard server.
package store

import (
	"context"

	"github.com/clutchboard/clutchboard-server/internal/domain"
)

// Store defines the interface for all persistence operations.
type Store interface {
	// Lifecycle
	Close() error

	// Teams
	CreateTeam(ctx context.Context, team *domain.Team) error
	GetTeam(ctx context.Context, id string) (*domain.Team, error)
	UpdateTeam(ctx context.Context, team *domain.Team) error
	DeleteTeam(ctx context.Context, id string) error
	ListTeams(ctx context.Context) ([]*domain.Team, error)

	// Players
	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayer(ctx context.Context, id string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, player *domain.Player) error
	DeletePlayer(ctx context.Context, id string) error
	ListPlayers(ctx context.Context) ([]*domain.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID string) ([]*domain.Player, error)

	// Aliases
	CreateAlias(ctx context.Context, alias *domain.Alias) error
	GetAliasByPlayerAndValue(ctx context.Context, playerID, value string) (*domain.Alias, error)
	DeleteAlias(ctx context.Context, id string) error
	ListAliases(ctx context.Context) ([]*domain.Alias, error)
	ListAliasesByPlayer(ctx context.Context, playerID string) ([]*domain.Alias, error)

	// Drafts
	CreateDraft(ctx context.Context, draft *domain.ExtractedDraft) error
	GetDraft(ctx context.Context, id string) (*domain.ExtractedDraft, error)
	UpdateDraft(ctx context.Context, draft *domain.ExtractedDraft) error
	DeleteDraft(ctx context.Context, id string) error
	ListDrafts(ctx context.Context, status domain.DraftStatus) ([]*domain.ExtractedDraft, error)

	// Matches and statistics
	CreateMatch(ctx context.Context, match *domain.MatchResult, stats []domain.PlayerMatchStat) error
	GetMatch(ctx context.Context, id string) (*domain.MatchResult, error)
	ListMatches(ctx context.Context) ([]*domain.MatchResult, error)
	ListMatchStats(ctx context.Context, matchID string) ([]domain.PlayerMatchStat, error)
	GetPlayerStatTotals(ctx context.Context, playerID string) (*domain.PlayerStatTotals, error)
}
