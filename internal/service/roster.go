// Package service orchestrates domain operations over the store, the
// resolution engine, and the search index.
package service

import (
	"context"
	"log/slog"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	domainerrors "github.com/clutchboard/clutchboard-server/internal/errors"
	"github.com/clutchboard/clutchboard-server/internal/id"
	"github.com/clutchboard/clutchboard-server/internal/normalize"
	"github.com/clutchboard/clutchboard-server/internal/store"
	"github.com/clutchboard/clutchboard-server/internal/validation"
)

// RosterService orchestrates team, player, and alias management.
type RosterService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewRosterService creates a new roster service.
func NewRosterService(store store.Store, logger *slog.Logger) *RosterService {
	return &RosterService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// ListTeams returns all teams.
func (s *RosterService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.store.ListTeams(ctx)
}

// GetTeam returns a single team.
func (s *RosterService) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	return s.store.GetTeam(ctx, teamID)
}

// CreateTeamRequest contains fields for creating a team.
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CreateTeam creates a new team.
func (s *RosterService) CreateTeam(ctx context.Context, req CreateTeamRequest) (*domain.Team, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	teamID, err := id.Generate("team")
	if err != nil {
		return nil, err
	}

	team := &domain.Team{Name: req.Name}
	team.ID = teamID
	team.InitTimestamps()

	if err := s.store.CreateTeam(ctx, team); err != nil {
		return nil, err
	}

	s.logger.Info("team created", "id", teamID, "name", req.Name)
	return team, nil
}

// UpdateTeamRequest contains fields for updating a team.
type UpdateTeamRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

// UpdateTeam updates a team.
func (s *RosterService) UpdateTeam(ctx context.Context, teamID string, req UpdateTeamRequest) (*domain.Team, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	team, err := s.store.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	team.Touch()

	if err := s.store.UpdateTeam(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// DeleteTeam deletes a team. Teams with players cannot be deleted.
func (s *RosterService) DeleteTeam(ctx context.Context, teamID string) error {
	players, err := s.store.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if len(players) > 0 {
		return domainerrors.Conflictf("team %s still has %d players", teamID, len(players))
	}
	return s.store.DeleteTeam(ctx, teamID)
}

// ListPlayers returns players, optionally filtered by team.
func (s *RosterService) ListPlayers(ctx context.Context, teamID string) ([]*domain.Player, error) {
	if teamID != "" {
		return s.store.ListPlayersByTeam(ctx, teamID)
	}
	return s.store.ListPlayers(ctx)
}

// GetPlayer returns a single player.
func (s *RosterService) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return s.store.GetPlayer(ctx, playerID)
}

// CreatePlayerRequest contains fields for creating a player.
type CreatePlayerRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	TeamID string `json:"team_id" validate:"required"`
}

// CreatePlayer creates a new player on a team.
func (s *RosterService) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*domain.Player, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if _, err := s.store.GetTeam(ctx, req.TeamID); err != nil {
		return nil, err
	}

	playerID, err := id.Generate("player")
	if err != nil {
		return nil, err
	}

	player := &domain.Player{Name: req.Name, TeamID: req.TeamID}
	player.ID = playerID
	player.InitTimestamps()

	if err := s.store.CreatePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player created", "id", playerID, "name", req.Name, "team", req.TeamID)
	return player, nil
}

// UpdatePlayerRequest contains fields for updating a player.
type UpdatePlayerRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=100"`
	TeamID *string `json:"team_id"`
}

// UpdatePlayer updates a player's name or team membership.
func (s *RosterService) UpdatePlayer(ctx context.Context, playerID string, req UpdatePlayerRequest) (*domain.Player, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		player.Name = *req.Name
	}
	if req.TeamID != nil {
		if _, err := s.store.GetTeam(ctx, *req.TeamID); err != nil {
			return nil, err
		}
		player.TeamID = *req.TeamID
	}
	player.Touch()

	if err := s.store.UpdatePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// DeletePlayer removes a player and their aliases.
func (s *RosterService) DeletePlayer(ctx context.Context, playerID string) error {
	return s.store.DeletePlayer(ctx, playerID)
}

// ListAliases returns a player's aliases.
func (s *RosterService) ListAliases(ctx context.Context, playerID string) ([]*domain.Alias, error) {
	if _, err := s.store.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}
	return s.store.ListAliasesByPlayer(ctx, playerID)
}

// CreateAliasRequest contains fields for adding an alias to a player.
type CreateAliasRequest struct {
	Value string `json:"value" validate:"required,min=1,max=100"`
}

// CreateAlias adds an alias for a player. The value is normalized before
// storage; re-adding an existing (player, value) pair returns the existing
// alias unchanged.
func (s *RosterService) CreateAlias(ctx context.Context, playerID string, req CreateAliasRequest) (*domain.Alias, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if _, err := s.store.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	value := normalize.Nickname(req.Value)
	if value == "" {
		return nil, domainerrors.Validation("alias normalizes to an empty string")
	}

	if existing, err := s.store.GetAliasByPlayerAndValue(ctx, playerID, value); err == nil {
		return existing, nil
	}

	aliasID, err := id.Generate("alias")
	if err != nil {
		return nil, err
	}

	alias := domain.NewAlias(aliasID, playerID, value)
	if err := s.store.CreateAlias(ctx, alias); err != nil {
		return nil, err
	}

	s.logger.Info("alias created", "id", aliasID, "player", playerID, "value", value)
	return alias, nil
}

// DeleteAlias removes an alias from a player.
func (s *RosterService) DeleteAlias(ctx context.Context, aliasID string) error {
	return s.store.DeleteAlias(ctx, aliasID)
}
