package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	"github.com/clutchboard/clutchboard-server/internal/service"
)

func (s *Server) registerPlayerRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listPlayers",
		Method:      http.MethodGet,
		Path:        "/api/v1/players",
		Summary:     "List players",
		Description: "Returns registered players, optionally filtered by team",
		Tags:        []string{"Players"},
	}, s.handleListPlayers)

	huma.Register(s.api, huma.Operation{
		OperationID: "createPlayer",
		Method:      http.MethodPost,
		Path:        "/api/v1/players",
		Summary:     "Create player",
		Description: "Registers a new player on a team",
		Tags:        []string{"Players"},
	}, s.handleCreatePlayer)

	huma.Register(s.api, huma.Operation{
		OperationID: "getPlayer",
		Method:      http.MethodGet,
		Path:        "/api/v1/players/{id}",
		Summary:     "Get player",
		Description: "Returns a player by ID",
		Tags:        []string{"Players"},
	}, s.handleGetPlayer)

	huma.Register(s.api, huma.Operation{
		OperationID: "updatePlayer",
		Method:      http.MethodPatch,
		Path:        "/api/v1/players/{id}",
		Summary:     "Update player",
		Description: "Updates a player's name or team",
		Tags:        []string{"Players"},
	}, s.handleUpdatePlayer)

	huma.Register(s.api, huma.Operation{
		OperationID: "deletePlayer",
		Method:      http.MethodDelete,
		Path:        "/api/v1/players/{id}",
		Summary:     "Delete player",
		Description: "Removes a player and their aliases",
		Tags:        []string{"Players"},
	}, s.handleDeletePlayer)

	huma.Register(s.api, huma.Operation{
		OperationID: "listPlayerAliases",
		Method:      http.MethodGet,
		Path:        "/api/v1/players/{id}/aliases",
		Summary:     "List player aliases",
		Description: "Returns the player's learned nickname aliases",
		Tags:        []string{"Aliases"},
	}, s.handleListPlayerAliases)

	huma.Register(s.api, huma.Operation{
		OperationID: "createPlayerAlias",
		Method:      http.MethodPost,
		Path:        "/api/v1/players/{id}/aliases",
		Summary:     "Create player alias",
		Description: "Adds a nickname alias; the value is normalized before storage",
		Tags:        []string{"Aliases"},
	}, s.handleCreatePlayerAlias)

	huma.Register(s.api, huma.Operation{
		OperationID: "deletePlayerAlias",
		Method:      http.MethodDelete,
		Path:        "/api/v1/players/{id}/aliases/{aliasID}",
		Summary:     "Delete player alias",
		Description: "Removes a nickname alias",
		Tags:        []string{"Aliases"},
	}, s.handleDeletePlayerAlias)

	huma.Register(s.api, huma.Operation{
		OperationID: "getPlayerStats",
		Method:      http.MethodGet,
		Path:        "/api/v1/players/{id}/stats",
		Summary:     "Get player stats",
		Description: "Returns the player's aggregated match statistics",
		Tags:        []string{"Stats"},
	}, s.handleGetPlayerStats)
}

// === DTOs ===

type PlayerResponse struct {
	ID        string    `json:"id" doc:"Player ID"`
	Name      string    `json:"name" doc:"Player name"`
	TeamID    string    `json:"team_id" doc:"Team the player belongs to"`
	CreatedAt time.Time `json:"created_at" doc:"Creation time"`
	UpdatedAt time.Time `json:"updated_at" doc:"Last update time"`
}

type ListPlayersResponse struct {
	Players []PlayerResponse `json:"players" doc:"List of players"`
}

type ListPlayersInput struct {
	TeamID string `query:"team_id" doc:"Restrict to one team"`
}

type ListPlayersOutput struct {
	Body ListPlayersResponse
}

type CreatePlayerRequest struct {
	Name   string `json:"name" doc:"Player name"`
	TeamID string `json:"team_id" doc:"Team ID"`
}

type CreatePlayerInput struct {
	Body CreatePlayerRequest
}

type PlayerOutput struct {
	Body PlayerResponse
}

type GetPlayerInput struct {
	ID string `path:"id" doc:"Player ID"`
}

type UpdatePlayerRequest struct {
	Name   *string `json:"name,omitempty" doc:"Player name"`
	TeamID *string `json:"team_id,omitempty" doc:"Team ID"`
}

type UpdatePlayerInput struct {
	ID   string `path:"id" doc:"Player ID"`
	Body UpdatePlayerRequest
}

type AliasResponse struct {
	ID        string    `json:"id" doc:"Alias ID"`
	PlayerID  string    `json:"player_id" doc:"Player the alias maps to"`
	Value     string    `json:"value" doc:"Normalized nickname"`
	CreatedAt time.Time `json:"created_at" doc:"Creation time"`
}

type ListAliasesResponse struct {
	Aliases []AliasResponse `json:"aliases" doc:"List of aliases"`
}

type ListAliasesOutput struct {
	Body ListAliasesResponse
}

type CreateAliasRequest struct {
	Value string `json:"value" doc:"Nickname to learn, normalized before storage"`
}

type CreateAliasInput struct {
	ID   string `path:"id" doc:"Player ID"`
	Body CreateAliasRequest
}

type AliasOutput struct {
	Body AliasResponse
}

type DeleteAliasInput struct {
	ID      string `path:"id" doc:"Player ID"`
	AliasID string `path:"aliasID" doc:"Alias ID"`
}

type PlayerStatsResponse struct {
	PlayerID string `json:"player_id" doc:"Player ID"`
	Matches  int    `json:"matches" doc:"Committed matches played"`
	Kills    int    `json:"kills" doc:"Total kills"`
	Deaths   int    `json:"deaths" doc:"Total deaths"`
	Assists  int    `json:"assists" doc:"Total assists"`
}

type PlayerStatsOutput struct {
	Body PlayerStatsResponse
}

// === Handlers ===

func (s *Server) handleListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	players, err := s.services.Roster.ListPlayers(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	resp := make([]PlayerResponse, len(players))
	for i, p := range players {
		resp[i] = mapPlayerResponse(p)
	}

	return &ListPlayersOutput{Body: ListPlayersResponse{Players: resp}}, nil
}

func (s *Server) handleCreatePlayer(ctx context.Context, input *CreatePlayerInput) (*PlayerOutput, error) {
	player, err := s.services.Roster.CreatePlayer(ctx, service.CreatePlayerRequest{
		Name:   input.Body.Name,
		TeamID: input.Body.TeamID,
	})
	if err != nil {
		return nil, err
	}

	s.indexPlayer(ctx, player.ID)
	return &PlayerOutput{Body: mapPlayerResponse(player)}, nil
}

func (s *Server) handleGetPlayer(ctx context.Context, input *GetPlayerInput) (*PlayerOutput, error) {
	player, err := s.services.Roster.GetPlayer(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &PlayerOutput{Body: mapPlayerResponse(player)}, nil
}

func (s *Server) handleUpdatePlayer(ctx context.Context, input *UpdatePlayerInput) (*PlayerOutput, error) {
	player, err := s.services.Roster.UpdatePlayer(ctx, input.ID, service.UpdatePlayerRequest{
		Name:   input.Body.Name,
		TeamID: input.Body.TeamID,
	})
	if err != nil {
		return nil, err
	}

	s.indexPlayer(ctx, player.ID)
	return &PlayerOutput{Body: mapPlayerResponse(player)}, nil
}

func (s *Server) handleDeletePlayer(ctx context.Context, input *GetPlayerInput) (*MessageOutput, error) {
	if err := s.services.Roster.DeletePlayer(ctx, input.ID); err != nil {
		return nil, err
	}

	if err := s.services.Search.RemovePlayer(input.ID); err != nil {
		s.logger.Warn("failed to remove player from search index", "player", input.ID, "error", err)
	}

	return &MessageOutput{Body: MessageResponse{Message: "Player deleted"}}, nil
}

func (s *Server) handleListPlayerAliases(ctx context.Context, input *GetPlayerInput) (*ListAliasesOutput, error) {
	aliases, err := s.services.Roster.ListAliases(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	resp := make([]AliasResponse, len(aliases))
	for i, a := range aliases {
		resp[i] = mapAliasResponse(a)
	}

	return &ListAliasesOutput{Body: ListAliasesResponse{Aliases: resp}}, nil
}

func (s *Server) handleCreatePlayerAlias(ctx context.Context, input *CreateAliasInput) (*AliasOutput, error) {
	alias, err := s.services.Roster.CreateAlias(ctx, input.ID, service.CreateAliasRequest{
		Value: input.Body.Value,
	})
	if err != nil {
		return nil, err
	}

	s.indexPlayer(ctx, input.ID)
	return &AliasOutput{Body: mapAliasResponse(alias)}, nil
}

func (s *Server) handleDeletePlayerAlias(ctx context.Context, input *DeleteAliasInput) (*MessageOutput, error) {
	if err := s.services.Roster.DeleteAlias(ctx, input.AliasID); err != nil {
		return nil, err
	}

	s.indexPlayer(ctx, input.ID)
	return &MessageOutput{Body: MessageResponse{Message: "Alias deleted"}}, nil
}

func (s *Server) handleGetPlayerStats(ctx context.Context, input *GetPlayerInput) (*PlayerStatsOutput, error) {
	totals, err := s.services.Stats.GetPlayerTotals(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &PlayerStatsOutput{Body: PlayerStatsResponse{
		PlayerID: totals.PlayerID,
		Matches:  totals.Matches,
		Kills:    totals.Kills,
		Deaths:   totals.Deaths,
		Assists:  totals.Assists,
	}}, nil
}

// indexPlayer refreshes the player's search document after a roster edit.
// Index failures never fail the request; the next reindex repairs them.
func (s *Server) indexPlayer(ctx context.Context, playerID string) {
	if err := s.services.Search.IndexPlayer(ctx, playerID); err != nil {
		s.logger.Warn("failed to index player", "player", playerID, "error", err)
	}
}

// === Mappers ===

func mapPlayerResponse(p *domain.Player) PlayerResponse {
	return PlayerResponse{
		ID:        p.ID,
		Name:      p.Name,
		TeamID:    p.TeamID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func mapAliasResponse(a *domain.Alias) AliasResponse {
	return AliasResponse{
		ID:        a.ID,
		PlayerID:  a.PlayerID,
		Value:     a.Value,
		CreatedAt: a.CreatedAt,
	}
}
