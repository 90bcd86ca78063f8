package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	"github.com/clutchboard/clutchboard-server/internal/service"
)

func (s *Server) registerTeamRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listTeams",
		Method:      http.MethodGet,
		Path:        "/api/v1/teams",
		Summary:     "List teams",
		Description: "Returns all registered teams",
		Tags:        []string{"Teams"},
	}, s.handleListTeams)

	huma.Register(s.api, huma.Operation{
		OperationID: "createTeam",
		Method:      http.MethodPost,
		Path:        "/api/v1/teams",
		Summary:     "Create team",
		Description: "Registers a new team",
		Tags:        []string{"Teams"},
	}, s.handleCreateTeam)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTeam",
		Method:      http.MethodGet,
		Path:        "/api/v1/teams/{id}",
		Summary:     "Get team",
		Description: "Returns a team by ID",
		Tags:        []string{"Teams"},
	}, s.handleGetTeam)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateTeam",
		Method:      http.MethodPatch,
		Path:        "/api/v1/teams/{id}",
		Summary:     "Update team",
		Description: "Updates a team",
		Tags:        []string{"Teams"},
	}, s.handleUpdateTeam)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteTeam",
		Method:      http.MethodDelete,
		Path:        "/api/v1/teams/{id}",
		Summary:     "Delete team",
		Description: "Deletes a team without players",
		Tags:        []string{"Teams"},
	}, s.handleDeleteTeam)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTeamPlayers",
		Method:      http.MethodGet,
		Path:        "/api/v1/teams/{id}/players",
		Summary:     "Get team players",
		Description: "Returns the team's roster",
		Tags:        []string{"Teams"},
	}, s.handleGetTeamPlayers)
}

// === DTOs ===

type TeamResponse struct {
	ID        string    `json:"id" doc:"Team ID"`
	Name      string    `json:"name" doc:"Team name"`
	CreatedAt time.Time `json:"created_at" doc:"Creation time"`
	UpdatedAt time.Time `json:"updated_at" doc:"Last update time"`
}

type ListTeamsResponse struct {
	Teams []TeamResponse `json:"teams" doc:"List of teams"`
}

type ListTeamsOutput struct {
	Body ListTeamsResponse
}

type CreateTeamRequest struct {
	Name string `json:"name" doc:"Team name"`
}

type CreateTeamInput struct {
	Body CreateTeamRequest
}

type TeamOutput struct {
	Body TeamResponse
}

type GetTeamInput struct {
	ID string `path:"id" doc:"Team ID"`
}

type UpdateTeamRequest struct {
	Name *string `json:"name,omitempty" doc:"Team name"`
}

type UpdateTeamInput struct {
	ID   string `path:"id" doc:"Team ID"`
	Body UpdateTeamRequest
}

// === Handlers ===

func (s *Server) handleListTeams(ctx context.Context, _ *struct{}) (*ListTeamsOutput, error) {
	teams, err := s.services.Roster.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]TeamResponse, len(teams))
	for i, t := range teams {
		resp[i] = mapTeamResponse(t)
	}

	return &ListTeamsOutput{Body: ListTeamsResponse{Teams: resp}}, nil
}

func (s *Server) handleCreateTeam(ctx context.Context, input *CreateTeamInput) (*TeamOutput, error) {
	team, err := s.services.Roster.CreateTeam(ctx, service.CreateTeamRequest{
		Name: input.Body.Name,
	})
	if err != nil {
		return nil, err
	}

	return &TeamOutput{Body: mapTeamResponse(team)}, nil
}

func (s *Server) handleGetTeam(ctx context.Context, input *GetTeamInput) (*TeamOutput, error) {
	team, err := s.services.Roster.GetTeam(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &TeamOutput{Body: mapTeamResponse(team)}, nil
}

func (s *Server) handleUpdateTeam(ctx context.Context, input *UpdateTeamInput) (*TeamOutput, error) {
	team, err := s.services.Roster.UpdateTeam(ctx, input.ID, service.UpdateTeamRequest{
		Name: input.Body.Name,
	})
	if err != nil {
		return nil, err
	}

	return &TeamOutput{Body: mapTeamResponse(team)}, nil
}

func (s *Server) handleDeleteTeam(ctx context.Context, input *GetTeamInput) (*MessageOutput, error) {
	if err := s.services.Roster.DeleteTeam(ctx, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Team deleted"}}, nil
}

func (s *Server) handleGetTeamPlayers(ctx context.Context, input *GetTeamInput) (*ListPlayersOutput, error) {
	if _, err := s.services.Roster.GetTeam(ctx, input.ID); err != nil {
		return nil, err
	}

	players, err := s.services.Roster.ListPlayers(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	resp := make([]PlayerResponse, len(players))
	for i, p := range players {
		resp[i] = mapPlayerResponse(p)
	}

	return &ListPlayersOutput{Body: ListPlayersResponse{Players: resp}}, nil
}

// === Mappers ===

func mapTeamResponse(t *domain.Team) TeamResponse {
	return TeamResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
