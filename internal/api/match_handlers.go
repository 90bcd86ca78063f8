package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clutchboard/clutchboard-server/internal/domain"
)

func (s *Server) registerMatchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listMatches",
		Method:      http.MethodGet,
		Path:        "/api/v1/matches",
		Summary:     "List matches",
		Description: "Returns committed matches, newest first",
		Tags:        []string{"Matches"},
	}, s.handleListMatches)

	huma.Register(s.api, huma.Operation{
		OperationID: "getMatch",
		Method:      http.MethodGet,
		Path:        "/api/v1/matches/{id}",
		Summary:     "Get match",
		Description: "Returns a match with its per-player stat lines",
		Tags:        []string{"Matches"},
	}, s.handleGetMatch)
}

// === DTOs ===

type MatchResponse struct {
	ID           string    `json:"id" doc:"Match ID"`
	DraftID      string    `json:"draft_id" doc:"Draft the match was committed from"`
	Team1ID      string    `json:"team1_id" doc:"Team on block 1"`
	Team2ID      string    `json:"team2_id" doc:"Team on block 2"`
	Team1Score   int       `json:"team1_score" doc:"Block 1 score"`
	Team2Score   int       `json:"team2_score" doc:"Block 2 score"`
	WinnerTeamID string    `json:"winner_team_id,omitempty" doc:"Winning team, empty on a draw"`
	PlayedAt     time.Time `json:"played_at" doc:"When the match was played"`
	CreatedAt    time.Time `json:"created_at" doc:"When the match was committed"`
}

type ListMatchesResponse struct {
	Matches []MatchResponse `json:"matches" doc:"List of matches"`
}

type ListMatchesOutput struct {
	Body ListMatchesResponse
}

type GetMatchInput struct {
	ID string `path:"id" doc:"Match ID"`
}

type MatchStatLine struct {
	PlayerID string `json:"player_id" doc:"Player ID"`
	TeamID   string `json:"team_id" doc:"Team the player represented"`
	Kills    int    `json:"kills" doc:"Kills"`
	Deaths   int    `json:"deaths" doc:"Deaths"`
	Assists  int    `json:"assists" doc:"Assists"`
}

type MatchDetailResponse struct {
	Match MatchResponse   `json:"match" doc:"Match result"`
	Stats []MatchStatLine `json:"stats" doc:"Per-player stat lines"`
}

type MatchDetailOutput struct {
	Body MatchDetailResponse
}

// === Handlers ===

func (s *Server) handleListMatches(ctx context.Context, _ *struct{}) (*ListMatchesOutput, error) {
	matches, err := s.services.Stats.ListMatches(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]MatchResponse, len(matches))
	for i, m := range matches {
		resp[i] = mapMatchResponse(m)
	}

	return &ListMatchesOutput{Body: ListMatchesResponse{Matches: resp}}, nil
}

func (s *Server) handleGetMatch(ctx context.Context, input *GetMatchInput) (*MatchDetailOutput, error) {
	detail, err := s.services.Stats.GetMatch(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	resp := MatchDetailResponse{Match: mapMatchResponse(detail.Match)}
	for _, line := range detail.Stats {
		resp.Stats = append(resp.Stats, MatchStatLine{
			PlayerID: line.PlayerID,
			TeamID:   line.TeamID,
			Kills:    line.Kills,
			Deaths:   line.Deaths,
			Assists:  line.Assists,
		})
	}

	return &MatchDetailOutput{Body: resp}, nil
}

// === Mappers ===

func mapMatchResponse(m *domain.MatchResult) MatchResponse {
	return MatchResponse{
		ID:           m.ID,
		DraftID:      m.DraftID,
		Team1ID:      m.Team1ID,
		Team2ID:      m.Team2ID,
		Team1Score:   m.Team1Score,
		Team2Score:   m.Team2Score,
		WinnerTeamID: m.WinnerTeamID,
		PlayedAt:     m.PlayedAt,
		CreatedAt:    m.CreatedAt,
	}
}
