package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clutchboard/clutchboard-server/internal/search"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search roster",
		Description: "Searches players and teams by name or alias",
		Tags:        []string{"Search"},
	}, s.handleSearch)

	huma.Register(s.api, huma.Operation{
		OperationID: "reindexSearch",
		Method:      http.MethodPost,
		Path:        "/api/v1/search/reindex",
		Summary:     "Rebuild search index",
		Description: "Rebuilds the search index from the full roster",
		Tags:        []string{"Search"},
	}, s.handleReindexSearch)
}

// === DTOs ===

type SearchInput struct {
	Query  string `query:"q" doc:"Search query; empty lists everything"`
	Type   string `query:"type" doc:"Restrict to one document type (player or team)"`
	TeamID string `query:"team_id" doc:"Restrict player hits to one team"`
	Limit  int    `query:"limit" doc:"Maximum hits to return" minimum:"0" maximum:"100"`
	Offset int    `query:"offset" doc:"Hits to skip for pagination" minimum:"0"`
}

type SearchHit struct {
	ID       string   `json:"id" doc:"Document ID"`
	Type     string   `json:"type" doc:"player or team"`
	Score    float64  `json:"score" doc:"Relevance score"`
	Name     string   `json:"name" doc:"Display name"`
	TeamID   string   `json:"team_id,omitempty" doc:"Team ID for player hits"`
	TeamName string   `json:"team_name,omitempty" doc:"Team name for player hits"`
	Aliases  []string `json:"aliases,omitempty" doc:"Learned aliases for player hits"`
}

type SearchResponse struct {
	Query  string      `json:"query" doc:"Echoed query"`
	Total  uint64      `json:"total" doc:"Total matching documents"`
	TookMs int64       `json:"took_ms" doc:"Search duration in milliseconds"`
	Hits   []SearchHit `json:"hits" doc:"Ranked hits"`
}

type SearchOutput struct {
	Body SearchResponse
}

// === Handlers ===

func (s *Server) handleSearch(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	params := search.SearchParams{
		Query:  input.Query,
		TeamID: input.TeamID,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if input.Type != "" {
		params.Types = []string{input.Type}
	}

	result, err := s.services.Search.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	resp := SearchResponse{
		Query:  result.Query,
		Total:  result.Total,
		TookMs: result.TookMs,
		Hits:   make([]SearchHit, 0, len(result.Hits)),
	}
	for _, hit := range result.Hits {
		resp.Hits = append(resp.Hits, SearchHit{
			ID:       hit.ID,
			Type:     string(hit.Type),
			Score:    hit.Score,
			Name:     hit.Name,
			TeamID:   hit.TeamID,
			TeamName: hit.TeamName,
			Aliases:  hit.Aliases,
		})
	}

	return &SearchOutput{Body: resp}, nil
}

func (s *Server) handleReindexSearch(ctx context.Context, _ *struct{}) (*MessageOutput, error) {
	if err := s.services.Search.ReindexAll(ctx); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Roster reindexed"}}, nil
}
