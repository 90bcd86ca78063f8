package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clutchboard/clutchboard-server/internal/search"
	"github.com/clutchboard/clutchboard-server/internal/store"
)

// SearchService keeps the roster search index in sync with the store and
// answers operator suggestion queries.
type SearchService struct {
	store  store.Store
	index  *search.SearchIndex
	logger *slog.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(store store.Store, index *search.SearchIndex, logger *slog.Logger) *SearchService {
	return &SearchService{store: store, index: index, logger: logger}
}

// Search runs a roster suggestion query.
func (s *SearchService) Search(ctx context.Context, params search.SearchParams) (*search.SearchResult, error) {
	if params.Limit <= 0 {
		params.Limit = search.DefaultSearchParams().Limit
	}
	return s.index.Search(ctx, params)
}

// ReindexAll rebuilds the search index from the full roster. Called on
// startup and after bulk roster edits.
func (s *SearchService) ReindexAll(ctx context.Context) error {
	if err := s.index.Rebuild(); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}

	teams, err := s.store.ListTeams(ctx)
	if err != nil {
		return err
	}
	teamNames := make(map[string]string, len(teams))
	var docs []*search.SearchDocument
	for _, t := range teams {
		teamNames[t.ID] = t.Name
		docs = append(docs, search.TeamToSearchDocument(t))
	}

	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return err
	}
	for _, p := range players {
		aliases, err := s.store.ListAliasesByPlayer(ctx, p.ID)
		if err != nil {
			return err
		}
		values := make([]string, 0, len(aliases))
		for _, a := range aliases {
			values = append(values, a.Value)
		}
		docs = append(docs, search.PlayerToSearchDocument(p, teamNames[p.TeamID], values))
	}

	if err := s.index.IndexDocuments(docs); err != nil {
		return fmt.Errorf("index roster: %w", err)
	}

	s.logger.Info("roster reindexed", "teams", len(teams), "players", len(players))
	return nil
}

// IndexPlayer refreshes one player's document after a roster or alias edit.
func (s *SearchService) IndexPlayer(ctx context.Context, playerID string) error {
	p, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	team, err := s.store.GetTeam(ctx, p.TeamID)
	if err != nil {
		return err
	}
	aliases, err := s.store.ListAliasesByPlayer(ctx, p.ID)
	if err != nil {
		return err
	}
	values := make([]string, 0, len(aliases))
	for _, a := range aliases {
		values = append(values, a.Value)
	}
	return s.index.IndexDocument(search.PlayerToSearchDocument(p, team.Name, values))
}

// RemovePlayer drops a player's document after deletion.
func (s *SearchService) RemovePlayer(playerID string) error {
	return s.index.DeleteDocument(playerID)
}
