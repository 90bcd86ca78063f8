package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// SearchParams configures a search query.
type SearchParams struct {
	Query string   // User's search query
	Types []string // Document types to include (empty = all)

	// Filters
	TeamID string // Restrict player hits to one team

	// Pagination
	Limit  int
	Offset int
}

// DefaultSearchParams returns sensible defaults.
func DefaultSearchParams() SearchParams {
	return SearchParams{
		Limit:  20,
		Offset: 0,
	}
}

// SearchResult represents the search results.
type SearchResult struct {
	Query  string      `json:"query"`
	Total  uint64      `json:"total"`
	TookMs int64       `json:"took_ms"`
	Hits   []SearchHit `json:"hits"`
}

// SearchHit represents a single search result.
type SearchHit struct {
	ID       string   `json:"id"`
	Type     DocType  `json:"type"`
	Score    float64  `json:"score"`
	Name     string   `json:"name"`
	TeamID   string   `json:"team_id,omitempty"`
	TeamName string   `json:"team_name,omitempty"`
	Aliases  []string `json:"aliases,omitempty"`
}

// Search executes a search query.
func (s *SearchIndex) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	searchQuery := buildSearchQuery(params)

	searchRequest := bleve.NewSearchRequestOptions(searchQuery, params.Limit, params.Offset, false)
	searchRequest.Fields = []string{"id", "type", "name", "team_id", "team_name", "aliases"}

	searchResult, err := s.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &SearchResult{
		Query:  params.Query,
		Total:  searchResult.Total,
		TookMs: searchResult.Took.Milliseconds(),
		Hits:   make([]SearchHit, 0, len(searchResult.Hits)),
	}

	for _, hit := range searchResult.Hits {
		searchHit := SearchHit{
			ID:    hit.ID,
			Score: hit.Score,
		}

		if t, ok := hit.Fields["type"].(string); ok {
			searchHit.Type = DocType(t)
		}
		if n, ok := hit.Fields["name"].(string); ok {
			searchHit.Name = n
		}
		if tid, ok := hit.Fields["team_id"].(string); ok {
			searchHit.TeamID = tid
		}
		if tn, ok := hit.Fields["team_name"].(string); ok {
			searchHit.TeamName = tn
		}
		// Bleve returns a bare string for single-valued array fields.
		switch v := hit.Fields["aliases"].(type) {
		case string:
			searchHit.Aliases = []string{v}
		case []interface{}:
			for _, a := range v {
				if s, ok := a.(string); ok {
					searchHit.Aliases = append(searchHit.Aliases, s)
				}
			}
		}

		result.Hits = append(result.Hits, searchHit)
	}

	return result, nil
}

// buildSearchQuery constructs the Bleve query from params.
func buildSearchQuery(params SearchParams) query.Query {
	var queries []query.Query

	// Main text query: exact alias term, name match, fuzzy for typos, and
	// prefix for autocomplete, combined with OR.
	if params.Query != "" {
		textQueries := []query.Query{}

		aliasTerm := bleve.NewTermQuery(strings.ToLower(strings.TrimSpace(params.Query)))
		aliasTerm.SetField("aliases")
		aliasTerm.SetBoost(4.0)
		textQueries = append(textQueries, aliasTerm)

		nameMatch := bleve.NewMatchQuery(params.Query)
		nameMatch.SetField("name")
		nameMatch.SetBoost(3.0)
		textQueries = append(textQueries, nameMatch)

		teamMatch := bleve.NewMatchQuery(params.Query)
		teamMatch.SetField("team_name")
		teamMatch.SetBoost(1.5)
		textQueries = append(textQueries, teamMatch)

		fuzzyQuery := bleve.NewFuzzyQuery(params.Query)
		fuzzyQuery.SetFuzziness(1)
		fuzzyQuery.SetField("name")
		fuzzyQuery.SetBoost(0.8)
		textQueries = append(textQueries, fuzzyQuery)

		if len(params.Query) >= 2 {
			prefixQuery := bleve.NewPrefixQuery(strings.ToLower(params.Query))
			prefixQuery.SetField("name")
			prefixQuery.SetBoost(0.5)
			textQueries = append(textQueries, prefixQuery)
		}

		queries = append(queries, bleve.NewDisjunctionQuery(textQueries...))
	}

	// Type filter
	if len(params.Types) > 0 {
		typeQueries := make([]query.Query, len(params.Types))
		for i, t := range params.Types {
			tq := bleve.NewTermQuery(t)
			tq.SetField("type")
			typeQueries[i] = tq
		}
		queries = append(queries, bleve.NewDisjunctionQuery(typeQueries...))
	}

	// Team filter
	if params.TeamID != "" {
		tq := bleve.NewTermQuery(params.TeamID)
		tq.SetField("team_id")
		queries = append(queries, tq)
	}

	if len(queries) == 0 {
		return bleve.NewMatchAllQuery()
	}
	if len(queries) == 1 {
		return queries[0]
	}
	return bleve.NewConjunctionQuery(queries...)
}
