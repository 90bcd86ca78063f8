// Package search provides full-text roster search using Bleve. It powers the
// operator-facing player picker: when a slot needs manual mapping, the
// operator types a few characters and gets ranked player suggestions. It is a
// suggestion surface only; the resolution engine never consults it.
package search

import (
	"github.com/clutchboard/clutchboard-server/internal/domain"
)

// DocType represents the type of document in the unified index.
type DocType string

// Document types for the search index.
const (
	DocTypePlayer DocType = "player"
	DocTypeTeam   DocType = "team"
)

// SearchDocument is the unified document structure for the Bleve index.
// Alias values are denormalized into player documents so a query against a
// learned nickname surfaces its player in one search.
type SearchDocument struct {
	ID   string  `json:"id"`
	Type DocType `json:"type"`

	// Player: display name. Team: team name.
	Name string `json:"name"`

	// Player-specific fields (empty for teams).
	TeamID   string   `json:"team_id,omitempty"`
	TeamName string   `json:"team_name,omitempty"` // Denormalized for search
	Aliases  []string `json:"aliases,omitempty"`   // Normalized alias values

	CreatedAt int64 `json:"created_at"` // Unix millis
	UpdatedAt int64 `json:"updated_at"` // Unix millis
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our
// mapping uses lowercase names, so we convert explicitly.
func (d *SearchDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":         d.ID,
		"type":       string(d.Type),
		"name":       d.Name,
		"created_at": d.CreatedAt,
		"updated_at": d.UpdatedAt,
	}

	if d.TeamID != "" {
		m["team_id"] = d.TeamID
	}
	if d.TeamName != "" {
		m["team_name"] = d.TeamName
	}
	if len(d.Aliases) > 0 {
		m["aliases"] = d.Aliases
	}

	return m
}

// PlayerToSearchDocument converts a domain Player to a SearchDocument.
// The team name and alias values are denormalized by the caller, as the
// search package doesn't depend on store.
func PlayerToSearchDocument(p *domain.Player, teamName string, aliases []string) *SearchDocument {
	return &SearchDocument{
		ID:        p.ID,
		Type:      DocTypePlayer,
		Name:      p.Name,
		TeamID:    p.TeamID,
		TeamName:  teamName,
		Aliases:   aliases,
		CreatedAt: p.CreatedAt.UnixMilli(),
		UpdatedAt: p.UpdatedAt.UnixMilli(),
	}
}

// TeamToSearchDocument converts a domain Team to a SearchDocument.
func TeamToSearchDocument(t *domain.Team) *SearchDocument {
	return &SearchDocument{
		ID:        t.ID,
		Type:      DocTypeTeam,
		Name:      t.Name,
		CreatedAt: t.CreatedAt.UnixMilli(),
		UpdatedAt: t.UpdatedAt.UnixMilli(),
	}
}
