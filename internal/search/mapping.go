package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping creates the Bleve index mapping for roster documents.
//
// Nicknames and team names are short tokens, not prose, so text fields use
// the simple analyzer (lowercase, no stemming). Alias values are already
// normalized and must match exactly, so they use the keyword analyzer.
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = simple.Name

	docMapping := bleve.NewDocumentMapping()

	// Name field - primary search target.
	nameFieldMapping := bleve.NewTextFieldMapping()
	nameFieldMapping.Analyzer = simple.Name
	nameFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("name", nameFieldMapping)

	// Team name - searchable on player documents.
	teamNameFieldMapping := bleve.NewTextFieldMapping()
	teamNameFieldMapping.Analyzer = simple.Name
	teamNameFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("team_name", teamNameFieldMapping)

	// Aliases - normalized values, exact tokens.
	aliasesFieldMapping := bleve.NewTextFieldMapping()
	aliasesFieldMapping.Analyzer = keyword.Name
	aliasesFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("aliases", aliasesFieldMapping)

	// --- Keyword fields (exact match, filterable) ---

	typeFieldMapping := bleve.NewTextFieldMapping()
	typeFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("type", typeFieldMapping)

	idFieldMapping := bleve.NewTextFieldMapping()
	idFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("id", idFieldMapping)

	teamIDFieldMapping := bleve.NewTextFieldMapping()
	teamIDFieldMapping.Analyzer = keyword.Name
	teamIDFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("team_id", teamIDFieldMapping)

	// --- Numeric fields (sorting) ---

	createdAtFieldMapping := bleve.NewNumericFieldMapping()
	createdAtFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("created_at", createdAtFieldMapping)

	updatedAtFieldMapping := bleve.NewNumericFieldMapping()
	updatedAtFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("updated_at", updatedAtFieldMapping)

	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}
