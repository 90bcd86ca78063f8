package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamCRUD(t *testing.T) {
	ts := setupTestServer(t)

	teamID := ts.createTestTeam(t, "Raccoons")

	resp := ts.api.Get("/api/v1/teams/" + teamID)
	require.Equal(t, http.StatusOK, resp.Code)
	team := decodeData[TeamResponse](t, resp.Body.Bytes())
	assert.Equal(t, "Raccoons", team.Name)

	resp = ts.api.Patch("/api/v1/teams/"+teamID, map[string]any{"name": "Space Raccoons"})
	require.Equal(t, http.StatusOK, resp.Code)
	team = decodeData[TeamResponse](t, resp.Body.Bytes())
	assert.Equal(t, "Space Raccoons", team.Name)

	resp = ts.api.Get("/api/v1/teams")
	require.Equal(t, http.StatusOK, resp.Code)
	teams := decodeData[ListTeamsResponse](t, resp.Body.Bytes())
	assert.Len(t, teams.Teams, 1)

	resp = ts.api.Delete("/api/v1/teams/" + teamID)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/teams/" + teamID)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCreateTeamRejectsEmptyName(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/teams", map[string]any{"name": ""})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDeleteTeamWithPlayersReturnsConflict(t *testing.T) {
	ts := setupTestServer(t)

	teamID := ts.createTestTeam(t, "Raccoons")
	ts.createTestPlayer(t, "Shadow", teamID)

	resp := ts.api.Delete("/api/v1/teams/" + teamID)
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestPlayerLifecycleWithAliases(t *testing.T) {
	ts := setupTestServer(t)

	racID := ts.createTestTeam(t, "Raccoons")
	astID := ts.createTestTeam(t, "Astronauts")
	playerID := ts.createTestPlayer(t, "Shadowfax", astID)

	// Alias values are normalized before storage.
	resp := ts.api.Post("/api/v1/players/"+playerID+"/aliases", map[string]any{
		"value": "  SHADOW_ast ",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	alias := decodeData[AliasResponse](t, resp.Body.Bytes())
	assert.Equal(t, "shadow_ast", alias.Value)

	// Re-adding the same alias is idempotent.
	resp = ts.api.Post("/api/v1/players/"+playerID+"/aliases", map[string]any{
		"value": "Shadow_AST",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	again := decodeData[AliasResponse](t, resp.Body.Bytes())
	assert.Equal(t, alias.ID, again.ID)

	resp = ts.api.Get("/api/v1/players/" + playerID + "/aliases")
	require.Equal(t, http.StatusOK, resp.Code)
	aliases := decodeData[ListAliasesResponse](t, resp.Body.Bytes())
	assert.Len(t, aliases.Aliases, 1)

	// Move the player to the other team.
	resp = ts.api.Patch("/api/v1/players/"+playerID, map[string]any{"team_id": racID})
	require.Equal(t, http.StatusOK, resp.Code)
	player := decodeData[PlayerResponse](t, resp.Body.Bytes())
	assert.Equal(t, racID, player.TeamID)

	resp = ts.api.Get("/api/v1/teams/" + racID + "/players")
	require.Equal(t, http.StatusOK, resp.Code)
	roster := decodeData[ListPlayersResponse](t, resp.Body.Bytes())
	assert.Len(t, roster.Players, 1)

	resp = ts.api.Delete("/api/v1/players/" + playerID + "/aliases/" + alias.ID)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Delete("/api/v1/players/" + playerID)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/players/" + playerID)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCreatePlayerOnMissingTeam(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/players", map[string]any{
		"name":    "Shadow",
		"team_id": "team-missing",
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListPlayersFilteredByTeam(t *testing.T) {
	ts := setupTestServer(t)

	racID := ts.createTestTeam(t, "Raccoons")
	astID := ts.createTestTeam(t, "Astronauts")
	ts.createTestPlayer(t, "Shadow", racID)
	ts.createTestPlayer(t, "Blitz", racID)
	ts.createTestPlayer(t, "Viper", astID)

	resp := ts.api.Get("/api/v1/players?team_id=" + racID)
	require.Equal(t, http.StatusOK, resp.Code)
	players := decodeData[ListPlayersResponse](t, resp.Body.Bytes())
	assert.Len(t, players.Players, 2)

	resp = ts.api.Get("/api/v1/players")
	require.Equal(t, http.StatusOK, resp.Code)
	players = decodeData[ListPlayersResponse](t, resp.Body.Bytes())
	assert.Len(t, players.Players, 3)
}

func TestSearchFindsPlayerByAlias(t *testing.T) {
	ts := setupTestServer(t)

	teamID := ts.createTestTeam(t, "Astronauts")
	playerID := ts.createTestPlayer(t, "Shadowfax", teamID)

	resp := ts.api.Post("/api/v1/players/"+playerID+"/aliases", map[string]any{
		"value": "shadow_ast",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/search?q=shadow_ast")
	require.Equal(t, http.StatusOK, resp.Code)
	result := decodeData[SearchResponse](t, resp.Body.Bytes())
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, playerID, result.Hits[0].ID)
}
