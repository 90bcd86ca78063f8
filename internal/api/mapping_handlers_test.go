package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clutchboard/clutchboard-server/internal/domain"
)

// reviewFixture is a seeded roster plus one ingested draft ready for review.
type reviewFixture struct {
	RacID, AstID      string
	Shadow, Shadowfax string
	Viper             string
	DraftID           string
}

// setupReviewFixture seeds two teams, three players, one learned alias, and
// ingests a draft whose block 1 belongs to the Raccoons and block 2 to the
// Astronauts.
func setupReviewFixture(t *testing.T, ts *testServer) reviewFixture {
	t.Helper()

	f := reviewFixture{}
	f.RacID = ts.createTestTeam(t, "Raccoons")
	f.AstID = ts.createTestTeam(t, "Astronauts")
	f.Shadow = ts.createTestPlayer(t, "Shadow", f.RacID)
	f.Shadowfax = ts.createTestPlayer(t, "Shadowfax", f.AstID)
	f.Viper = ts.createTestPlayer(t, "Viper", f.AstID)

	resp := ts.api.Post("/api/v1/players/"+f.Shadowfax+"/aliases", map[string]any{
		"value": "shadow_ast",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Post("/api/v1/drafts", map[string]any{
		"blocks": []map[string]any{
			{
				"score": 13,
				"players": []map[string]any{
					{"raw_name": "SHADOW", "kills": 21, "deaths": 10, "assists": 4},
					{"raw_name": "mystery-guest", "kills": 8, "deaths": 14, "assists": 9},
				},
			},
			{
				"score": 7,
				"players": []map[string]any{
					{"raw_name": "shadow_ast.pro", "kills": 15, "deaths": 12, "assists": 3},
				},
			},
		},
		"winner_side": 1,
		"confidence":  0.92,
	})
	require.Equal(t, http.StatusOK, resp.Code, "ingest failed: %s", resp.Body.String())
	draft := decodeData[DraftResponse](t, resp.Body.Bytes())
	f.DraftID = draft.ID

	return f
}

// slotFor returns the mapping slot for a block/slot pair.
func slotFor(t *testing.T, m MappingResponse, block, slot int) domain.SlotMapping {
	t.Helper()
	for _, s := range m.Slots {
		if s.Key.Block == block && s.Key.Slot == slot {
			return s
		}
	}
	t.Fatalf("slot %d:%d not in mapping", block, slot)
	return domain.SlotMapping{}
}

func TestMappingRequiresSides(t *testing.T) {
	ts := setupTestServer(t)
	f := setupReviewFixture(t, ts)

	// "shadow_ast.pro" matches players on both teams depending on the team
	// hint, so side inference refuses to guess and the mapping stays empty.
	resp := ts.api.Get("/api/v1/drafts/" + f.DraftID + "/mapping")
	require.Equal(t, http.StatusOK, resp.Code)
	mapping := decodeData[MappingResponse](t, resp.Body.Bytes())
	assert.False(t, mapping.Sides.Determined())
	assert.Empty(t, mapping.Slots)
}

func TestReviewFlowEndToEnd(t *testing.T) {
	ts := setupTestServer(t)
	f := setupReviewFixture(t, ts)

	// Assign sides.
	resp := ts.api.Put("/api/v1/drafts/"+f.DraftID+"/sides", map[string]any{
		"block1_team_id": f.RacID,
		"block2_team_id": f.AstID,
	})
	require.Equal(t, http.StatusOK, resp.Code, "set sides failed: %s", resp.Body.String())
	mapping := decodeData[MappingResponse](t, resp.Body.Bytes())
	require.Len(t, mapping.Slots, 3)

	// Exact and alias-substring matches resolve automatically.
	assert.Equal(t, f.Shadow, slotFor(t, mapping, 1, 0).PlayerID)
	assert.Equal(t, f.Shadowfax, slotFor(t, mapping, 2, 0).PlayerID)
	assert.Equal(t, "shadow_ast", slotFor(t, mapping, 2, 0).MatchedAlias)

	// The unknown name stays unresolved.
	assert.Empty(t, slotFor(t, mapping, 1, 1).PlayerID)

	// Overriding the unresolved slot with a player already mapped in the
	// block is a conflict.
	resp = ts.api.Put("/api/v1/drafts/"+f.DraftID+"/slots/1/1", map[string]any{
		"player_id": f.Shadow,
	})
	assert.Equal(t, http.StatusConflict, resp.Code)

	// A fresh player is accepted and marked manual.
	resp = ts.api.Put("/api/v1/drafts/"+f.DraftID+"/slots/1/1", map[string]any{
		"player_id": f.Viper,
	})
	require.Equal(t, http.StatusOK, resp.Code, "override failed: %s", resp.Body.String())
	mapping = decodeData[MappingResponse](t, resp.Body.Bytes())
	slot := slotFor(t, mapping, 1, 1)
	assert.Equal(t, f.Viper, slot.PlayerID)
	assert.True(t, slot.Manual)

	// The confirmed raw name was learned as an alias.
	resp = ts.api.Get("/api/v1/players/" + f.Viper + "/aliases")
	require.Equal(t, http.StatusOK, resp.Code)
	aliases := decodeData[ListAliasesResponse](t, resp.Body.Bytes())
	require.Len(t, aliases.Aliases, 1)
	assert.Equal(t, "mystery-guest", aliases.Aliases[0].Value)

	// Apply commits the match.
	resp = ts.api.Post("/api/v1/drafts/" + f.DraftID + "/apply")
	require.Equal(t, http.StatusOK, resp.Code, "apply failed: %s", resp.Body.String())
	match := decodeData[MatchResponse](t, resp.Body.Bytes())
	assert.Equal(t, f.RacID, match.WinnerTeamID)
	assert.Equal(t, 13, match.Team1Score)
	assert.Equal(t, 7, match.Team2Score)

	// Applying twice is a conflict.
	resp = ts.api.Post("/api/v1/drafts/" + f.DraftID + "/apply")
	assert.Equal(t, http.StatusConflict, resp.Code)

	// The match detail carries the three resolved stat lines.
	resp = ts.api.Get("/api/v1/matches/" + match.ID)
	require.Equal(t, http.StatusOK, resp.Code)
	detail := decodeData[MatchDetailResponse](t, resp.Body.Bytes())
	assert.Len(t, detail.Stats, 3)

	// Player totals aggregate the committed stats.
	resp = ts.api.Get("/api/v1/players/" + f.Shadow + "/stats")
	require.Equal(t, http.StatusOK, resp.Code)
	totals := decodeData[PlayerStatsResponse](t, resp.Body.Bytes())
	assert.Equal(t, 1, totals.Matches)
	assert.Equal(t, 21, totals.Kills)
}

func TestClearOverrideRestoresAutomaticMapping(t *testing.T) {
	ts := setupTestServer(t)
	f := setupReviewFixture(t, ts)

	resp := ts.api.Put("/api/v1/drafts/"+f.DraftID+"/sides", map[string]any{
		"block1_team_id": f.RacID,
		"block2_team_id": f.AstID,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Put("/api/v1/drafts/"+f.DraftID+"/slots/2/0", map[string]any{
		"player_id": f.Viper,
	})
	require.Equal(t, http.StatusOK, resp.Code)
	mapping := decodeData[MappingResponse](t, resp.Body.Bytes())
	assert.Equal(t, f.Viper, slotFor(t, mapping, 2, 0).PlayerID)

	resp = ts.api.Delete("/api/v1/drafts/" + f.DraftID + "/slots/2/0")
	require.Equal(t, http.StatusOK, resp.Code)
	mapping = decodeData[MappingResponse](t, resp.Body.Bytes())
	slot := slotFor(t, mapping, 2, 0)
	assert.Equal(t, f.Shadowfax, slot.PlayerID)
	assert.False(t, slot.Manual)

	// Clearing a slot with no override is a 404.
	resp = ts.api.Delete("/api/v1/drafts/" + f.DraftID + "/slots/2/0")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSetSidesRejectsSameTeam(t *testing.T) {
	ts := setupTestServer(t)
	f := setupReviewFixture(t, ts)

	resp := ts.api.Put("/api/v1/drafts/"+f.DraftID+"/sides", map[string]any{
		"block1_team_id": f.RacID,
		"block2_team_id": f.RacID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestApplyRefusesUndeterminedSides(t *testing.T) {
	ts := setupTestServer(t)
	f := setupReviewFixture(t, ts)

	resp := ts.api.Post("/api/v1/drafts/" + f.DraftID + "/apply")
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestIngestRateLimit(t *testing.T) {
	ts := setupTestServerWithOptions(t, Options{
		CORSOrigins: []string{"*"},
		IngestRPS:   0.1,
		IngestBurst: 1,
	})

	body := map[string]any{
		"blocks": []map[string]any{
			{"score": 13, "players": []map[string]any{{"raw_name": "a"}}},
			{"score": 7, "players": []map[string]any{{"raw_name": "b"}}},
		},
		"confidence": 0.5,
	}

	resp := ts.api.Post("/api/v1/drafts", body)
	require.Equal(t, http.StatusOK, resp.Code, "first submission should pass: %s", resp.Body.String())

	resp = ts.api.Post("/api/v1/drafts", body)
	assert.Equal(t, http.StatusTooManyRequests, resp.Code)

	// Reads are not throttled.
	resp = ts.api.Get("/api/v1/drafts")
	assert.Equal(t, http.StatusOK, resp.Code)
}
