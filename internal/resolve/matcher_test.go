package resolve

import (
	"testing"

	"github.com/clutchboard/clutchboard-server/internal/domain"
)

// racAstIndex builds the roster used by most matcher tests:
// Shadow (team-rac, no aliases) and Shadowfax (team-ast, alias "shadow_ast").
func racAstIndex() *Index {
	players := []domain.Player{
		player("p-shadow", "Shadow", "team-rac"),
		player("p-shadowfax", "Shadowfax", "team-ast"),
	}
	aliases := []domain.Alias{alias("p-shadowfax", "shadow_ast")}
	return BuildIndex(aliases, players)
}

func TestResolveExactMatchNoHint(t *testing.T) {
	ix := racAstIndex()

	m, ok := ix.Resolve("SHADOW", "")
	if !ok {
		t.Fatal("Resolve: no match")
	}
	if m.PlayerID != "p-shadow" {
		t.Errorf("got %s, want p-shadow", m.PlayerID)
	}
	if m.LowConfidence {
		t.Error("exact unhinted match must not be low-confidence")
	}
}

func TestResolveExactMatchCaseInsensitiveWithHint(t *testing.T) {
	ix := racAstIndex()

	m, ok := ix.Resolve("  SHADOW ", "team-rac")
	if !ok {
		t.Fatal("Resolve: no match")
	}
	if m.PlayerID != "p-shadow" {
		t.Errorf("got %s, want p-shadow", m.PlayerID)
	}
}

func TestResolveSubstringContainment(t *testing.T) {
	ix := racAstIndex()

	// "shadow_ast.pro" contains the alias "shadow_ast".
	m, ok := ix.Resolve("shadow_ast.pro", "team-ast")
	if !ok {
		t.Fatal("Resolve: no match")
	}
	if m.PlayerID != "p-shadowfax" {
		t.Errorf("got %s, want p-shadowfax", m.PlayerID)
	}
	if m.Key != "shadow_ast" {
		t.Errorf("matched key: got %q, want %q", m.Key, "shadow_ast")
	}
}

func TestResolveStoredKeyLongerThanNicknameNeverMatches(t *testing.T) {
	players := []domain.Player{player("p1", "x", "team-rac")}
	aliases := []domain.Alias{alias("p1", "johnathan")}
	ix := BuildIndex(aliases, players)

	if _, ok := ix.Resolve("john", ""); ok {
		t.Error("alias longer than the nickname must not match")
	}
}

func TestResolveTeamHintedBeatsCrossTeamExact(t *testing.T) {
	players := []domain.Player{
		player("p-a", "PlayerA", "team-x"),
		player("p-b", "foxy", "team-y"),
	}
	aliases := []domain.Alias{alias("p-a", "fox")}
	ix := BuildIndex(aliases, players)

	m, ok := ix.Resolve("foxy", "team-y")
	if !ok {
		t.Fatal("Resolve: no match")
	}
	if m.PlayerID != "p-b" {
		t.Errorf("team-local match must win: got %s, want p-b", m.PlayerID)
	}
	if m.LowConfidence {
		t.Error("same-team match must not be low-confidence")
	}
}

func TestResolveDisambiguationPrefersHintedTeam(t *testing.T) {
	players := []domain.Player{
		player("p-a", "PlayerA", "team-x"),
		player("p-b", "foxy", "team-y"),
	}
	aliases := []domain.Alias{alias("p-a", "fox")}
	ix := BuildIndex(aliases, players)

	// "foxy99" contains both "fox" (team-x) and "foxy" (team-y). The hint
	// filters the candidate set down to the team-y player.
	m, ok := ix.Resolve("foxy99", "team-y")
	if !ok {
		t.Fatal("Resolve: no match")
	}
	if m.PlayerID != "p-b" {
		t.Errorf("got %s, want p-b", m.PlayerID)
	}
}

func TestResolveSingleCandidateIgnoresHintMismatch(t *testing.T) {
	players := []domain.Player{player("p-a", "PlayerA", "team-x")}
	aliases := []domain.Alias{alias("p-a", "fox")}
	ix := BuildIndex(aliases, players)

	// Only one candidate exists and it is on the wrong team; the best
	// available answer is returned rather than nothing.
	m, ok := ix.Resolve("fox", "team-y")
	if !ok {
		t.Fatal("Resolve: no match")
	}
	if m.PlayerID != "p-a" {
		t.Errorf("got %s, want p-a", m.PlayerID)
	}
	if !m.LowConfidence {
		t.Error("cross-team match must be flagged low-confidence")
	}
}

func TestResolveLongestCandidateWinsTieBreak(t *testing.T) {
	players := []domain.Player{
		player("p-jon", "Jon", "team-rac"),
		player("p-jonreluht", "Someone", "team-rac"),
	}
	aliases := []domain.Alias{
		alias("p-jon", "jon"),
		alias("p-jonreluht", "jonreluht"),
	}
	ix := BuildIndex(aliases, players)

	m, ok := ix.Resolve("jonreluht.rac", "team-rac")
	if !ok {
		t.Fatal("Resolve: no match")
	}
	if m.PlayerID != "p-jonreluht" {
		t.Errorf("longest candidate must win: got %s, want p-jonreluht", m.PlayerID)
	}
}

func TestResolveFallbackToFirstCandidateOffTeam(t *testing.T) {
	players := []domain.Player{
		player("p-1", "One", "team-x"),
		player("p-2", "Two", "team-x"),
	}
	aliases := []domain.Alias{
		alias("p-1", "ace"),
		alias("p-2", "acer"),
	}
	ix := BuildIndex(aliases, players)

	// Both candidates are on team-x; the hint names team-y. The first
	// candidate in index order is returned as a best-effort guess.
	m, ok := ix.Resolve("acer99", "team-y")
	if !ok {
		t.Fatal("Resolve: no match")
	}
	if m.PlayerID != "p-1" {
		t.Errorf("got %s, want first candidate p-1", m.PlayerID)
	}
	if !m.LowConfidence {
		t.Error("off-team fallback must be flagged low-confidence")
	}
}

func TestResolveEmptyNickname(t *testing.T) {
	ix := racAstIndex()

	if _, ok := ix.Resolve("", "team-rac"); ok {
		t.Error("empty nickname must not match")
	}
	if _, ok := ix.Resolve("   \t ", ""); ok {
		t.Error("whitespace nickname must not match")
	}
}

func TestResolveNoMatch(t *testing.T) {
	ix := racAstIndex()

	if m, ok := ix.Resolve("completely-unknown", "team-rac"); ok {
		t.Errorf("expected no match, got %+v", m)
	}
}
