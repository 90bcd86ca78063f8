// Package resolve implements the player-identity resolution engine: given a
// freeform, possibly decorated in-game nickname and a team context, it maps
// the nickname to a registered player deterministically and reproducibly.
//
// The engine is a pure computation over a snapshot of the roster and alias
// store taken at session start. Both the apply path and the interactive
// review surface go through this package, so there is exactly one copy of
// the matching rules.
package resolve

import (
	"github.com/clutchboard/clutchboard-server/internal/domain"
	"github.com/clutchboard/clutchboard-server/internal/normalize"
)

// Entry is one resolvable key in the index: a normalized alias or display
// name together with the owning player and that player's team.
type Entry struct {
	Key      string
	PlayerID string
	TeamID   string
}

// Index is the per-session lookup structure over aliases and display names.
// Keys retain insertion order so substring scans and fallback selection are
// deterministic; Go map iteration order is randomized and must never leak
// into resolution results.
type Index struct {
	entries map[string]Entry
	keys    []string
}

// BuildIndex constructs the session index from a roster snapshot.
//
// Construction order matters: explicit aliases are inserted first, then each
// player's normalized display name only if that key is still free. Explicit
// aliases represent confirmed human mappings and always win over
// name-derived entries, while a player with zero aliases remains resolvable
// by their own exact name. When two aliases collide on the same normalized
// key the earliest one wins; the loser still resolves at review time via
// the operator override path.
func BuildIndex(aliases []domain.Alias, players []domain.Player) *Index {
	ix := &Index{
		entries: make(map[string]Entry, len(aliases)+len(players)),
	}

	playerTeam := make(map[string]string, len(players))
	for _, p := range players {
		playerTeam[p.ID] = p.TeamID
	}

	for _, a := range aliases {
		key := normalize.Nickname(a.Value)
		if key == "" {
			continue
		}
		teamID, ok := playerTeam[a.PlayerID]
		if !ok {
			// Alias for a player no longer on the roster; skip.
			continue
		}
		ix.insert(key, a.PlayerID, teamID)
	}

	for _, p := range players {
		key := normalize.Nickname(p.Name)
		if key == "" {
			continue
		}
		if _, taken := ix.entries[key]; taken {
			continue
		}
		ix.insert(key, p.ID, p.TeamID)
	}

	return ix
}

// insert adds a key if absent. First writer wins.
func (ix *Index) insert(key, playerID, teamID string) {
	if _, exists := ix.entries[key]; exists {
		return
	}
	ix.entries[key] = Entry{Key: key, PlayerID: playerID, TeamID: teamID}
	ix.keys = append(ix.keys, key)
}

// Lookup returns the entry for an exact normalized key.
func (ix *Index) Lookup(key string) (Entry, bool) {
	e, ok := ix.entries[key]
	return e, ok
}

// Keys returns all indexed keys in insertion order.
func (ix *Index) Keys() []string {
	return ix.keys
}

// Len returns the number of indexed keys.
func (ix *Index) Len() int {
	return len(ix.keys)
}
