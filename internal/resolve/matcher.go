package resolve

import (
	"strings"

	"github.com/clutchboard/clutchboard-server/internal/normalize"
)

// Match is a successful resolution of a raw nickname to a player.
type Match struct {
	PlayerID string
	TeamID   string
	Key      string // the indexed key that matched
	// LowConfidence is set when the matched player does not belong to the
	// hinted team. The match is a best-effort guess, not a guarantee; the
	// review surface must render it distinctly.
	LowConfidence bool
}

// Resolve maps a raw nickname to a player, preferring team-local matches.
//
// Stages:
//  1. Exact: a direct index hit returns immediately when there is no team
//     hint or the hit is on the hinted team. A cross-team exact hit is kept
//     only as a fallback, because team context is a strong disambiguating
//     signal for shared or lookalike nicknames.
//  2. Substring: every indexed key no longer than the nickname that the
//     nickname contains is a candidate. The length guard stops a stored key
//     longer than the nickname from ever matching ("johnathan" must not
//     match the nickname "john").
//
// A single candidate is returned even when it mismatches the hint: the best
// available answer beats none. Multiple candidates go through disambiguation.
func (ix *Index) Resolve(rawName, teamHint string) (Match, bool) {
	name := normalize.Nickname(rawName)
	if name == "" {
		return Match{}, false
	}

	var fallback *Entry
	if e, ok := ix.Lookup(name); ok {
		if teamHint == "" || e.TeamID == teamHint {
			return matchOf(e, teamHint), true
		}
		fallback = &e
	}

	var candidates []Entry
	for _, key := range ix.keys {
		if len(key) <= len(name) && strings.Contains(name, key) {
			candidates = append(candidates, ix.entries[key])
		}
	}

	switch len(candidates) {
	case 0:
		if fallback != nil {
			return matchOf(*fallback, teamHint), true
		}
		return Match{}, false
	case 1:
		return matchOf(candidates[0], teamHint), true
	default:
		return disambiguate(candidates, teamHint), true
	}
}

// disambiguate picks one entry from multiple substring candidates.
//
// Candidates on the hinted team are preferred; among several, the longest
// key wins (a more specific match beats a shorter one), with insertion
// order breaking exact length ties. When no candidate is on the hinted
// team the first candidate in index order is returned as a best-effort
// guess and flagged low-confidence by matchOf.
func disambiguate(candidates []Entry, teamHint string) Match {
	if teamHint != "" {
		var onTeam []Entry
		for _, c := range candidates {
			if c.TeamID == teamHint {
				onTeam = append(onTeam, c)
			}
		}
		if len(onTeam) > 0 {
			best := onTeam[0]
			for _, c := range onTeam[1:] {
				if len(c.Key) > len(best.Key) {
					best = c
				}
			}
			return matchOf(best, teamHint)
		}
	}
	return matchOf(candidates[0], teamHint)
}

// matchOf converts an entry to a Match, flagging cross-team resolutions.
func matchOf(e Entry, teamHint string) Match {
	return Match{
		PlayerID:      e.PlayerID,
		TeamID:        e.TeamID,
		Key:           e.Key,
		LowConfidence: teamHint != "" && e.TeamID != teamHint,
	}
}
