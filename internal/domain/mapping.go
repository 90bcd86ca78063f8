package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotKey identifies one scoreboard position: a 1-based team block and a
// 0-based slot index within it.
type SlotKey struct {
	Block int `json:"block"`
	Slot  int `json:"slot"`
}

// String renders the key as "block:slot", the form used at storage boundaries.
func (k SlotKey) String() string {
	return fmt.Sprintf("%d:%d", k.Block, k.Slot)
}

// ParseSlotKey parses a "block:slot" string back into a SlotKey.
func ParseSlotKey(s string) (SlotKey, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return SlotKey{}, fmt.Errorf("invalid slot key %q", s)
	}
	block, err := strconv.Atoi(parts[0])
	if err != nil {
		return SlotKey{}, fmt.Errorf("invalid slot key %q: %w", s, err)
	}
	slot, err := strconv.Atoi(parts[1])
	if err != nil {
		return SlotKey{}, fmt.Errorf("invalid slot key %q: %w", s, err)
	}
	return SlotKey{Block: block, Slot: slot}, nil
}

// SlotMapping is the resolution result for one scoreboard slot.
// An empty PlayerID means the slot is unresolved and needs manual mapping;
// unresolved slots are excluded from statistics writes.
type SlotMapping struct {
	Key          SlotKey `json:"key"`
	RawName      string  `json:"raw_name"`
	PlayerID     string  `json:"player_id,omitempty"`
	TeamID       string  `json:"team_id,omitempty"` // team the slot's block is assigned to
	MatchedAlias string  `json:"matched_alias,omitempty"`
	Manual       bool    `json:"manual"` // true when an operator override produced PlayerID
	// LowConfidence marks a best-effort cross-team match: the resolved player
	// does not belong to the team the slot's block is assigned to. The review
	// surface renders these distinctly from confident matches.
	LowConfidence bool `json:"low_confidence,omitempty"`
}

// SideAssignment records which real team corresponds to each extracted block.
// Both fields are empty until the assignment is inferred or operator-supplied;
// per-slot resolution is impossible before then.
type SideAssignment struct {
	Block1TeamID string `json:"block1_team_id,omitempty"`
	Block2TeamID string `json:"block2_team_id,omitempty"`
}

// Determined reports whether both blocks have been assigned a team.
func (a SideAssignment) Determined() bool {
	return a.Block1TeamID != "" && a.Block2TeamID != ""
}

// TeamFor returns the team assigned to the given 1-based block.
func (a SideAssignment) TeamFor(block int) string {
	switch block {
	case 1:
		return a.Block1TeamID
	case 2:
		return a.Block2TeamID
	default:
		return ""
	}
}
