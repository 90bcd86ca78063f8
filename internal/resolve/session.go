package resolve

import (
	"errors"
	"fmt"

	"github.com/clutchboard/clutchboard-server/internal/domain"
)

// ErrSidesUndetermined is returned when per-slot resolution is requested
// before the draft's team-side assignment is known. Matching a slot against
// its team of record is impossible until each block has a team.
var ErrSidesUndetermined = errors.New("team side assignment undetermined")

// ErrNoBlocks is returned for a draft without team blocks. That is a caller
// precondition violation, not a reviewable state.
var ErrNoBlocks = errors.New("draft has no team blocks")

// DuplicateAssignmentError reports an override that would map a player to
// two slots of the same team block. It identifies the clashing slot so the
// operator can see exactly which assignment is in the way.
type DuplicateAssignmentError struct {
	PlayerID string
	Existing domain.SlotKey
}

func (e *DuplicateAssignmentError) Error() string {
	return fmt.Sprintf("player %s is already assigned to slot %s", e.PlayerID, e.Existing)
}

// ResolveDraft computes the full slot mapping for a draft.
//
// It is a pure function of the draft, the session index, the operator's
// overrides, and the team-side assignment; callers recompute it on every
// input change instead of accumulating mutable session state. A manual
// override supersedes the automatic result for its slot unconditionally.
// Slots that resolve to nothing keep an empty PlayerID and are surfaced to
// the operator as needing manual mapping.
//
// No player appears twice within a block. Overrides claim their players
// first; an automatic match on a player already claimed in the block is
// demoted to unresolved, earlier slot wins between two automatic matches.
func ResolveDraft(draft *domain.ExtractedDraft, ix *Index, overrides map[domain.SlotKey]string, sides domain.SideAssignment) ([]domain.SlotMapping, error) {
	if len(draft.Blocks) == 0 {
		return nil, ErrNoBlocks
	}
	if !sides.Determined() {
		return nil, ErrSidesUndetermined
	}

	var mappings []domain.SlotMapping
	for b := 1; b <= len(draft.Blocks); b++ {
		block := draft.Block(b)
		teamID := sides.TeamFor(b)

		taken := make(map[string]bool, len(block.Players))
		for slot := range block.Players {
			if playerID, ok := overrides[domain.SlotKey{Block: b, Slot: slot}]; ok && playerID != "" {
				taken[playerID] = true
			}
		}

		for slot, record := range block.Players {
			key := domain.SlotKey{Block: b, Slot: slot}
			m := domain.SlotMapping{
				Key:     key,
				RawName: record.RawName,
				TeamID:  teamID,
			}

			if playerID, ok := overrides[key]; ok && playerID != "" {
				m.PlayerID = playerID
				m.Manual = true
			} else if match, ok := ix.Resolve(record.RawName, teamID); ok && !taken[match.PlayerID] {
				m.PlayerID = match.PlayerID
				m.MatchedAlias = match.Key
				m.LowConfidence = match.LowConfidence
				taken[match.PlayerID] = true
			}

			mappings = append(mappings, m)
		}
	}

	return mappings, nil
}

// CheckOverride validates that assigning playerID to the slot at key would
// not duplicate a player within the slot's block. The current mapping is
// consulted as-is, so manual overrides already present take precedence over
// automatic matches in conflict detection. Returns a
// *DuplicateAssignmentError naming the clashing slot; the caller leaves the
// prior assignment untouched on rejection.
func CheckOverride(mappings []domain.SlotMapping, key domain.SlotKey, playerID string) error {
	if playerID == "" {
		return nil
	}
	for _, m := range mappings {
		if m.Key.Block != key.Block || m.Key == key {
			continue
		}
		if m.PlayerID == playerID {
			return &DuplicateAssignmentError{PlayerID: playerID, Existing: m.Key}
		}
	}
	return nil
}

// blockLean summarizes which team a block's evidence points at.
type blockLean int

const (
	leanNone blockLean = iota
	leanFirst
	leanSecond
	leanMixed
)

// InferSides determines which real team corresponds to each extracted block
// from the players the blocks resolve to.
//
// Every raw name in a block is resolved under both team hints; a block leans
// toward a team when at least one of its slots lands on that team under its
// hint and none land on the other team under the other hint. Consistent
// leanings decide the assignment, and a single leaning block with a silent
// partner is accepted. Contradictory or absent evidence returns an
// undetermined assignment: the session never guesses, the operator decides.
func InferSides(draft *domain.ExtractedDraft, ix *Index, firstTeamID, secondTeamID string) domain.SideAssignment {
	if len(draft.Blocks) < domain.BlockCount {
		return domain.SideAssignment{}
	}

	lean1 := leanFor(draft.Block(1), ix, firstTeamID, secondTeamID)
	lean2 := leanFor(draft.Block(2), ix, firstTeamID, secondTeamID)

	switch {
	case lean1 == leanFirst && (lean2 == leanSecond || lean2 == leanNone):
		return domain.SideAssignment{Block1TeamID: firstTeamID, Block2TeamID: secondTeamID}
	case lean1 == leanSecond && (lean2 == leanFirst || lean2 == leanNone):
		return domain.SideAssignment{Block1TeamID: secondTeamID, Block2TeamID: firstTeamID}
	case lean1 == leanNone && lean2 == leanSecond:
		return domain.SideAssignment{Block1TeamID: firstTeamID, Block2TeamID: secondTeamID}
	case lean1 == leanNone && lean2 == leanFirst:
		return domain.SideAssignment{Block1TeamID: secondTeamID, Block2TeamID: firstTeamID}
	default:
		// Mixed evidence, both silent, or both leaning the same way.
		return domain.SideAssignment{}
	}
}

// leanFor counts confident resolutions of a block's names under each hint.
func leanFor(block *domain.ExtractedTeamBlock, ix *Index, firstTeamID, secondTeamID string) blockLean {
	var first, second int
	for _, record := range block.Players {
		if m, ok := ix.Resolve(record.RawName, firstTeamID); ok && m.TeamID == firstTeamID {
			first++
		}
		if m, ok := ix.Resolve(record.RawName, secondTeamID); ok && m.TeamID == secondTeamID {
			second++
		}
	}

	switch {
	case first > 0 && second == 0:
		return leanFirst
	case second > 0 && first == 0:
		return leanSecond
	case first == 0 && second == 0:
		return leanNone
	default:
		return leanMixed
	}
}
