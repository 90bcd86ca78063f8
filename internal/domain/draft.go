package domain

import "time"

// BlockCount is the number of team blocks in every extracted scoreboard.
const BlockCount = 2

// MaxPlayersPerBlock is this game's roster-size cap per side.
const MaxPlayersPerBlock = 5

// DraftStatus tracks a draft through the review workflow.
type DraftStatus string

const (
	// DraftStatusPending means the draft awaits operator review.
	DraftStatusPending DraftStatus = "pending"
	// DraftStatusApplied means the draft has been committed as official statistics.
	DraftStatusApplied DraftStatus = "applied"
)

// ExtractedPlayerRecord is one scoreboard row as captured by the vision model.
// RawName is kept exactly as extracted; it may carry clan tags, decorations,
// or emoji and is only interpreted through normalization.
type ExtractedPlayerRecord struct {
	RawName string `json:"raw_name"`
	Kills   int    `json:"kills"`
	Deaths  int    `json:"deaths"`
	Assists int    `json:"assists"`
}

// ExtractedTeamBlock is one side of an extracted scoreboard: up to five
// player rows plus the side's score total.
type ExtractedTeamBlock struct {
	Score   int                     `json:"score"`
	Players []ExtractedPlayerRecord `json:"players"`
}

// ExtractedDraft is one vision-extracted scoreboard pending human review.
// It is read-only source material: slot mappings are always recomputed from
// it rather than stored alongside it.
type ExtractedDraft struct {
	ID         string               `json:"id"`
	Blocks     []ExtractedTeamBlock `json:"blocks"` // exactly BlockCount entries
	WinnerSide int                  `json:"winner_side,omitempty"` // 1 or 2, 0 when unknown
	Confidence float64              `json:"confidence"`            // extractor confidence in [0,1]
	Status     DraftStatus          `json:"status"`

	// Operator review state, persisted between review requests.
	Block1TeamID string            `json:"block1_team_id,omitempty"`
	Block2TeamID string            `json:"block2_team_id,omitempty"`
	Overrides    map[SlotKey]string `json:"-"` // slot -> player ID, manual corrections

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	AppliedAt *time.Time `json:"applied_at,omitempty"`
}

// Block returns the 1-based block, or nil for an out-of-range number.
func (d *ExtractedDraft) Block(block int) *ExtractedTeamBlock {
	if block < 1 || block > len(d.Blocks) {
		return nil
	}
	return &d.Blocks[block-1]
}

// Sides returns the draft's persisted team-side assignment.
func (d *ExtractedDraft) Sides() SideAssignment {
	return SideAssignment{Block1TeamID: d.Block1TeamID, Block2TeamID: d.Block2TeamID}
}
