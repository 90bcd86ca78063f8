package domain

import "time"

// MatchResult is a committed match: the product of applying a reviewed draft.
type MatchResult struct {
	ID           string    `json:"id"`
	DraftID      string    `json:"draft_id"`
	Team1ID      string    `json:"team1_id"`
	Team2ID      string    `json:"team2_id"`
	Team1Score   int       `json:"team1_score"`
	Team2Score   int       `json:"team2_score"`
	WinnerTeamID string    `json:"winner_team_id,omitempty"`
	PlayedAt     time.Time `json:"played_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// PlayerMatchStat is one resolved player's line in a committed match.
// Slots that never resolved to a player produce no stat row.
type PlayerMatchStat struct {
	MatchID  string `json:"match_id"`
	PlayerID string `json:"player_id"`
	TeamID   string `json:"team_id"`
	Kills    int    `json:"kills"`
	Deaths   int    `json:"deaths"`
	Assists  int    `json:"assists"`
}

// PlayerStatTotals aggregates a player's committed statistics.
type PlayerStatTotals struct {
	PlayerID string `json:"player_id"`
	Matches  int    `json:"matches"`
	Kills    int    `json:"kills"`
	Deaths   int    `json:"deaths"`
	Assists  int    `json:"assists"`
}
