package domain

import "time"

// Alias maps a normalized in-game nickname to a registered player.
// Many aliases may reference the same player, and the same alias string may
// appear under different players (ambiguity is resolved at match time).
// Aliases grow over time as operators confirm manual mappings.
type Alias struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"player_id"`
	Value     string    `json:"value"` // normalized, see normalize.Nickname
	CreatedAt time.Time `json:"created_at"`
}

// NewAlias constructs an alias with the creation time set to now.
// The value must already be normalized.
func NewAlias(id, playerID, value string) *Alias {
	return &Alias{
		ID:        id,
		PlayerID:  playerID,
		Value:     value,
		CreatedAt: time.Now(),
	}
}
