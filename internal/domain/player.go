package domain

// Player is a registered player. Every player belongs to exactly one team.
type Player struct {
	Model
	Name   string `json:"name"`
	TeamID string `json:"team_id"`
}
