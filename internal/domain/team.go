package domain

// Team is one of the two registered rosters in the league.
// Teams are referenced, never mutated, by the resolution engine.
type Team struct {
	Model
	Name string `json:"name"`
}
