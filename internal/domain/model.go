package domain

import "time"

// Model provides common identity and timestamp fields for persisted entities.
type Model struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
}

// Touch updates the UpdatedAt timestamp to the current time.
// Call this whenever the underlying entity changes.
func (m *Model) Touch() {
	m.UpdatedAt = time.Now()
}

// InitTimestamps sets both CreatedAt and UpdatedAt to now.
// Call this when creating a new entity.
func (m *Model) InitTimestamps() {
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
}
