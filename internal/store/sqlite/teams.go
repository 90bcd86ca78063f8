package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	"github.com/clutchboard/clutchboard-server/internal/store"
)

// teamColumns is the ordered list of columns selected in team queries.
// Must match the scan order in scanTeam.
const teamColumns = `id, created_at, updated_at, name`

// scanTeam scans a sql.Row (or sql.Rows via its Scan method) into a domain.Team.
func scanTeam(scanner interface{ Scan(dest ...any) error }) (*domain.Team, error) {
	var t domain.Team
	var createdAt, updatedAt string

	err := scanner.Scan(&t.ID, &createdAt, &updatedAt, &t.Name)
	if err != nil {
		return nil, err
	}

	t.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	t.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// CreateTeam inserts a new team.
// Returns store.ErrAlreadyExists if the team ID or name already exists.
func (s *Store) CreateTeam(ctx context.Context, team *domain.Team) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO teams (id, created_at, updated_at, name)
		VALUES (?, ?, ?, ?)`,
		team.ID,
		formatTime(team.CreatedAt),
		formatTime(team.UpdatedAt),
		team.Name,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetTeam retrieves a team by ID.
// Returns store.ErrNotFound if the team does not exist.
func (s *Store) GetTeam(ctx context.Context, id string) (*domain.Team, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE id = ?`, id)

	t, err := scanTeam(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTeam performs a full row update on an existing team.
// Returns store.ErrNotFound if the team does not exist.
func (s *Store) UpdateTeam(ctx context.Context, team *domain.Team) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE teams SET updated_at = ?, name = ? WHERE id = ?`,
		formatTime(team.UpdatedAt),
		team.Name,
		team.ID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteTeam removes a team.
// Returns store.ErrNotFound if the team does not exist.
func (s *Store) DeleteTeam(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ListTeams returns all teams sorted by name.
func (s *Store) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+teamColumns+` FROM teams ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*domain.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}
