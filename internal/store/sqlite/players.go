package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	"github.com/clutchboard/clutchboard-server/internal/store"
)

// playerColumns is the ordered list of columns selected in player queries.
// Must match the scan order in scanPlayer.
const playerColumns = `id, created_at, updated_at, name, team_id`

// scanPlayer scans a sql.Row (or sql.Rows via its Scan method) into a domain.Player.
func scanPlayer(scanner interface{ Scan(dest ...any) error }) (*domain.Player, error) {
	var p domain.Player
	var createdAt, updatedAt string

	err := scanner.Scan(&p.ID, &createdAt, &updatedAt, &p.Name, &p.TeamID)
	if err != nil {
		return nil, err
	}

	p.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	p.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// CreatePlayer inserts a new player.
// Returns store.ErrAlreadyExists if the player ID already exists and
// store.ErrInvalidInput if the referenced team does not exist.
func (s *Store) CreatePlayer(ctx context.Context, player *domain.Player) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO players (id, created_at, updated_at, name, team_id)
		VALUES (?, ?, ?, ?, ?)`,
		player.ID,
		formatTime(player.CreatedAt),
		formatTime(player.UpdatedAt),
		player.Name,
		player.TeamID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return store.ErrInvalidInput.WithMessage("team does not exist")
		}
		return err
	}
	return nil
}

// GetPlayer retrieves a player by ID.
// Returns store.ErrNotFound if the player does not exist.
func (s *Store) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE id = ?`, id)

	p, err := scanPlayer(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePlayer performs a full row update on an existing player.
// Returns store.ErrNotFound if the player does not exist.
func (s *Store) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE players SET updated_at = ?, name = ?, team_id = ? WHERE id = ?`,
		formatTime(player.UpdatedAt),
		player.Name,
		player.TeamID,
		player.ID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return store.ErrInvalidInput.WithMessage("team does not exist")
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

// DeletePlayer removes a player. Aliases cascade.
// Returns store.ErrNotFound if the player does not exist.
func (s *Store) DeletePlayer(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
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

// ListPlayers returns all players sorted by name.
func (s *Store) ListPlayers(ctx context.Context) ([]*domain.Player, error) {
	return s.queryPlayers(ctx,
		`SELECT `+playerColumns+` FROM players ORDER BY name ASC`)
}

// ListPlayersByTeam returns all players on a team sorted by name.
func (s *Store) ListPlayersByTeam(ctx context.Context, teamID string) ([]*domain.Player, error) {
	return s.queryPlayers(ctx,
		`SELECT `+playerColumns+` FROM players WHERE team_id = ? ORDER BY name ASC`, teamID)
}

func (s *Store) queryPlayers(ctx context.Context, query string, args ...any) ([]*domain.Player, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []*domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}
