package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	"github.com/clutchboard/clutchboard-server/internal/store"
)

// aliasColumns is the ordered list of columns selected in alias queries.
// Must match the scan order in scanAlias.
const aliasColumns = `id, player_id, value, created_at`

// scanAlias scans a sql.Row (or sql.Rows via its Scan method) into a domain.Alias.
func scanAlias(scanner interface{ Scan(dest ...any) error }) (*domain.Alias, error) {
	var a domain.Alias
	var createdAt string

	err := scanner.Scan(&a.ID, &a.PlayerID, &a.Value, &createdAt)
	if err != nil {
		return nil, err
	}

	a.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// CreateAlias inserts a new alias. The value is expected to be normalized
// already; the (player_id, value) pair is unique.
// Returns store.ErrAlreadyExists if the pair already exists and
// store.ErrInvalidInput if the referenced player does not exist.
func (s *Store) CreateAlias(ctx context.Context, alias *domain.Alias) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO aliases (id, player_id, value, created_at)
		VALUES (?, ?, ?, ?)`,
		alias.ID,
		alias.PlayerID,
		alias.Value,
		formatTime(alias.CreatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return store.ErrInvalidInput.WithMessage("player does not exist")
		}
		return err
	}
	return nil
}

// GetAliasByPlayerAndValue retrieves the alias for a (player, normalized
// value) pair. Alias learning pre-checks through this before inserting.
// Returns store.ErrNotFound if no such alias exists.
func (s *Store) GetAliasByPlayerAndValue(ctx context.Context, playerID, value string) (*domain.Alias, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+aliasColumns+` FROM aliases WHERE player_id = ? AND value = ?`,
		playerID, value)

	a, err := scanAlias(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteAlias removes an alias by ID.
// Returns store.ErrNotFound if the alias does not exist.
func (s *Store) DeleteAlias(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM aliases WHERE id = ?`, id)
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

// ListAliases returns all aliases in insertion order.
func (s *Store) ListAliases(ctx context.Context) ([]*domain.Alias, error) {
	return s.queryAliases(ctx,
		`SELECT `+aliasColumns+` FROM aliases ORDER BY created_at ASC, id ASC`)
}

// ListAliasesByPlayer returns a player's aliases in insertion order.
func (s *Store) ListAliasesByPlayer(ctx context.Context, playerID string) ([]*domain.Alias, error) {
	return s.queryAliases(ctx,
		`SELECT `+aliasColumns+` FROM aliases WHERE player_id = ? ORDER BY created_at ASC, id ASC`,
		playerID)
}

func (s *Store) queryAliases(ctx context.Context, query string, args ...any) ([]*domain.Alias, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aliases []*domain.Alias
	for rows.Next() {
		a, err := scanAlias(rows)
		if err != nil {
			return nil, err
		}
		aliases = append(aliases, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return aliases, nil
}
