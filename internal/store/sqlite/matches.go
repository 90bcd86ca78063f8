package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	"github.com/clutchboard/clutchboard-server/internal/store"
)

// matchColumns is the ordered list of columns selected in match queries.
// Must match the scan order in scanMatch.
const matchColumns = `id, draft_id, team1_id, team2_id, team1_score, team2_score,
	winner_team_id, played_at, created_at`

// scanMatch scans a sql.Row (or sql.Rows via its Scan method) into a domain.MatchResult.
func scanMatch(scanner interface{ Scan(dest ...any) error }) (*domain.MatchResult, error) {
	var m domain.MatchResult

	var (
		winnerTeamID sql.NullString
		playedAt     string
		createdAt    string
	)

	err := scanner.Scan(
		&m.ID,
		&m.DraftID,
		&m.Team1ID,
		&m.Team2ID,
		&m.Team1Score,
		&m.Team2Score,
		&winnerTeamID,
		&playedAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if winnerTeamID.Valid {
		m.WinnerTeamID = winnerTeamID.String
	}

	m.PlayedAt, err = parseTime(playedAt)
	if err != nil {
		return nil, err
	}
	m.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// CreateMatch inserts a match and its per-player stat rows in one
// transaction. The draft_id uniqueness constraint stops the same draft from
// being applied twice.
// Returns store.ErrAlreadyExists if the match or draft is already committed.
func (s *Store) CreateMatch(ctx context.Context, match *domain.MatchResult, stats []domain.PlayerMatchStat) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO matches (
			id, draft_id, team1_id, team2_id, team1_score, team2_score,
			winner_team_id, played_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		match.ID,
		match.DraftID,
		match.Team1ID,
		match.Team2ID,
		match.Team1Score,
		match.Team2Score,
		nullString(match.WinnerTeamID),
		formatTime(match.PlayedAt),
		formatTime(match.CreatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}

	for _, stat := range stats {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO match_stats (match_id, player_id, team_id, kills, deaths, assists)
			VALUES (?, ?, ?, ?, ?, ?)`,
			match.ID,
			stat.PlayerID,
			stat.TeamID,
			stat.Kills,
			stat.Deaths,
			stat.Assists,
		)
		if err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint failed") {
				return store.ErrAlreadyExists.WithMessage("player already has a stat row in this match")
			}
			return fmt.Errorf("insert match_stats: %w", err)
		}
	}

	return tx.Commit()
}

// GetMatch retrieves a match by ID.
// Returns store.ErrNotFound if the match does not exist.
func (s *Store) GetMatch(ctx context.Context, id string) (*domain.MatchResult, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE id = ?`, id)

	m, err := scanMatch(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListMatches returns all matches newest first by play time.
func (s *Store) ListMatches(ctx context.Context) ([]*domain.MatchResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+matchColumns+` FROM matches ORDER BY played_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*domain.MatchResult
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

// ListMatchStats returns the per-player stat rows for a match.
func (s *Store) ListMatchStats(ctx context.Context, matchID string) ([]domain.PlayerMatchStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT match_id, player_id, team_id, kills, deaths, assists
		FROM match_stats
		WHERE match_id = ?
		ORDER BY player_id ASC`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.PlayerMatchStat
	for rows.Next() {
		var stat domain.PlayerMatchStat
		err := rows.Scan(&stat.MatchID, &stat.PlayerID, &stat.TeamID,
			&stat.Kills, &stat.Deaths, &stat.Assists)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetPlayerStatTotals aggregates a player's committed statistics across all
// matches. A player with no stat rows gets zero totals, not ErrNotFound.
func (s *Store) GetPlayerStatTotals(ctx context.Context, playerID string) (*domain.PlayerStatTotals, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(kills), 0), COALESCE(SUM(deaths), 0), COALESCE(SUM(assists), 0)
		FROM match_stats
		WHERE player_id = ?`, playerID)

	totals := &domain.PlayerStatTotals{PlayerID: playerID}
	err := row.Scan(&totals.Matches, &totals.Kills, &totals.Deaths, &totals.Assists)
	if err != nil {
		return nil, err
	}
	return totals, nil
}
