package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	"github.com/clutchboard/clutchboard-server/internal/store"
)

// draftColumns is the ordered list of columns selected in draft queries.
// Must match the scan order in scanDraft.
const draftColumns = `id, blocks, winner_side, confidence, status,
	block1_team_id, block2_team_id, overrides, created_at, updated_at, applied_at`

// scanDraft scans a sql.Row (or sql.Rows via its Scan method) into a
// domain.ExtractedDraft. Blocks and overrides are stored as JSON; override
// keys use the "block:slot" form.
func scanDraft(scanner interface{ Scan(dest ...any) error }) (*domain.ExtractedDraft, error) {
	var d domain.ExtractedDraft

	var (
		blocksJSON    string
		status        string
		block1TeamID  sql.NullString
		block2TeamID  sql.NullString
		overridesJSON string
		createdAt     string
		updatedAt     string
		appliedAt     sql.NullString
	)

	err := scanner.Scan(
		&d.ID,
		&blocksJSON,
		&d.WinnerSide,
		&d.Confidence,
		&status,
		&block1TeamID,
		&block2TeamID,
		&overridesJSON,
		&createdAt,
		&updatedAt,
		&appliedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(blocksJSON), &d.Blocks); err != nil {
		return nil, fmt.Errorf("unmarshal draft blocks: %w", err)
	}
	d.Overrides, err = decodeOverrides(overridesJSON)
	if err != nil {
		return nil, err
	}

	d.Status = domain.DraftStatus(status)
	if block1TeamID.Valid {
		d.Block1TeamID = block1TeamID.String
	}
	if block2TeamID.Valid {
		d.Block2TeamID = block2TeamID.String
	}

	d.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	d.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}
	d.AppliedAt, err = parseNullableTime(appliedAt)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// encodeOverrides serializes the override map with "block:slot" string keys.
func encodeOverrides(overrides map[domain.SlotKey]string) (string, error) {
	m := make(map[string]string, len(overrides))
	for k, v := range overrides {
		m[k.String()] = v
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshal draft overrides: %w", err)
	}
	return string(b), nil
}

func decodeOverrides(raw string) (map[domain.SlotKey]string, error) {
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("unmarshal draft overrides: %w", err)
	}
	overrides := make(map[domain.SlotKey]string, len(m))
	for k, v := range m {
		key, err := domain.ParseSlotKey(k)
		if err != nil {
			return nil, fmt.Errorf("decode draft overrides: %w", err)
		}
		overrides[key] = v
	}
	return overrides, nil
}

// CreateDraft inserts a new extracted draft.
// Returns store.ErrAlreadyExists if the draft ID already exists.
func (s *Store) CreateDraft(ctx context.Context, draft *domain.ExtractedDraft) error {
	blocksJSON, err := json.Marshal(draft.Blocks)
	if err != nil {
		return fmt.Errorf("marshal draft blocks: %w", err)
	}
	overridesJSON, err := encodeOverrides(draft.Overrides)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO drafts (
			id, blocks, winner_side, confidence, status,
			block1_team_id, block2_team_id, overrides, created_at, updated_at, applied_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		draft.ID,
		string(blocksJSON),
		draft.WinnerSide,
		draft.Confidence,
		string(draft.Status),
		nullString(draft.Block1TeamID),
		nullString(draft.Block2TeamID),
		overridesJSON,
		formatTime(draft.CreatedAt),
		formatTime(draft.UpdatedAt),
		nullTimeString(draft.AppliedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetDraft retrieves a draft by ID.
// Returns store.ErrNotFound if the draft does not exist.
func (s *Store) GetDraft(ctx context.Context, id string) (*domain.ExtractedDraft, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+draftColumns+` FROM drafts WHERE id = ?`, id)

	d, err := scanDraft(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateDraft performs a full row update on an existing draft. The extracted
// blocks are immutable after ingest; only review state changes.
// Returns store.ErrNotFound if the draft does not exist.
func (s *Store) UpdateDraft(ctx context.Context, draft *domain.ExtractedDraft) error {
	overridesJSON, err := encodeOverrides(draft.Overrides)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE drafts SET
			status = ?,
			block1_team_id = ?,
			block2_team_id = ?,
			overrides = ?,
			updated_at = ?,
			applied_at = ?
		WHERE id = ?`,
		string(draft.Status),
		nullString(draft.Block1TeamID),
		nullString(draft.Block2TeamID),
		overridesJSON,
		formatTime(draft.UpdatedAt),
		nullTimeString(draft.AppliedAt),
		draft.ID,
	)
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

// DeleteDraft removes a draft.
// Returns store.ErrNotFound if the draft does not exist.
func (s *Store) DeleteDraft(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
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

// ListDrafts returns drafts newest first, optionally filtered by status.
func (s *Store) ListDrafts(ctx context.Context, status domain.DraftStatus) ([]*domain.ExtractedDraft, error) {
	query := `SELECT ` + draftColumns + ` FROM drafts`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drafts []*domain.ExtractedDraft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return drafts, nil
}
