package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	domainerrors "github.com/clutchboard/clutchboard-server/internal/errors"
	"github.com/clutchboard/clutchboard-server/internal/id"
	"github.com/clutchboard/clutchboard-server/internal/store"
	"github.com/clutchboard/clutchboard-server/internal/validation"
)

// DraftService manages the lifecycle of vision-extracted drafts: ingest,
// listing, and deletion. Review and apply live in ResolutionService.
type DraftService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewDraftService creates a new draft service.
func NewDraftService(store store.Store, logger *slog.Logger) *DraftService {
	return &DraftService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// IngestPlayerRecord is one scoreboard row as submitted by the extractor.
type IngestPlayerRecord struct {
	RawName string `json:"raw_name" validate:"required,max=200"`
	Kills   int    `json:"kills" validate:"min=0"`
	Deaths  int    `json:"deaths" validate:"min=0"`
	Assists int    `json:"assists" validate:"min=0"`
}

// IngestTeamBlock is one extracted side.
type IngestTeamBlock struct {
	Score   int                  `json:"score" validate:"min=0"`
	Players []IngestPlayerRecord `json:"players" validate:"max=5,dive"`
}

// IngestDraftRequest contains one extracted scoreboard.
type IngestDraftRequest struct {
	Blocks     []IngestTeamBlock `json:"blocks" validate:"required,len=2,dive"`
	WinnerSide int               `json:"winner_side" validate:"min=0,max=2"`
	Confidence float64           `json:"confidence" validate:"min=0,max=1"`
}

// Ingest stores a new extracted draft in pending state.
// A draft with zero team blocks is a caller precondition violation and is
// rejected outright rather than stored for review.
func (s *DraftService) Ingest(ctx context.Context, req IngestDraftRequest) (*domain.ExtractedDraft, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if len(req.Blocks) == 0 {
		return nil, domainerrors.Validation("draft has no team blocks")
	}

	draftID, err := id.Generate("draft")
	if err != nil {
		return nil, err
	}

	draft := &domain.ExtractedDraft{
		ID:         draftID,
		WinnerSide: req.WinnerSide,
		Confidence: req.Confidence,
		Status:     domain.DraftStatusPending,
	}
	for _, b := range req.Blocks {
		block := domain.ExtractedTeamBlock{Score: b.Score}
		for _, p := range b.Players {
			block.Players = append(block.Players, domain.ExtractedPlayerRecord{
				RawName: p.RawName,
				Kills:   p.Kills,
				Deaths:  p.Deaths,
				Assists: p.Assists,
			})
		}
		draft.Blocks = append(draft.Blocks, block)
	}
	now := time.Now()
	draft.CreatedAt = now
	draft.UpdatedAt = now

	if err := s.store.CreateDraft(ctx, draft); err != nil {
		return nil, err
	}

	s.logger.Info("draft ingested",
		"id", draftID,
		"confidence", req.Confidence,
		"block1_players", len(draft.Blocks[0].Players),
		"block2_players", len(draft.Blocks[1].Players),
	)
	return draft, nil
}

// GetDraft returns a single draft.
func (s *DraftService) GetDraft(ctx context.Context, draftID string) (*domain.ExtractedDraft, error) {
	return s.store.GetDraft(ctx, draftID)
}

// ListDrafts returns drafts, optionally filtered by status.
func (s *DraftService) ListDrafts(ctx context.Context, status domain.DraftStatus) ([]*domain.ExtractedDraft, error) {
	switch status {
	case "", domain.DraftStatusPending, domain.DraftStatusApplied:
	default:
		return nil, domainerrors.Validationf("unknown draft status %q", status)
	}
	return s.store.ListDrafts(ctx, status)
}

// DeleteDraft discards a draft. Applied drafts are kept as the audit trail
// for their match and cannot be deleted.
func (s *DraftService) DeleteDraft(ctx context.Context, draftID string) error {
	draft, err := s.store.GetDraft(ctx, draftID)
	if err != nil {
		return err
	}
	if draft.Status == domain.DraftStatusApplied {
		return domainerrors.Conflict("applied drafts cannot be deleted")
	}
	return s.store.DeleteDraft(ctx, draftID)
}
