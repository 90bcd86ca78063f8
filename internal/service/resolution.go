package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	domainerrors "github.com/clutchboard/clutchboard-server/internal/errors"
	"github.com/clutchboard/clutchboard-server/internal/id"
	"github.com/clutchboard/clutchboard-server/internal/normalize"
	"github.com/clutchboard/clutchboard-server/internal/resolve"
	"github.com/clutchboard/clutchboard-server/internal/store"
	"github.com/clutchboard/clutchboard-server/internal/validation"
)

// ResolutionService drives the review workflow for a pending draft: building
// the session index, computing slot mappings, taking operator decisions, and
// finally committing the draft as a match.
//
// Every request rebuilds the alias index from a fresh roster snapshot and
// recomputes the mapping. With two teams of five the session is ten slots;
// recomputation is cheaper than keeping mutable session state consistent.
type ResolutionService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewResolutionService creates a new resolution service.
func NewResolutionService(store store.Store, logger *slog.Logger) *ResolutionService {
	return &ResolutionService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// Mapping is the full review state of a draft returned to the operator.
type Mapping struct {
	DraftID string                `json:"draft_id"`
	Status  domain.DraftStatus    `json:"status"`
	Sides   domain.SideAssignment `json:"sides"`

	// SidesInferred reports whether Sides came from inference this request
	// rather than a persisted operator decision.
	SidesInferred bool `json:"sides_inferred"`

	Slots []domain.SlotMapping `json:"slots"`
}

// sessionIndex builds the resolution index from a roster snapshot.
func (s *ResolutionService) sessionIndex(ctx context.Context) (*resolve.Index, []*domain.Team, error) {
	teams, err := s.store.ListTeams(ctx)
	if err != nil {
		return nil, nil, err
	}
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, nil, err
	}
	aliases, err := s.store.ListAliases(ctx)
	if err != nil {
		return nil, nil, err
	}

	ps := make([]domain.Player, 0, len(players))
	for _, p := range players {
		ps = append(ps, *p)
	}
	as := make([]domain.Alias, 0, len(aliases))
	for _, a := range aliases {
		as = append(as, *a)
	}
	return resolve.BuildIndex(as, ps), teams, nil
}

// draftSides returns the draft's effective side assignment, inferring one
// from matched players when the operator has not decided yet. Inference
// requires exactly two registered teams; with contradictory or absent
// evidence the assignment stays undetermined and the operator must decide.
func draftSides(draft *domain.ExtractedDraft, ix *resolve.Index, teams []*domain.Team) (domain.SideAssignment, bool) {
	if sides := draft.Sides(); sides.Determined() {
		return sides, false
	}
	if len(teams) != domain.BlockCount {
		return domain.SideAssignment{}, false
	}
	inferred := resolve.InferSides(draft, ix, teams[0].ID, teams[1].ID)
	return inferred, inferred.Determined()
}

// GetMapping computes the current slot mapping for a pending draft.
// When team sides are undetermined the mapping is returned with empty slots;
// the operator must supply the assignment before per-slot resolution runs.
func (s *ResolutionService) GetMapping(ctx context.Context, draftID string) (*Mapping, error) {
	draft, err := s.store.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	ix, teams, err := s.sessionIndex(ctx)
	if err != nil {
		return nil, err
	}

	m := &Mapping{DraftID: draft.ID, Status: draft.Status}
	m.Sides, m.SidesInferred = draftSides(draft, ix, teams)

	if !m.Sides.Determined() {
		return m, nil
	}

	slots, err := resolve.ResolveDraft(draft, ix, draft.Overrides, m.Sides)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeValidation, "resolve draft")
	}
	m.Slots = slots
	return m, nil
}

// SetSidesRequest assigns real teams to the draft's extracted blocks.
type SetSidesRequest struct {
	Block1TeamID string `json:"block1_team_id" validate:"required"`
	Block2TeamID string `json:"block2_team_id" validate:"required"`
}

// SetSides persists the operator's team-side decision for a draft.
func (s *ResolutionService) SetSides(ctx context.Context, draftID string, req SetSidesRequest) (*Mapping, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if req.Block1TeamID == req.Block2TeamID {
		return nil, domainerrors.Validation("both blocks assigned to the same team")
	}

	draft, err := s.store.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Status == domain.DraftStatusApplied {
		return nil, domainerrors.Conflict("draft already applied")
	}
	for _, teamID := range []string{req.Block1TeamID, req.Block2TeamID} {
		if _, err := s.store.GetTeam(ctx, teamID); err != nil {
			return nil, err
		}
	}

	draft.Block1TeamID = req.Block1TeamID
	draft.Block2TeamID = req.Block2TeamID
	draft.UpdatedAt = time.Now()
	if err := s.store.UpdateDraft(ctx, draft); err != nil {
		return nil, err
	}

	return s.GetMapping(ctx, draftID)
}

// SetOverrideRequest maps one slot to a player by operator decision.
type SetOverrideRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
}

// SetOverride records a manual mapping for one slot. The assignment is
// rejected with a conflict when the player is already mapped to another slot
// of the same block; the existing mapping is left untouched. A successful
// override also triggers alias learning for the slot's raw name.
func (s *ResolutionService) SetOverride(ctx context.Context, draftID string, key domain.SlotKey, req SetOverrideRequest) (*Mapping, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	draft, err := s.store.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Status == domain.DraftStatusApplied {
		return nil, domainerrors.Conflict("draft already applied")
	}
	block := draft.Block(key.Block)
	if block == nil || key.Slot < 0 || key.Slot >= len(block.Players) {
		return nil, domainerrors.NotFoundf("slot %s does not exist", key)
	}
	player, err := s.store.GetPlayer(ctx, req.PlayerID)
	if err != nil {
		return nil, err
	}

	ix, teams, err := s.sessionIndex(ctx)
	if err != nil {
		return nil, err
	}
	sides, _ := draftSides(draft, ix, teams)
	if !sides.Determined() {
		return nil, domainerrors.Conflict("team sides undetermined, assign sides before overriding slots")
	}

	slots, err := resolve.ResolveDraft(draft, ix, draft.Overrides, sides)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeValidation, "resolve draft")
	}
	if err := resolve.CheckOverride(slots, key, req.PlayerID); err != nil {
		return nil, domainerrors.ConflictWithDetails("player already assigned in this block", err.Error())
	}

	if draft.Overrides == nil {
		draft.Overrides = make(map[domain.SlotKey]string)
	}
	draft.Overrides[key] = req.PlayerID
	draft.UpdatedAt = time.Now()
	if err := s.store.UpdateDraft(ctx, draft); err != nil {
		return nil, err
	}

	// Learn the raw name as an alias for future sessions. Failure is
	// non-fatal: the override itself already stuck.
	s.learnAlias(ctx, player.ID, block.Players[key.Slot].RawName)

	return s.GetMapping(ctx, draftID)
}

// ClearOverride removes a manual mapping, letting the automatic match (or
// unresolved state) show through again.
func (s *ResolutionService) ClearOverride(ctx context.Context, draftID string, key domain.SlotKey) (*Mapping, error) {
	draft, err := s.store.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Status == domain.DraftStatusApplied {
		return nil, domainerrors.Conflict("draft already applied")
	}
	if _, ok := draft.Overrides[key]; !ok {
		return nil, domainerrors.NotFoundf("no override for slot %s", key)
	}

	delete(draft.Overrides, key)
	draft.UpdatedAt = time.Now()
	if err := s.store.UpdateDraft(ctx, draft); err != nil {
		return nil, err
	}

	return s.GetMapping(ctx, draftID)
}

// learnAlias idempotently persists raw -> player for future sessions.
// Persistence failures are logged and swallowed: the current session's
// resolution is already decided, only future sessions lose the shortcut.
func (s *ResolutionService) learnAlias(ctx context.Context, playerID, rawName string) {
	value := normalize.Nickname(rawName)
	if value == "" {
		return
	}

	if _, err := s.store.GetAliasByPlayerAndValue(ctx, playerID, value); err == nil {
		return
	} else if !domainerrors.Is(err, store.ErrNotFound) {
		s.logger.Warn("alias pre-check failed", "player", playerID, "value", value, "error", err)
		return
	}

	aliasID, err := id.Generate("alias")
	if err != nil {
		s.logger.Warn("alias id generation failed", "player", playerID, "error", err)
		return
	}
	alias := domain.NewAlias(aliasID, playerID, value)
	if err := s.store.CreateAlias(ctx, alias); err != nil {
		// A concurrent confirmation may have won the race; the uniqueness
		// constraint makes that benign.
		if domainerrors.Is(err, store.ErrAlreadyExists) {
			return
		}
		s.logger.Warn("alias persistence failed", "player", playerID, "value", value, "error", err)
		return
	}
	s.logger.Info("alias learned", "player", playerID, "value", value)
}

// Apply commits a reviewed draft: it freezes the current mapping, writes the
// match and per-player statistics, and marks the draft applied. Unresolved
// slots are omitted from the statistics write. Low-confidence automatic
// matches are committed as-is; the review surface is where they get flagged.
func (s *ResolutionService) Apply(ctx context.Context, draftID string) (*domain.MatchResult, error) {
	draft, err := s.store.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Status == domain.DraftStatusApplied {
		return nil, domainerrors.Conflict("draft already applied")
	}

	ix, teams, err := s.sessionIndex(ctx)
	if err != nil {
		return nil, err
	}
	sides, inferred := draftSides(draft, ix, teams)
	if !sides.Determined() {
		return nil, domainerrors.Conflict("team sides undetermined, assign sides before applying")
	}

	slots, err := resolve.ResolveDraft(draft, ix, draft.Overrides, sides)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeValidation, "resolve draft")
	}

	matchID, err := id.Generate("match")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	match := &domain.MatchResult{
		ID:         matchID,
		DraftID:    draft.ID,
		Team1ID:    sides.Block1TeamID,
		Team2ID:    sides.Block2TeamID,
		Team1Score: draft.Block(1).Score,
		Team2Score: draft.Block(2).Score,
		PlayedAt:   draft.CreatedAt,
		CreatedAt:  now,
	}
	switch draft.WinnerSide {
	case 1:
		match.WinnerTeamID = sides.Block1TeamID
	case 2:
		match.WinnerTeamID = sides.Block2TeamID
	default:
		// Fall back to the score totals when the extractor saw no winner.
		if match.Team1Score > match.Team2Score {
			match.WinnerTeamID = sides.Block1TeamID
		} else if match.Team2Score > match.Team1Score {
			match.WinnerTeamID = sides.Block2TeamID
		}
	}

	var stats []domain.PlayerMatchStat
	for _, slot := range slots {
		if slot.PlayerID == "" {
			continue
		}
		record := draft.Block(slot.Key.Block).Players[slot.Key.Slot]
		stats = append(stats, domain.PlayerMatchStat{
			MatchID:  matchID,
			PlayerID: slot.PlayerID,
			TeamID:   slot.TeamID,
			Kills:    record.Kills,
			Deaths:   record.Deaths,
			Assists:  record.Assists,
		})
	}

	if err := s.store.CreateMatch(ctx, match, stats); err != nil {
		return nil, err
	}

	// Persist the applied state, including inferred sides, so the draft
	// records what was committed.
	draft.Block1TeamID = sides.Block1TeamID
	draft.Block2TeamID = sides.Block2TeamID
	draft.Status = domain.DraftStatusApplied
	draft.AppliedAt = &now
	draft.UpdatedAt = now
	if err := s.store.UpdateDraft(ctx, draft); err != nil {
		return nil, err
	}

	s.logger.Info("draft applied",
		"draft", draft.ID,
		"match", matchID,
		"stats", len(stats),
		"sides_inferred", inferred,
	)
	return match, nil
}
