package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	"github.com/clutchboard/clutchboard-server/internal/service"
)

func (s *Server) registerMappingRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getDraftMapping",
		Method:      http.MethodGet,
		Path:        "/api/v1/drafts/{id}/mapping",
		Summary:     "Get draft mapping",
		Description: "Returns the current slot-to-player mapping for review",
		Tags:        []string{"Resolution"},
	}, s.handleGetDraftMapping)

	huma.Register(s.api, huma.Operation{
		OperationID: "setDraftSides",
		Method:      http.MethodPut,
		Path:        "/api/v1/drafts/{id}/sides",
		Summary:     "Set draft sides",
		Description: "Assigns real teams to the draft's extracted blocks",
		Tags:        []string{"Resolution"},
	}, s.handleSetDraftSides)

	huma.Register(s.api, huma.Operation{
		OperationID: "setSlotOverride",
		Method:      http.MethodPut,
		Path:        "/api/v1/drafts/{id}/slots/{block}/{slot}",
		Summary:     "Override slot mapping",
		Description: "Manually maps one scoreboard slot to a player",
		Tags:        []string{"Resolution"},
	}, s.handleSetSlotOverride)

	huma.Register(s.api, huma.Operation{
		OperationID: "clearSlotOverride",
		Method:      http.MethodDelete,
		Path:        "/api/v1/drafts/{id}/slots/{block}/{slot}",
		Summary:     "Clear slot override",
		Description: "Removes a manual mapping, restoring the automatic result",
		Tags:        []string{"Resolution"},
	}, s.handleClearSlotOverride)

	huma.Register(s.api, huma.Operation{
		OperationID: "applyDraft",
		Method:      http.MethodPost,
		Path:        "/api/v1/drafts/{id}/apply",
		Summary:     "Apply draft",
		Description: "Commits the reviewed draft as a match with player statistics",
		Tags:        []string{"Resolution"},
	}, s.handleApplyDraft)
}

// === DTOs ===

type MappingResponse struct {
	DraftID       string                `json:"draft_id" doc:"Draft ID"`
	Status        string                `json:"status" doc:"Draft status"`
	Sides         domain.SideAssignment `json:"sides" doc:"Team assigned to each block"`
	SidesInferred bool                  `json:"sides_inferred" doc:"True when sides come from inference, not an operator decision"`
	Slots         []domain.SlotMapping  `json:"slots" doc:"Resolution result per scoreboard slot"`
}

type MappingOutput struct {
	Body MappingResponse
}

type SetSidesRequest struct {
	Block1TeamID string `json:"block1_team_id" doc:"Team for block 1"`
	Block2TeamID string `json:"block2_team_id" doc:"Team for block 2"`
}

type SetSidesInput struct {
	ID   string `path:"id" doc:"Draft ID"`
	Body SetSidesRequest
}

type SlotOverrideRequest struct {
	PlayerID string `json:"player_id" doc:"Player to assign to the slot"`
}

type SlotOverrideInput struct {
	ID    string `path:"id" doc:"Draft ID"`
	Block int    `path:"block" doc:"1-based team block" minimum:"1" maximum:"2"`
	Slot  int    `path:"slot" doc:"0-based slot within the block" minimum:"0" maximum:"4"`
	Body  SlotOverrideRequest
}

type ClearOverrideInput struct {
	ID    string `path:"id" doc:"Draft ID"`
	Block int    `path:"block" doc:"1-based team block" minimum:"1" maximum:"2"`
	Slot  int    `path:"slot" doc:"0-based slot within the block" minimum:"0" maximum:"4"`
}

type MatchOutput struct {
	Body MatchResponse
}

// === Handlers ===

func (s *Server) handleGetDraftMapping(ctx context.Context, input *GetDraftInput) (*MappingOutput, error) {
	mapping, err := s.services.Resolution.GetMapping(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &MappingOutput{Body: mapMappingResponse(mapping)}, nil
}

func (s *Server) handleSetDraftSides(ctx context.Context, input *SetSidesInput) (*MappingOutput, error) {
	mapping, err := s.services.Resolution.SetSides(ctx, input.ID, service.SetSidesRequest{
		Block1TeamID: input.Body.Block1TeamID,
		Block2TeamID: input.Body.Block2TeamID,
	})
	if err != nil {
		return nil, err
	}

	return &MappingOutput{Body: mapMappingResponse(mapping)}, nil
}

func (s *Server) handleSetSlotOverride(ctx context.Context, input *SlotOverrideInput) (*MappingOutput, error) {
	key := domain.SlotKey{Block: input.Block, Slot: input.Slot}
	mapping, err := s.services.Resolution.SetOverride(ctx, input.ID, key, service.SetOverrideRequest{
		PlayerID: input.Body.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	return &MappingOutput{Body: mapMappingResponse(mapping)}, nil
}

func (s *Server) handleClearSlotOverride(ctx context.Context, input *ClearOverrideInput) (*MappingOutput, error) {
	key := domain.SlotKey{Block: input.Block, Slot: input.Slot}
	mapping, err := s.services.Resolution.ClearOverride(ctx, input.ID, key)
	if err != nil {
		return nil, err
	}

	return &MappingOutput{Body: mapMappingResponse(mapping)}, nil
}

func (s *Server) handleApplyDraft(ctx context.Context, input *GetDraftInput) (*MatchOutput, error) {
	match, err := s.services.Resolution.Apply(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &MatchOutput{Body: mapMatchResponse(match)}, nil
}

// === Mappers ===

func mapMappingResponse(m *service.Mapping) MappingResponse {
	return MappingResponse{
		DraftID:       m.DraftID,
		Status:        string(m.Status),
		Sides:         m.Sides,
		SidesInferred: m.SidesInferred,
		Slots:         m.Slots,
	}
}
