package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	"github.com/clutchboard/clutchboard-server/internal/service"
)

func (s *Server) registerDraftRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "ingestDraft",
		Method:      http.MethodPost,
		Path:        "/api/v1/drafts",
		Summary:     "Ingest draft",
		Description: "Stores an extracted scoreboard draft for review",
		Tags:        []string{"Drafts"},
	}, s.handleIngestDraft)

	huma.Register(s.api, huma.Operation{
		OperationID: "listDrafts",
		Method:      http.MethodGet,
		Path:        "/api/v1/drafts",
		Summary:     "List drafts",
		Description: "Returns drafts, optionally filtered by status",
		Tags:        []string{"Drafts"},
	}, s.handleListDrafts)

	huma.Register(s.api, huma.Operation{
		OperationID: "getDraft",
		Method:      http.MethodGet,
		Path:        "/api/v1/drafts/{id}",
		Summary:     "Get draft",
		Description: "Returns a draft by ID",
		Tags:        []string{"Drafts"},
	}, s.handleGetDraft)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteDraft",
		Method:      http.MethodDelete,
		Path:        "/api/v1/drafts/{id}",
		Summary:     "Delete draft",
		Description: "Discards a pending draft",
		Tags:        []string{"Drafts"},
	}, s.handleDeleteDraft)
}

// === DTOs ===

type DraftPlayerRecord struct {
	RawName string `json:"raw_name" doc:"Nickname exactly as extracted"`
	Kills   int    `json:"kills" doc:"Kills"`
	Deaths  int    `json:"deaths" doc:"Deaths"`
	Assists int    `json:"assists" doc:"Assists"`
}

type DraftTeamBlock struct {
	Score   int                 `json:"score" doc:"Side score total"`
	Players []DraftPlayerRecord `json:"players" doc:"Scoreboard rows, up to five"`
}

type IngestDraftRequest struct {
	Blocks     []DraftTeamBlock `json:"blocks" doc:"Exactly two team blocks"`
	WinnerSide int              `json:"winner_side,omitempty" doc:"Winning block (1 or 2), 0 when unknown"`
	Confidence float64          `json:"confidence" doc:"Extractor confidence in [0,1]"`
}

type IngestDraftInput struct {
	Body IngestDraftRequest
}

type DraftResponse struct {
	ID         string           `json:"id" doc:"Draft ID"`
	Blocks     []DraftTeamBlock `json:"blocks" doc:"Extracted team blocks"`
	WinnerSide int              `json:"winner_side,omitempty" doc:"Winning block, 0 when unknown"`
	Confidence float64          `json:"confidence" doc:"Extractor confidence"`
	Status     string           `json:"status" doc:"pending or applied"`

	Block1TeamID string `json:"block1_team_id,omitempty" doc:"Team assigned to block 1"`
	Block2TeamID string `json:"block2_team_id,omitempty" doc:"Team assigned to block 2"`

	CreatedAt time.Time  `json:"created_at" doc:"Ingest time"`
	UpdatedAt time.Time  `json:"updated_at" doc:"Last review change"`
	AppliedAt *time.Time `json:"applied_at,omitempty" doc:"Commit time, when applied"`
}

type DraftOutput struct {
	Body DraftResponse
}

type ListDraftsInput struct {
	Status string `query:"status" doc:"Filter by status (pending or applied)"`
}

type ListDraftsResponse struct {
	Drafts []DraftResponse `json:"drafts" doc:"List of drafts"`
}

type ListDraftsOutput struct {
	Body ListDraftsResponse
}

type GetDraftInput struct {
	ID string `path:"id" doc:"Draft ID"`
}

// === Handlers ===

func (s *Server) handleIngestDraft(ctx context.Context, input *IngestDraftInput) (*DraftOutput, error) {
	req := service.IngestDraftRequest{
		WinnerSide: input.Body.WinnerSide,
		Confidence: input.Body.Confidence,
	}
	for _, b := range input.Body.Blocks {
		block := service.IngestTeamBlock{Score: b.Score}
		for _, p := range b.Players {
			block.Players = append(block.Players, service.IngestPlayerRecord{
				RawName: p.RawName,
				Kills:   p.Kills,
				Deaths:  p.Deaths,
				Assists: p.Assists,
			})
		}
		req.Blocks = append(req.Blocks, block)
	}

	draft, err := s.services.Draft.Ingest(ctx, req)
	if err != nil {
		return nil, err
	}

	return &DraftOutput{Body: mapDraftResponse(draft)}, nil
}

func (s *Server) handleListDrafts(ctx context.Context, input *ListDraftsInput) (*ListDraftsOutput, error) {
	drafts, err := s.services.Draft.ListDrafts(ctx, domain.DraftStatus(input.Status))
	if err != nil {
		return nil, err
	}

	resp := make([]DraftResponse, len(drafts))
	for i, d := range drafts {
		resp[i] = mapDraftResponse(d)
	}

	return &ListDraftsOutput{Body: ListDraftsResponse{Drafts: resp}}, nil
}

func (s *Server) handleGetDraft(ctx context.Context, input *GetDraftInput) (*DraftOutput, error) {
	draft, err := s.services.Draft.GetDraft(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &DraftOutput{Body: mapDraftResponse(draft)}, nil
}

func (s *Server) handleDeleteDraft(ctx context.Context, input *GetDraftInput) (*MessageOutput, error) {
	if err := s.services.Draft.DeleteDraft(ctx, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Draft deleted"}}, nil
}

// === Mappers ===

func mapDraftResponse(d *domain.ExtractedDraft) DraftResponse {
	resp := DraftResponse{
		ID:           d.ID,
		WinnerSide:   d.WinnerSide,
		Confidence:   d.Confidence,
		Status:       string(d.Status),
		Block1TeamID: d.Block1TeamID,
		Block2TeamID: d.Block2TeamID,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		AppliedAt:    d.AppliedAt,
	}
	for _, b := range d.Blocks {
		block := DraftTeamBlock{Score: b.Score}
		for _, p := range b.Players {
			block.Players = append(block.Players, DraftPlayerRecord{
				RawName: p.RawName,
				Kills:   p.Kills,
				Deaths:  p.Deaths,
				Assists: p.Assists,
			})
		}
		resp.Blocks = append(resp.Blocks, block)
	}
	return resp
}
