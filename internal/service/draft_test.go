package service

import (
	"context"
	"testing"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	domainerrors "github.com/clutchboard/clutchboard-server/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestRejectsWrongBlockCount(t *testing.T) {
	svc := NewDraftService(newTestStore(t), testLogger())
	ctx := context.Background()

	_, err := svc.Ingest(ctx, IngestDraftRequest{Confidence: 0.5})
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))

	_, err = svc.Ingest(ctx, IngestDraftRequest{
		Blocks:     []IngestTeamBlock{{Score: 13}},
		Confidence: 0.5,
	})
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
}

func TestIngestRejectsOversizedBlock(t *testing.T) {
	svc := NewDraftService(newTestStore(t), testLogger())

	players := make([]IngestPlayerRecord, 6)
	for i := range players {
		players[i] = IngestPlayerRecord{RawName: "p"}
	}
	_, err := svc.Ingest(context.Background(), IngestDraftRequest{
		Blocks: []IngestTeamBlock{
			{Players: players},
			{},
		},
	})
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
}

func TestIngestStoresPendingDraft(t *testing.T) {
	s := newTestStore(t)
	svc := NewDraftService(s, testLogger())
	ctx := context.Background()

	draft := ingestTestDraft(t, s)
	assert.Equal(t, domain.DraftStatusPending, draft.Status)

	got, err := svc.GetDraft(ctx, draft.ID)
	require.NoError(t, err)
	require.Len(t, got.Blocks, 2)
	assert.Equal(t, "SHADOW", got.Blocks[0].Players[0].RawName)

	pending, err := svc.ListDrafts(ctx, domain.DraftStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestListDraftsRejectsUnknownStatus(t *testing.T) {
	svc := NewDraftService(newTestStore(t), testLogger())

	_, err := svc.ListDrafts(context.Background(), domain.DraftStatus("bogus"))
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
}

func TestDeleteDraft(t *testing.T) {
	s := newTestStore(t)
	r := seedTestRoster(t, s)
	svc := NewDraftService(s, testLogger())
	resolution := NewResolutionService(s, testLogger())
	ctx := context.Background()

	draft := ingestTestDraft(t, s)
	require.NoError(t, svc.DeleteDraft(ctx, draft.ID))

	// Applied drafts are the match audit trail and stay.
	applied := ingestTestDraft(t, s)
	_, err := resolution.SetSides(ctx, applied.ID, SetSidesRequest{
		Block1TeamID: r.RacID,
		Block2TeamID: r.AstID,
	})
	require.NoError(t, err)
	_, err = resolution.Apply(ctx, applied.ID)
	require.NoError(t, err)

	err = svc.DeleteDraft(ctx, applied.ID)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrConflict))
}
