package service

import (
	"context"
	"log/slog"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	"github.com/clutchboard/clutchboard-server/internal/store"
)

// StatsService reads committed match results and player statistics.
type StatsService struct {
	store  store.Store
	logger *slog.Logger
}

// NewStatsService creates a new stats service.
func NewStatsService(store store.Store, logger *slog.Logger) *StatsService {
	return &StatsService{store: store, logger: logger}
}

// ListMatches returns all committed matches, newest first.
func (s *StatsService) ListMatches(ctx context.Context) ([]*domain.MatchResult, error) {
	return s.store.ListMatches(ctx)
}

// MatchDetail is a match together with its per-player stat lines.
type MatchDetail struct {
	Match *domain.MatchResult      `json:"match"`
	Stats []domain.PlayerMatchStat `json:"stats"`
}

// GetMatch returns one match with its stat lines.
func (s *StatsService) GetMatch(ctx context.Context, matchID string) (*MatchDetail, error) {
	match, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	stats, err := s.store.ListMatchStats(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return &MatchDetail{Match: match, Stats: stats}, nil
}

// GetPlayerTotals returns a player's aggregated statistics. The player must
// exist; a registered player with no matches gets zero totals.
func (s *StatsService) GetPlayerTotals(ctx context.Context, playerID string) (*domain.PlayerStatTotals, error) {
	if _, err := s.store.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}
	return s.store.GetPlayerStatTotals(ctx, playerID)
}
