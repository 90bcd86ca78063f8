package api

import (
	"github.com/clutchboard/clutchboard-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Roster     *service.RosterService
	Draft      *service.DraftService
	Resolution *service.ResolutionService
	Stats      *service.StatsService
	Search     *service.SearchService
}
