package providers

import (
	"github.com/samber/do/v2"

	"github.com/clutchboard/clutchboard-server/internal/logger"
	"github.com/clutchboard/clutchboard-server/internal/service"
)

// ProvideRosterService provides the team, player, and alias management service.
func ProvideRosterService(i do.Injector) (*service.RosterService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewRosterService(storeHandle.Store, log.Logger), nil
}

// ProvideDraftService provides the draft ingestion service.
func ProvideDraftService(i do.Injector) (*service.DraftService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewDraftService(storeHandle.Store, log.Logger), nil
}

// ProvideResolutionService provides the identity resolution and review service.
func ProvideResolutionService(i do.Injector) (*service.ResolutionService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewResolutionService(storeHandle.Store, log.Logger), nil
}

// ProvideStatsService provides the match and player statistics service.
func ProvideStatsService(i do.Injector) (*service.StatsService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewStatsService(storeHandle.Store, log.Logger), nil
}
