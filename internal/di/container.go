// Package di provides dependency injection configuration for the Clutchboard server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/clutchboard/clutchboard-server/internal/config"
	"github.com/clutchboard/clutchboard-server/internal/di/providers"
	"github.com/clutchboard/clutchboard-server/internal/logger"
	"github.com/clutchboard/clutchboard-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Storage layer
	do.Provide(injector, providers.ProvideStore)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)
	do.Provide(injector, providers.ProvideSearchService)

	// Business services
	do.Provide(injector, providers.ProvideRosterService)
	do.Provide(injector, providers.ProvideDraftService)
	do.Provide(injector, providers.ProvideResolutionService)
	do.Provide(injector, providers.ProvideStatsService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[*service.SearchService](injector)

	// Business services
	_ = do.MustInvoke[*service.RosterService](injector)
	_ = do.MustInvoke[*service.DraftService](injector)
	_ = do.MustInvoke[*service.ResolutionService](injector)
	_ = do.MustInvoke[*service.StatsService](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	// Trigger search reindex if needed
	providers.TriggerSearchReindexIfNeeded(injector)

	return nil
}
