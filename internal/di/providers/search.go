package providers

import (
	"context"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/clutchboard/clutchboard-server/internal/config"
	"github.com/clutchboard/clutchboard-server/internal/logger"
	"github.com/clutchboard/clutchboard-server/internal/search"
	"github.com/clutchboard/clutchboard-server/internal/service"
)

// SearchIndexHandle wraps the search index with shutdown capability.
type SearchIndexHandle struct {
	*search.SearchIndex
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchIndex provides the Bleve search index.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	index, err := search.NewSearchIndex(search.Options{
		DataPath: filepath.Dir(cfg.Database.Path),
		Logger:   log.Logger,
	})
	if err != nil {
		return nil, err
	}

	docCount, _ := index.DocumentCount()
	log.Info("Search index initialized", "documents", docCount)

	return &SearchIndexHandle{SearchIndex: index}, nil
}

// ProvideSearchService provides the search service.
func ProvideSearchService(i do.Injector) (*service.SearchService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSearchService(storeHandle.Store, indexHandle.SearchIndex, log.Logger), nil
}

// TriggerSearchReindexIfNeeded rebuilds an empty index when roster data exists.
// Should be called after all services are wired.
func TriggerSearchReindexIfNeeded(i do.Injector) {
	searchService := do.MustInvoke[*service.SearchService](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	docCount, _ := indexHandle.DocumentCount()
	if docCount > 0 {
		return
	}

	ctx := context.Background()
	players, err := storeHandle.ListPlayers(ctx)
	if err != nil || len(players) == 0 {
		return
	}

	log.Info("Search index is empty but roster exists, triggering initial reindex",
		"player_count", len(players),
	)

	go func() {
		reindexCtx := context.Background()
		if err := searchService.ReindexAll(reindexCtx); err != nil {
			log.Error("Initial search reindex failed", "error", err)
		} else {
			count, _ := indexHandle.DocumentCount()
			log.Info("Initial search reindex completed", "documents", count)
		}
	}()
}
