package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/clutchboard/clutchboard-server/internal/api"
	"github.com/clutchboard/clutchboard-server/internal/config"
	"github.com/clutchboard/clutchboard-server/internal/logger"
	"github.com/clutchboard/clutchboard-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	services := &api.Services{
		Roster:     do.MustInvoke[*service.RosterService](i),
		Draft:      do.MustInvoke[*service.DraftService](i),
		Resolution: do.MustInvoke[*service.ResolutionService](i),
		Stats:      do.MustInvoke[*service.StatsService](i),
		Search:     do.MustInvoke[*service.SearchService](i),
	}

	handler := api.NewServer(storeHandle.Store, services, api.Options{
		CORSOrigins: cfg.Server.CORSOrigins,
		IngestRPS:   cfg.Ingest.RateLimitRPS,
		IngestBurst: cfg.Ingest.RateLimitBurst,
	}, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}
