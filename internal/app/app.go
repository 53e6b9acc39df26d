package app

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/dictionary-connector/internal/adapter/provider/freedict"
	"github.com/heartmarshall/dictionary-connector/internal/config"
	"github.com/heartmarshall/dictionary-connector/internal/metrics"
	"github.com/heartmarshall/dictionary-connector/internal/service/lookup"
)

// Run is the application entry point. It loads configuration, wires the
// lookup pipeline and serves the public and ops listeners until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("upstream", cfg.Upstream.BaseURL),
	)

	collector := metrics.NewCollector()
	dict := freedict.NewProvider(cfg.Upstream, collector, logger)
	svc := lookup.NewService(logger, dict, collector)

	servers := []*http.Server{
		newServer(publicAddr(cfg.Server), cfg.Server, NewPublicHandler(cfg, svc, collector, logger)),
	}
	if cfg.Ops.Enabled() {
		servers = append(servers, newServer(cfg.Ops.Addr, cfg.Server, NewOpsHandler(collector, BuildVersion())))
	}

	return serve(ctx, logger, cfg.Server.ShutdownTimeout, servers...)
}

func publicAddr(cfg config.ServerConfig) string {
	return net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
}

func newServer(addr string, cfg config.ServerConfig, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
