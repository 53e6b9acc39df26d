package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dictionary-connector/internal/config"
	"github.com/heartmarshall/dictionary-connector/internal/metrics"
	"github.com/heartmarshall/dictionary-connector/internal/service/lookup"
	"github.com/heartmarshall/dictionary-connector/internal/transport/middleware"
	"github.com/heartmarshall/dictionary-connector/internal/transport/rest"
)

// NewPublicHandler builds the public API: GET / and GET /define behind the
// middleware stack.
func NewPublicHandler(cfg *config.Config, svc *lookup.Service, collector *metrics.Collector, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	rest.NewDefineHandler(svc, cfg.Service.Name, logger).Register(mux)

	return publicMiddleware(cfg.CORS, collector, logger)(mux)
}

// publicMiddleware is the stack around the public mux. Recovery sits inside
// Logger and Metrics, so a recovered panic is still logged and counted as a
// 500. Metrics reads r.Pattern, which the mux sets on the request it
// receives, so nothing between Metrics and the mux may replace the request.
func publicMiddleware(cors config.CORSConfig, collector *metrics.Collector, logger *slog.Logger) middleware.Middleware {
	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.SecureHeaders(),
		middleware.CORS(cors),
		middleware.Metrics(collector),
		middleware.Recovery(logger),
	)
}

// NewOpsHandler builds the ops listener: liveness and Prometheus metrics.
func NewOpsHandler(collector *metrics.Collector, version string) http.Handler {
	health := rest.NewHealthHandler(version)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.Handle("GET /metrics", collector.Handler())
	return mux
}
