// Command webserver runs the demo HTTP server: the dispatch core wired with
// the reference middleware stack and handler set over the TCP transport.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/routekit/dispatch/pkg/common"
	"github.com/routekit/dispatch/pkg/handlers"
	"github.com/routekit/dispatch/pkg/httpwire"
	"github.com/routekit/dispatch/pkg/middleware"
	"github.com/routekit/dispatch/pkg/router"
	"github.com/routekit/dispatch/pkg/transport"
	"github.com/routekit/dispatch/pkg/userstore"
	"go.uber.org/zap"
)

func main() {
	// Optional .env file for local development
	_ = godotenv.Load()

	cfg, err := transport.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	h := handlers.New(userstore.NewStore())

	r := router.NewRouter(router.RouterConfig{
		Logger:        logger,
		MaxBodySize:   cfg.MaxBodySize,
		EnableMetrics: true,
		Middlewares: []common.Middleware{
			// Order matters: trace and logging observe every request,
			// including ones the auth gate rejects afterwards.
			middleware.Trace(),
			middleware.Logging(logger),
			middleware.RequireAuth(logger, "/admin"),
			middleware.RateLimit(100),
			middleware.CORS([]string{"*"}, []string{"GET", "POST", "PUT", "DELETE"}, []string{"Content-Type", "Authorization"}),
		},
		Routes: h.Routes(),
	})
	r.RegisterRoute(httpwire.MethodGet, "/metrics", handlers.Metrics(r.Metrics()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := transport.NewServer(cfg, r, logger)
	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
