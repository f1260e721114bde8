// Package server boots the HTTP service: configuration, database, router,
// and the standard middleware chain.
package server

import (
	"net/http"
	"sync"

	"github.com/dmelo/catalog/app/routes"
	"github.com/dmelo/catalog/app/services"
	"github.com/dmelo/catalog/config"
	"github.com/dmelo/catalog/pkg/database"
	"github.com/dmelo/catalog/pkg/event"
	"github.com/dmelo/catalog/pkg/logger"
	"github.com/dmelo/catalog/pkg/metrics"
	"github.com/dmelo/catalog/pkg/middleware"
	"github.com/dmelo/catalog/pkg/reqid"
	"github.com/dmelo/catalog/pkg/router"
)

var listenOnce sync.Once

// registerListeners wires order lifecycle events to their counters.
func registerListeners() {
	listenOnce.Do(func() {
		event.Listen(services.EventOrderCreated, func(interface{}) {
			metrics.OrdersCreated.Inc()
		})
		event.Listen(services.EventOrderCancelled, func(interface{}) {
			metrics.OrdersCancelled.Inc()
		})
	})
}

// Build assembles the router with the full middleware chain. Split from Start
// so tests can mount the real HTTP surface without listening on a port.
func Build() *router.Router {
	registerListeners()

	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	r.Get("/metrics", "metrics", metrics.Handler())
	routes.RegisterAPI(r)

	return r
}

// Start loads config, connects the database, and serves until the listener
// fails.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}

	r := Build()

	addr := ":" + config.AppPort()
	logger.Info("catalog listening", "addr", addr, "env", config.AppEnv())
	return http.ListenAndServe(addr, r.Handler())
}
