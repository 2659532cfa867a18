// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/onboarding-service/internal/db"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/pkg/metrics"
	"github.com/canonical/onboarding-service/pkg/status"
)

// EndpointRegistrar is implemented by every API package.
type EndpointRegistrar interface {
	RegisterEndpoints(chi.Router)
}

// NewRouter assembles the HTTP surface. Webhook APIs are registered
// without authentication, their payloads are verified upstream by the
// delivering proxy; the rest sits behind the authenticate middleware.
// Mutating requests run inside a lazy per-request transaction.
func NewRouter(
	webhookAPIs []EndpointRegistrar,
	authenticatedAPIs []EndpointRegistrar,
	authenticate func(http.Handler) http.Handler,
	dbClient db.DBClientInterface,
	allowedOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(allowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(db.TransactionMiddleware(dbClient, logger))
		for _, api := range webhookAPIs {
			api.RegisterEndpoints(r)
		}
	})

	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Use(db.TransactionMiddleware(dbClient, logger))
		for _, api := range authenticatedAPIs {
			api.RegisterEndpoints(r)
		}
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
