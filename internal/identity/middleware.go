// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/pkg/authentication"
)

const (
	// IDHeaderName is the header used to pass the authenticated identity ID
	IDHeaderName = "X-Kratos-Authenticated-Identity-Id"
	// EmailHeaderName is the header used to pass the authenticated identity email
	EmailHeaderName = "X-Kratos-Authenticated-Identity-Email"
)

// Middleware extracts the identity forwarded by the identity proxy and
// injects it as the request principal. Requests without an identity header
// are rejected.
type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		userID := r.Header.Get(IDHeaderName)
		if userID == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		principal := &authentication.Principal{
			ID:    userID,
			Email: r.Header.Get(EmailHeaderName),
		}

		ctx = authentication.WithPrincipal(ctx, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
