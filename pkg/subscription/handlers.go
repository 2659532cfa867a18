// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package subscription

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/pkg/authentication"
	"github.com/canonical/onboarding-service/pkg/provisioner"
)

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/subscription", a.status)
}

func (a *API) status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthorized", "missing principal")
		return
	}

	status, err := a.service.Status(ctx, principal.ID)
	if errors.Is(err, storage.ErrNotFound) {
		a.writeError(w, http.StatusNotFound, "not_found", "user not onboarded")
		return
	}
	if errors.Is(err, provisioner.ErrProvisioningPending) {
		retry := int(provisioner.SuggestedRetryAfter.Seconds())
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", strconv.Itoa(retry))
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code":                "provisioning_pending",
			"message":             "tenant storage is being prepared, try again shortly",
			"retry_after_seconds": retry,
		})
		return
	}
	if err != nil {
		a.logger.Errorf("failed to compute subscription status for %s: %v", principal.ID, err)
		a.writeError(w, http.StatusInternalServerError, "internal", "failed to compute subscription status")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(status); err != nil {
		a.logger.Errorf("failed to encode subscription status: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    code,
		"message": message,
	}); err != nil {
		a.logger.Errorf("failed to encode error response: %v", err)
	}
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}
