// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/storage"
)

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/webhooks/billing", a.paymentEvent)
}

func (a *API) paymentEvent(w http.ResponseWriter, r *http.Request) {
	var event PaymentEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		a.writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	if err := event.Validate(); err != nil {
		a.writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	err := a.service.HandlePaymentEvent(r.Context(), &event)
	if errors.Is(err, storage.ErrNotFound) {
		a.writeError(w, http.StatusNotFound, "not_found", "organization not found")
		return
	}
	if err != nil {
		a.logger.Errorf("billing webhook failed for organization %s: %v", event.OrganizationID, err)
		// 5xx so the provider redelivers; applying an event twice is safe.
		a.writeError(w, http.StatusInternalServerError, "internal", "failed to process payment event")
		return
	}

	w.WriteHeader(http.StatusOK)
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
