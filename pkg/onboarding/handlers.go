// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

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
	mux.Post("/webhooks/registration", a.registration)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	var event RegistrationEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Malformed events fail closed, upstream treats 4xx as non-retryable.
	if event.ID == "" || event.Traits.Email == "" {
		http.Error(w, "id and traits.email are required", http.StatusBadRequest)
		return
	}

	err := a.service.HandleIdentityConfirmed(
		r.Context(),
		event.ID,
		event.Traits.Email,
		event.Traits.Name,
		event.Traits.Organization,
	)
	if errors.Is(err, storage.ErrNotFound) {
		// An invite pointing at a missing organization cannot be retried
		// into success, 4xx stops the redelivery.
		a.logger.Errorf("registration webhook for identity %s hit missing state: %v", event.ID, err)
		http.Error(w, "referenced resource not found", http.StatusNotFound)
		return
	}
	if err != nil {
		a.logger.Errorf("registration webhook failed for identity %s: %v", event.ID, err)
		// 5xx so the upstream redelivers; the handler is replay-safe.
		http.Error(w, "failed to process registration", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}
