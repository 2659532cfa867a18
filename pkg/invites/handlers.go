// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/authentication"
	"github.com/canonical/onboarding-service/pkg/seats"
)

type API struct {
	service  ServiceInterface
	storage  StorageInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/invites", a.sendInvites)
	mux.Delete("/api/v0/invites/{id}", a.revokeInvite)
}

// requireAdmin loads the calling user and enforces the ADMIN role. On
// failure the response is already written and nil is returned.
func (a *API) requireAdmin(w http.ResponseWriter, r *http.Request, action string) *types.User {
	ctx := r.Context()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthorized", "missing principal")
		return nil
	}

	caller, err := a.storage.GetUser(ctx, principal.ID)
	if errors.Is(err, storage.ErrNotFound) {
		a.writeError(w, http.StatusNotFound, "not_found", "user not onboarded")
		return nil
	}
	if err != nil {
		a.logger.Errorf("failed to load user %s: %v", principal.ID, err)
		a.writeError(w, http.StatusInternalServerError, "internal", "failed to load user")
		return nil
	}

	if caller.Role != types.RoleAdmin {
		a.logger.Security().AuthzFailure(principal.ID, action)
		a.writeError(w, http.StatusForbidden, "forbidden", "admin role required")
		return nil
	}

	return caller
}

func (a *API) sendInvites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller := a.requireAdmin(w, r, "invite_send")
	if caller == nil {
		return
	}

	var req SendInvitesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	report, err := a.service.SendInvites(ctx, caller.OrganizationID, caller.ID, req.Invites)

	var seatErr *seats.SeatLimitError
	if errors.As(err, &seatErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code":            "seat_limit_exceeded",
			"message":         seatErr.Error(),
			"seats_available": seatErr.Remaining,
		})
		return
	}
	if err != nil {
		a.logger.Errorf("failed to send invites: %v", err)
		a.writeError(w, http.StatusInternalServerError, "internal", "failed to send invites")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		a.logger.Errorf("failed to encode invite report: %v", err)
	}
}

func (a *API) revokeInvite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller := a.requireAdmin(w, r, "invite_revoke")
	if caller == nil {
		return
	}

	inviteID := chi.URLParam(r, "id")
	err := a.service.RevokeInvite(ctx, caller.OrganizationID, inviteID)
	if errors.Is(err, storage.ErrNotFound) {
		a.writeError(w, http.StatusNotFound, "not_found", "invite not found")
		return
	}
	if errors.Is(err, storage.ErrConditionFailed) {
		a.writeError(w, http.StatusConflict, "invite_not_pending", "invite is no longer pending")
		return
	}
	if err != nil {
		a.logger.Errorf("failed to revoke invite %s: %v", inviteID, err)
		a.writeError(w, http.StatusInternalServerError, "internal", "failed to revoke invite")
		return
	}

	w.WriteHeader(http.StatusNoContent)
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

func NewAPI(
	service ServiceInterface,
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		storage:  storage,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
