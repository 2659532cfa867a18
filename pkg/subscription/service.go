// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package subscription serves the authenticated status view. The status
// check doubles as a convergence point: it re-runs invite reconciliation,
// refreshes the seat cache, clears stale suspensions and kicks tenant
// storage provisioning for entitled organizations.
package subscription

import (
	"context"
	"fmt"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

type Service struct {
	storage     StorageInterface
	invites     InvitesInterface
	seats       SeatsInterface
	provisioner ProvisionerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Status(ctx context.Context, userID string) (*Status, error) {
	ctx, span := s.tracer.Start(ctx, "subscription.Service.Status")
	defer span.End()

	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	// Idempotent re-entry: a pending invite for this user's email in
	// their organization is consumed here if the onboarding path missed
	// it. Failures are non-fatal, the next status check retries.
	accepted, err := s.invites.Reconcile(ctx, user.ID, user.Email, user.OrganizationID)
	if err != nil {
		s.logger.Warnf("invite reconciliation failed for user %s: %v", user.ID, err)
	}
	if accepted {
		if err := s.storage.IncrementSeatsUsed(ctx, user.OrganizationID, 1); err != nil {
			s.logger.Warnf("failed to bump seats_used for %s: %v", user.OrganizationID, err)
		}
	}

	org, err := s.storage.GetOrganization(ctx, user.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}

	entitled := org.PaymentStatus.Entitled()

	// Suspension is cleared on read, billing never pushes it.
	if entitled && user.AccessSuspended {
		if err := s.storage.SetUserSuspended(ctx, user.ID, false); err != nil {
			s.logger.Warnf("failed to unsuspend user %s: %v", user.ID, err)
		} else {
			user.AccessSuspended = false
		}
	}

	seatsUsed, err := s.seats.SeatsUsed(ctx, org.ID)
	if err != nil {
		s.logger.Warnf("failed to count seats for %s, using cached value: %v", org.ID, err)
		seatsUsed = org.SeatsUsed
	} else if err := s.seats.RefreshCache(ctx, org.ID); err != nil {
		s.logger.Warnf("failed to refresh seat cache for %s: %v", org.ID, err)
	}

	if entitled {
		if err := s.provisioner.EnsureProvisioned(ctx, org.ID); err != nil {
			return nil, err
		}
	}

	return &Status{
		DisplayName:     user.DisplayName,
		OrganizationID:  org.ID,
		OrgName:         org.Name,
		Subscribed:      entitled,
		AccessSuspended: user.AccessSuspended,
		Plan:            org.Plan,
		SeatLimit:       org.SeatLimit,
		SeatsUsed:       seatsUsed,
		PaymentStatus:   org.PaymentStatus,
		Role:            user.Role,
		CanInviteUsers:  user.Role == types.RoleAdmin && seatsUsed < org.SeatLimit,
	}, nil
}

func NewService(
	storage StorageInterface,
	invites InvitesInterface,
	seats SeatsInterface,
	provisioner ProvisionerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		invites:     invites,
		seats:       seats,
		provisioner: provisioner,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}
