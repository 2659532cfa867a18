// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package seats derives seat usage from authoritative membership and
// pending-invite counts. The seats_used column on organizations is an
// advisory cache, it is refreshed opportunistically and consulted only
// when live counting fails.
package seats

import (
	"context"
	"fmt"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// SeatsUsed returns the authoritative seat count: users plus PENDING
// invites. When counting fails it falls back to the cached seats_used
// value instead of failing the request.
func (s *Service) SeatsUsed(ctx context.Context, orgID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "seats.Service.SeatsUsed")
	defer span.End()

	used, err := s.countSeats(ctx, orgID)
	if err == nil {
		return used, nil
	}

	s.logger.Warnf("live seat count failed for organization %s, falling back to cache: %v", orgID, err)

	org, orgErr := s.storage.GetOrganization(ctx, orgID)
	if orgErr != nil {
		return 0, fmt.Errorf("failed to count seats: %w", err)
	}
	return org.SeatsUsed, nil
}

// SeatsRemaining returns the number of seats still available on the
// organization, never negative.
func (s *Service) SeatsRemaining(ctx context.Context, org *types.Organization) (int, error) {
	ctx, span := s.tracer.Start(ctx, "seats.Service.SeatsRemaining")
	defer span.End()

	used, err := s.SeatsUsed(ctx, org.ID)
	if err != nil {
		return 0, err
	}

	remaining := org.SeatLimit - used
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// RefreshCache recomputes the live seat count and writes it back to the
// advisory seats_used column. Callers treat failures as non-fatal.
func (s *Service) RefreshCache(ctx context.Context, orgID string) error {
	ctx, span := s.tracer.Start(ctx, "seats.Service.RefreshCache")
	defer span.End()

	used, err := s.countSeats(ctx, orgID)
	if err != nil {
		return err
	}

	return s.storage.SetSeatsUsed(ctx, orgID, used)
}

func (s *Service) countSeats(ctx context.Context, orgID string) (int, error) {
	users, err := s.storage.CountUsersByOrganization(ctx, orgID)
	if err != nil {
		return 0, err
	}

	pending, err := s.storage.CountPendingInvitesByOrganization(ctx, orgID)
	if err != nil {
		return 0, err
	}

	return users + pending, nil
}

// CanSendInvites reports whether requested invites fit in the seats left
// after users and pending invites are accounted for.
func CanSendInvites(org *types.Organization, userCount, pendingCount, requested int) bool {
	remaining := org.SeatLimit - (userCount + pendingCount)
	if remaining < 0 {
		remaining = 0
	}
	return requested <= remaining
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
