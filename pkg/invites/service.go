// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package invites owns the invite lifecycle: sending invitations through
// the identity directory and reconciling confirmed identities against
// pending invites. Reconcile is a pure convergence operation, safe to call
// any number of times from any entry point.
package invites

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/seats"
)

// legacyScanLimit bounds the fallback scan for invite rows that predate
// email-keyed ids. TODO(data-migration): drop the scan once legacy invite
// rows have been rekeyed.
const legacyScanLimit = 100

type Service struct {
	storage StorageInterface
	kratos  KratosInterface

	inviteLifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Reconcile consumes at most the pending invites matching (email,
// organizationID) on behalf of userID. It returns true when at least one
// PENDING->ACCEPTED transition succeeded in this call. Conditional-write
// failures mean another caller won the race and are not errors.
func (s *Service) Reconcile(ctx context.Context, userID, email, organizationID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.Reconcile")
	defer span.End()

	candidates, err := s.findPendingInvites(ctx, email)
	if err != nil {
		return false, err
	}

	accepted := false
	now := time.Now()

	for _, invite := range candidates {
		if invite.Expired(now) {
			continue
		}
		if !sameOrganization(invite.OrganizationID, organizationID) {
			continue
		}

		err := s.storage.AcceptInvite(ctx, invite.ID, userID)
		if errors.Is(err, storage.ErrConditionFailed) {
			// Already consumed by a concurrent caller.
			s.logger.Debugf("invite %s already accepted, skipping", invite.ID)
			continue
		}
		if err != nil {
			return accepted, fmt.Errorf("failed to accept invite %s: %w", invite.ID, err)
		}
		accepted = true
	}

	return accepted, nil
}

// FindUsableInvite returns the first non-expired PENDING invite for email,
// or nil when none exists.
func (s *Service) FindUsableInvite(ctx context.Context, email string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.FindUsableInvite")
	defer span.End()

	candidates, err := s.findPendingInvites(ctx, email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, invite := range candidates {
		if !invite.Expired(now) {
			return invite, nil
		}
	}
	return nil, nil
}

// findPendingInvites implements the two-tier candidate lookup: direct key
// lookup by normalized email, then a bounded scan that catches legacy rows
// whose id is not the email.
func (s *Service) findPendingInvites(ctx context.Context, email string) ([]*types.Invite, error) {
	norm := types.NormalizeEmail(email)

	seen := make(map[string]bool)
	var candidates []*types.Invite

	invite, err := s.storage.GetInvite(ctx, norm)
	switch {
	case err == nil:
		if invite.Status == types.InvitePending {
			candidates = append(candidates, invite)
			seen[invite.ID] = true
		}
	case errors.Is(err, storage.ErrNotFound):
	default:
		return nil, fmt.Errorf("failed to look up invite: %w", err)
	}

	scanned, err := s.storage.ScanPendingInvitesByEmail(ctx, norm, legacyScanLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to scan invites: %w", err)
	}
	for _, inv := range scanned {
		if !seen[inv.ID] {
			candidates = append(candidates, inv)
			seen[inv.ID] = true
		}
	}

	return candidates, nil
}

// SendInvites creates identity-provider accounts and invite rows for a
// batch of addresses. The whole batch is rejected up front when it does not
// fit in the remaining seats; after that, failures are per-address.
func (s *Service) SendInvites(ctx context.Context, orgID, invitedBy string, requests []InviteRequest) (*Report, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.SendInvites")
	defer span.End()

	org, err := s.storage.GetOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}

	deduped := dedupRequests(requests)

	userCount, err := s.storage.CountUsersByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	pendingCount, err := s.storage.CountPendingInvitesByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending invites: %w", err)
	}

	if !seats.CanSendInvites(org, userCount, pendingCount, len(deduped)) {
		remaining := org.SeatLimit - (userCount + pendingCount)
		if remaining < 0 {
			remaining = 0
		}
		return nil, &seats.SeatLimitError{Remaining: remaining}
	}

	report := &Report{}
	now := time.Now()

	for _, req := range deduped {
		result := InviteResult{Email: req.Email}

		link, err := s.deliverInvitation(ctx, req.Email)
		if err != nil {
			s.logger.Errorf("failed to deliver invitation to %s: %v", req.Email, err)
			result.Error = "failed to create invitation"
			report.Results = append(report.Results, result)
			continue
		}

		role := types.Role(req.Role)
		if !role.Valid() {
			role = types.RoleViewer
		}

		invite := &types.Invite{
			ID:             req.Email,
			Email:          req.Email,
			OrganizationID: org.ID,
			Role:           role,
			Status:         types.InvitePending,
			InvitedBy:      invitedBy,
			CreatedAt:      now,
			ExpiresAt:      now.Add(s.inviteLifetime),
		}

		err = s.storage.CreateInvite(ctx, invite)
		if errors.Is(err, storage.ErrDuplicateKey) {
			result.Error = "an invite for this email is already pending"
			report.Results = append(report.Results, result)
			continue
		}
		if err != nil {
			s.logger.Errorf("failed to store invite for %s: %v", req.Email, err)
			result.Error = "failed to store invite"
			report.Results = append(report.Results, result)
			continue
		}

		result.Invited = true
		result.RecoveryLink = link
		report.Invited++
		report.Results = append(report.Results, result)
	}

	return report, nil
}

// RevokeInvite cancels a PENDING invite belonging to orgID, freeing its
// seat. Invites of other organizations are reported as not found rather
// than forbidden so ids do not leak across tenants.
func (s *Service) RevokeInvite(ctx context.Context, orgID, inviteID string) error {
	ctx, span := s.tracer.Start(ctx, "invites.Service.RevokeInvite")
	defer span.End()

	invite, err := s.storage.GetInvite(ctx, inviteID)
	if err != nil {
		return fmt.Errorf("failed to load invite: %w", err)
	}
	if !sameOrganization(invite.OrganizationID, orgID) {
		return fmt.Errorf("invite %s not found for organization %s: %w", inviteID, orgID, storage.ErrNotFound)
	}

	if err := s.storage.RevokeInvite(ctx, invite.ID); err != nil {
		return fmt.Errorf("failed to revoke invite %s: %w", invite.ID, err)
	}

	s.logger.Infof("revoked invite %s for organization %s", invite.ID, orgID)
	return nil
}

// deliverInvitation finds or creates the identity and mints its recovery
// link, which serves as the invitation.
func (s *Service) deliverInvitation(ctx context.Context, email string) (string, error) {
	identityID, err := s.kratos.GetIdentityIDByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if identityID == "" {
		identityID, err = s.kratos.CreateIdentity(ctx, email, "")
		if err != nil {
			return "", err
		}
	}

	link, _, err := s.kratos.CreateRecoveryLink(ctx, identityID, s.inviteLifetime.String())
	if err != nil {
		return "", err
	}
	return link, nil
}

// dedupRequests normalizes emails and collapses duplicates within one call,
// last role wins, first-seen order is preserved.
func dedupRequests(requests []InviteRequest) []InviteRequest {
	index := make(map[string]int)
	var out []InviteRequest

	for _, req := range requests {
		norm := types.NormalizeEmail(req.Email)
		if i, ok := index[norm]; ok {
			out[i].Role = req.Role
			continue
		}
		index[norm] = len(out)
		out = append(out, InviteRequest{Email: norm, Role: req.Role})
	}

	return out
}

func sameOrganization(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func NewService(
	storage StorageInterface,
	kratos KratosInterface,
	inviteLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:        storage,
		kratos:         kratos,
		inviteLifetime: inviteLifetime,
		tracer:         tracer,
		monitor:        monitor,
		logger:         logger,
	}
}
