// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package onboarding reconciles confirmed identities into organizations.
// The trigger is delivered at least once; every mutation is a single
// conditional write so replays and races converge to the same end state.
package onboarding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/canonical/onboarding-service/internal/config"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

type Service struct {
	storage StorageInterface
	invites InvitesInterface
	authz   AuthorizerInterface
	plans   config.PlanCatalog

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HandleIdentityConfirmed runs once per confirmed identity, and safely more
// than once under redelivery. It routes the identity into a pending invite
// when one exists, otherwise it creates a fresh organization.
func (s *Service) HandleIdentityConfirmed(ctx context.Context, identityID, email, nameHint, orgNameHint string) error {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.HandleIdentityConfirmed")
	defer span.End()

	// Idempotency guard: an existing user row means a prior delivery
	// already completed. This single check makes the handler replay-safe.
	_, err := s.storage.GetUser(ctx, identityID)
	if err == nil {
		s.logger.Debugf("identity %s already onboarded, treating as replay", identityID)
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	norm := types.NormalizeEmail(email)

	invite, err := s.invites.FindUsableInvite(ctx, norm)
	if err != nil {
		return err
	}

	if invite != nil {
		return s.acceptInvited(ctx, identityID, norm, nameHint, invite)
	}
	return s.createOrganization(ctx, identityID, norm, nameHint, orgNameHint)
}

func (s *Service) acceptInvited(ctx context.Context, identityID, email, nameHint string, invite *types.Invite) error {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.acceptInvited")
	defer span.End()

	org, err := s.storage.GetOrganization(ctx, invite.OrganizationID)
	if errors.Is(err, storage.ErrNotFound) {
		// A dangling invite cannot be retried into success.
		return fmt.Errorf("invite %s references missing organization %s: %w", invite.ID, invite.OrganizationID, err)
	}
	if err != nil {
		return fmt.Errorf("failed to load organization: %w", err)
	}

	role := invite.Role
	if !role.Valid() {
		role = types.RoleViewer
	}

	won := false
	err = s.storage.AcceptInvite(ctx, invite.ID, identityID)
	switch {
	case err == nil:
		won = true
	case errors.Is(err, storage.ErrConditionFailed):
		// Another path consumed the invite first. Not an error, the user
		// row may still need creating below.
		s.logger.Debugf("invite %s already consumed, continuing", invite.ID)
	default:
		return fmt.Errorf("failed to accept invite: %w", err)
	}

	user := &types.User{
		ID:              identityID,
		Email:           email,
		DisplayName:     nameHint,
		OrganizationID:  org.ID,
		Role:            role,
		AccessSuspended: !org.PaymentStatus.Entitled(),
	}

	err = s.storage.CreateUser(ctx, user)
	if errors.Is(err, storage.ErrDuplicateKey) {
		// A duplicate trigger raced with itself; the row exists, done.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if won {
		// The cache is advisory, the authoritative count self-heals.
		if err := s.storage.IncrementSeatsUsed(ctx, org.ID, 1); err != nil {
			s.logger.Warnf("failed to bump seats_used for %s: %v", org.ID, err)
		}
	}

	if err := s.authz.AssignOrgMember(ctx, org.ID, identityID); err != nil {
		s.logger.Errorf("failed to grant member access for %s in %s: %v", identityID, org.ID, err)
	}

	s.logger.Infof("onboarded invited user %s into organization %s", identityID, org.ID)
	return nil
}

func (s *Service) createOrganization(ctx context.Context, identityID, email, nameHint, orgNameHint string) error {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.createOrganization")
	defer span.End()

	displayName := nameHint
	if displayName == "" {
		displayName = email
	}

	isPersonal := strings.TrimSpace(orgNameHint) == ""

	name := strings.TrimSpace(orgNameHint)
	seatLimit := config.DefaultOrgSeatLimit
	orgType := types.OrgTypeStandard
	if isPersonal {
		name = fmt.Sprintf("Personal - %s", displayName)
		seatLimit = config.PersonalSeatLimit
		orgType = types.OrgTypePersonal
	}

	org := &types.Organization{
		// Random id, never derived from display text.
		ID:            uuid.NewString(),
		Name:          name,
		Type:          orgType,
		SeatLimit:     seatLimit,
		SeatsUsed:     1,
		Plan:          s.plans.DefaultPlan().Name,
		PaymentStatus: types.PaymentPending,
	}

	if err := s.storage.CreateOrganization(ctx, org); err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}

	user := &types.User{
		ID:              identityID,
		Email:           email,
		DisplayName:     displayName,
		OrganizationID:  org.ID,
		Role:            types.RoleAdmin,
		AccessSuspended: true,
	}

	err := s.storage.CreateUser(ctx, user)
	if errors.Is(err, storage.ErrDuplicateKey) {
		// A concurrent delivery won; its organization is the real one.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.authz.AssignOrgAdmin(ctx, org.ID, identityID); err != nil {
		return fmt.Errorf("failed to assign admin in authz: %w", err)
	}

	s.logger.Infof("provisioned organization %s for user %s", org.ID, identityID)
	return nil
}

func NewService(
	storage StorageInterface,
	invites InvitesInterface,
	authz AuthorizerInterface,
	plans config.PlanCatalog,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		invites: invites,
		authz:   authz,
		plans:   plans,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
