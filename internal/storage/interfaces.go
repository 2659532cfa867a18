// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

// StorageInterface is the Tenant Store. The only mutation primitives are
// per-row conditional writes: create-if-absent maps to ErrDuplicateKey,
// guarded transitions map to ErrConditionFailed. There are no multi-row
// transactions; callers are expected to converge under retries.
type StorageInterface interface {
	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	CreateOrganization(ctx context.Context, org *types.Organization) error
	UpdateOrganizationPayment(ctx context.Context, id string, status types.PaymentStatus, plan, stripeCustomerID string, seatLimit int) error
	IncrementSeatsUsed(ctx context.Context, orgID string, delta int) error
	SetSeatsUsed(ctx context.Context, orgID string, seats int) error
	CountUsersByOrganization(ctx context.Context, orgID string) (int, error)

	GetUser(ctx context.Context, id string) (*types.User, error)
	CreateUser(ctx context.Context, user *types.User) error
	SetUserSuspended(ctx context.Context, userID string, suspended bool) error
	SetOrganizationUsersSuspended(ctx context.Context, orgID string, suspended bool) error

	GetInvite(ctx context.Context, id string) (*types.Invite, error)
	CreateInvite(ctx context.Context, invite *types.Invite) error
	ScanPendingInvitesByEmail(ctx context.Context, email string, limit uint64) ([]*types.Invite, error)
	CountPendingInvitesByOrganization(ctx context.Context, orgID string) (int, error)
	AcceptInvite(ctx context.Context, inviteID, userID string) error
	RevokeInvite(ctx context.Context, inviteID string) error
}
