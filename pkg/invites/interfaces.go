// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

// StorageInterface defines the storage operations required by the invites
// package. It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	GetInvite(ctx context.Context, id string) (*types.Invite, error)
	CreateInvite(ctx context.Context, invite *types.Invite) error
	ScanPendingInvitesByEmail(ctx context.Context, email string, limit uint64) ([]*types.Invite, error)
	AcceptInvite(ctx context.Context, inviteID, userID string) error
	RevokeInvite(ctx context.Context, inviteID string) error
	CountUsersByOrganization(ctx context.Context, orgID string) (int, error)
	CountPendingInvitesByOrganization(ctx context.Context, orgID string) (int, error)
	GetUser(ctx context.Context, id string) (*types.User, error)
}

// KratosInterface defines the identity directory operations required to
// deliver invitations.
type KratosInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email, name string) (string, error)
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}

// ServiceInterface defines the invite operations.
type ServiceInterface interface {
	Reconcile(ctx context.Context, userID, email, organizationID string) (bool, error)
	FindUsableInvite(ctx context.Context, email string) (*types.Invite, error)
	SendInvites(ctx context.Context, orgID, invitedBy string, requests []InviteRequest) (*Report, error)
	RevokeInvite(ctx context.Context, orgID, inviteID string) error
}
