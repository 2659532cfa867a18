// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

// StorageInterface defines the storage operations required by the
// onboarding package. It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	CreateOrganization(ctx context.Context, org *types.Organization) error
	IncrementSeatsUsed(ctx context.Context, orgID string, delta int) error
	GetUser(ctx context.Context, id string) (*types.User, error)
	CreateUser(ctx context.Context, user *types.User) error
	AcceptInvite(ctx context.Context, inviteID, userID string) error
}

// InvitesInterface is the invite lookup used to route a confirmed identity.
type InvitesInterface interface {
	FindUsableInvite(ctx context.Context, email string) (*types.Invite, error)
}

// AuthorizerInterface defines the authorization operations required by the
// onboarding package. It is a subset of the internal/authorization interface.
type AuthorizerInterface interface {
	AssignOrgAdmin(ctx context.Context, orgID, userID string) error
	AssignOrgMember(ctx context.Context, orgID, userID string) error
}

// ServiceInterface defines the onboarding operations.
type ServiceInterface interface {
	HandleIdentityConfirmed(ctx context.Context, identityID, email, nameHint, orgNameHint string) error
}
