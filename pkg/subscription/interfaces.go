// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package subscription

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

type StorageInterface interface {
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	SetUserSuspended(ctx context.Context, userID string, suspended bool) error
	IncrementSeatsUsed(ctx context.Context, orgID string, delta int) error
}

type InvitesInterface interface {
	Reconcile(ctx context.Context, userID, email, organizationID string) (bool, error)
}

type SeatsInterface interface {
	SeatsUsed(ctx context.Context, orgID string) (int, error)
	RefreshCache(ctx context.Context, orgID string) error
}

type ProvisionerInterface interface {
	EnsureProvisioned(ctx context.Context, orgID string) error
}

type ServiceInterface interface {
	Status(ctx context.Context, userID string) (*Status, error)
}
