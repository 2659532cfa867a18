// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seats

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

// StorageInterface defines the storage operations required by the seats package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	CountUsersByOrganization(ctx context.Context, orgID string) (int, error)
	CountPendingInvitesByOrganization(ctx context.Context, orgID string) (int, error)
	SetSeatsUsed(ctx context.Context, orgID string, seats int) error
}

// ServiceInterface defines the seat accounting operations.
type ServiceInterface interface {
	SeatsUsed(ctx context.Context, orgID string) (int, error)
	SeatsRemaining(ctx context.Context, org *types.Organization) (int, error)
	RefreshCache(ctx context.Context, orgID string) error
}
