// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

type StorageInterface interface {
	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	UpdateOrganizationPayment(ctx context.Context, id string, status types.PaymentStatus, plan, stripeCustomerID string, seatLimit int) error
	SetOrganizationUsersSuspended(ctx context.Context, orgID string, suspended bool) error
}

type ServiceInterface interface {
	HandlePaymentEvent(ctx context.Context, event *PaymentEvent) error
}
