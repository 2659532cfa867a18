// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package billing is the status sink for payment-provider events. It
// flips an organization's payment fields and user suspension flags; the
// rest of the system only ever reads paymentStatus.
package billing

import (
	"context"
	"fmt"

	"github.com/canonical/onboarding-service/internal/config"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

type Service struct {
	storage StorageInterface
	plans   config.PlanCatalog

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HandlePaymentEvent applies one payment event. Events arrive at least
// once and possibly out of order; every application is a plain overwrite
// of the payment fields, so replays are harmless.
func (s *Service) HandlePaymentEvent(ctx context.Context, event *PaymentEvent) error {
	ctx, span := s.tracer.Start(ctx, "billing.Service.HandlePaymentEvent")
	defer span.End()

	org, err := s.storage.GetOrganization(ctx, event.OrganizationID)
	if err != nil {
		return fmt.Errorf("failed to load organization %s: %w", event.OrganizationID, err)
	}

	status := org.PaymentStatus
	plan := org.Plan
	stripeID := org.StripeCustomerID
	suspend := false

	switch event.Kind {
	case EventCheckoutCompleted:
		status = types.PaymentActive
		if event.Plan != "" {
			plan = event.Plan
		}
		if event.StripeCustomerID != "" {
			stripeID = event.StripeCustomerID
		}
	case EventInvoicePaid:
		status = types.PaymentPaid
		if event.Plan != "" {
			plan = event.Plan
		}
	case EventInvoicePaymentFailed:
		status = types.PaymentUnpaid
		suspend = true
	case EventSubscriptionDeleted:
		status = types.PaymentUnpaid
		plan = s.plans.DefaultPlan().Name
		suspend = true
	}

	seatLimit := s.plans.Get(plan).SeatLimit
	if org.Type == types.OrgTypePersonal {
		// Personal tenants never gain seats through billing.
		seatLimit = config.PersonalSeatLimit
	}

	if err := s.storage.UpdateOrganizationPayment(ctx, org.ID, status, plan, stripeID, seatLimit); err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	if err := s.storage.SetOrganizationUsersSuspended(ctx, org.ID, suspend); err != nil {
		return fmt.Errorf("failed to update user suspension: %w", err)
	}

	s.logger.Infof("applied %s for organization %s, payment status now %s", event.Kind, org.ID, status)
	return nil
}

func NewService(
	storage StorageInterface,
	plans config.PlanCatalog,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		plans:   plans,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
