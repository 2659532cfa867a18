// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"testing"

	"github.com/canonical/onboarding-service/internal/config"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_interfaces.go -source=./interfaces.go

func newTestService(store StorageInterface) *Service {
	logger := logging.NewNoopLogger()
	return NewService(store, config.NewPlanCatalog(), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("onboarding-service", logger), logger)
}

func seedBillingOrg(t *testing.T, store *storage.InMemory, org *types.Organization) {
	t.Helper()
	if err := store.CreateOrganization(context.Background(), org); err != nil {
		t.Fatalf("seed organization: %v", err)
	}
}

func seedBillingUser(t *testing.T, store *storage.InMemory, user *types.User) {
	t.Helper()
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func TestHandlePaymentEventCheckoutCompleted(t *testing.T) {
	store := storage.NewInMemory()
	seedBillingOrg(t, store, &types.Organization{
		ID:            "org-1",
		Type:          types.OrgTypeStandard,
		SeatLimit:     5,
		Plan:          "free",
		PaymentStatus: types.PaymentPending,
	})
	seedBillingUser(t, store, &types.User{ID: "user-1", OrganizationID: "org-1", AccessSuspended: true})

	svc := newTestService(store)

	err := svc.HandlePaymentEvent(context.Background(), &PaymentEvent{
		Kind:             EventCheckoutCompleted,
		OrganizationID:   "org-1",
		Plan:             "standard",
		StripeCustomerID: "cus_123",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	org, err := store.GetOrganization(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("expected organization to exist, got %v", err)
	}
	if org.PaymentStatus != types.PaymentActive {
		t.Errorf("expected active payment status, got %q", org.PaymentStatus)
	}
	if org.Plan != "standard" {
		t.Errorf("expected plan standard, got %q", org.Plan)
	}
	if org.SeatLimit != 10 {
		t.Errorf("expected plan seat limit 10, got %d", org.SeatLimit)
	}
	if org.StripeCustomerID != "cus_123" {
		t.Errorf("expected stripe customer to be recorded, got %q", org.StripeCustomerID)
	}

	user, err := store.GetUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected user to exist, got %v", err)
	}
	if user.AccessSuspended {
		t.Error("expected checkout to unsuspend users")
	}
}

func TestHandlePaymentEventPaymentFailedSuspendsUsers(t *testing.T) {
	store := storage.NewInMemory()
	seedBillingOrg(t, store, &types.Organization{
		ID:            "org-1",
		Type:          types.OrgTypeStandard,
		SeatLimit:     10,
		Plan:          "standard",
		PaymentStatus: types.PaymentActive,
	})
	seedBillingUser(t, store, &types.User{ID: "user-1", OrganizationID: "org-1"})
	seedBillingUser(t, store, &types.User{ID: "user-2", OrganizationID: "org-1"})

	svc := newTestService(store)

	err := svc.HandlePaymentEvent(context.Background(), &PaymentEvent{
		Kind:           EventInvoicePaymentFailed,
		OrganizationID: "org-1",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	org, _ := store.GetOrganization(context.Background(), "org-1")
	if org.PaymentStatus != types.PaymentUnpaid {
		t.Errorf("expected unpaid payment status, got %q", org.PaymentStatus)
	}
	for _, id := range []string{"user-1", "user-2"} {
		user, err := store.GetUser(context.Background(), id)
		if err != nil {
			t.Fatalf("expected user %s to exist, got %v", id, err)
		}
		if !user.AccessSuspended {
			t.Errorf("expected user %s to be suspended", id)
		}
	}
}

func TestHandlePaymentEventSubscriptionDeletedResetsPlan(t *testing.T) {
	store := storage.NewInMemory()
	seedBillingOrg(t, store, &types.Organization{
		ID:            "org-1",
		Type:          types.OrgTypeStandard,
		SeatLimit:     50,
		Plan:          "premium",
		PaymentStatus: types.PaymentPaid,
	})

	svc := newTestService(store)

	err := svc.HandlePaymentEvent(context.Background(), &PaymentEvent{
		Kind:           EventSubscriptionDeleted,
		OrganizationID: "org-1",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	org, _ := store.GetOrganization(context.Background(), "org-1")
	if org.Plan != "free" {
		t.Errorf("expected plan reset to free, got %q", org.Plan)
	}
	if org.PaymentStatus != types.PaymentUnpaid {
		t.Errorf("expected unpaid payment status, got %q", org.PaymentStatus)
	}
	if org.SeatLimit != config.DefaultOrgSeatLimit {
		t.Errorf("expected default seat limit, got %d", org.SeatLimit)
	}
}

func TestHandlePaymentEventPersonalOrgKeepsSingleSeat(t *testing.T) {
	store := storage.NewInMemory()
	seedBillingOrg(t, store, &types.Organization{
		ID:            "org-1",
		Type:          types.OrgTypePersonal,
		SeatLimit:     1,
		Plan:          "free",
		PaymentStatus: types.PaymentPending,
	})

	svc := newTestService(store)

	err := svc.HandlePaymentEvent(context.Background(), &PaymentEvent{
		Kind:           EventCheckoutCompleted,
		OrganizationID: "org-1",
		Plan:           "premium",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	org, _ := store.GetOrganization(context.Background(), "org-1")
	if org.SeatLimit != config.PersonalSeatLimit {
		t.Errorf("expected personal org to keep %d seat, got %d", config.PersonalSeatLimit, org.SeatLimit)
	}
	if org.PaymentStatus != types.PaymentActive {
		t.Errorf("expected active payment status, got %q", org.PaymentStatus)
	}
}

func TestHandlePaymentEventMissingOrganization(t *testing.T) {
	svc := newTestService(storage.NewInMemory())

	err := svc.HandlePaymentEvent(context.Background(), &PaymentEvent{
		Kind:           EventInvoicePaid,
		OrganizationID: "org-gone",
	})
	if err == nil {
		t.Fatal("expected error for missing organization")
	}
}

func TestPaymentEventValidate(t *testing.T) {
	tests := []struct {
		name    string
		event   PaymentEvent
		wantErr bool
	}{
		{"known kind", PaymentEvent{Kind: EventInvoicePaid, OrganizationID: "org-1"}, false},
		{"unknown kind", PaymentEvent{Kind: "charge.refunded", OrganizationID: "org-1"}, true},
		{"empty kind", PaymentEvent{OrganizationID: "org-1"}, true},
		{"missing organization", PaymentEvent{Kind: EventInvoicePaid}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.event.Validate()
			if (err != nil) != test.wantErr {
				t.Errorf("expected wantErr=%v, got %v", test.wantErr, err)
			}
		})
	}
}
