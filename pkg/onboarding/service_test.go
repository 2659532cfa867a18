// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"fmt"
	"testing"
	"time"

	gomock "go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/config"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/invites"
)

//go:generate mockgen -build_flags=--mod=mod -package onboarding -destination ./mock_interfaces.go -source=./interfaces.go

func newTestService(store *storage.InMemory, authz AuthorizerInterface) *Service {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("onboarding-service", logger)

	inviteSvc := invites.NewService(store, nil, 72*time.Hour, tracer, monitor, logger)

	return NewService(store, inviteSvc, authz, config.NewPlanCatalog(), tracer, monitor, logger)
}

func seedOrg(t *testing.T, store *storage.InMemory, org *types.Organization) {
	t.Helper()
	if err := store.CreateOrganization(context.Background(), org); err != nil {
		t.Fatalf("seed organization: %v", err)
	}
}

func seedInvite(t *testing.T, store *storage.InMemory, invite *types.Invite) {
	t.Helper()
	if err := store.CreateInvite(context.Background(), invite); err != nil {
		t.Fatalf("seed invite: %v", err)
	}
}

func TestHandleIdentityConfirmedCreatesPersonalOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storage.NewInMemory()
	authz := NewMockAuthorizerInterface(ctrl)
	authz.EXPECT().AssignOrgAdmin(gomock.Any(), gomock.Any(), "identity-1").Return(nil)

	svc := newTestService(store, authz)

	err := svc.HandleIdentityConfirmed(context.Background(), "identity-1", "Ada@Example.com", "Ada Lovelace", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	user, err := store.GetUser(context.Background(), "identity-1")
	if err != nil {
		t.Fatalf("expected user to exist, got %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Errorf("expected normalized email, got %q", user.Email)
	}
	if user.Role != types.RoleAdmin {
		t.Errorf("expected ADMIN role, got %q", user.Role)
	}
	if !user.AccessSuspended {
		t.Error("expected fresh user to be suspended until payment")
	}

	org, err := store.GetOrganization(context.Background(), user.OrganizationID)
	if err != nil {
		t.Fatalf("expected organization to exist, got %v", err)
	}
	if org.Type != types.OrgTypePersonal {
		t.Errorf("expected personal organization, got %q", org.Type)
	}
	if org.Name != "Personal - Ada Lovelace" {
		t.Errorf("unexpected organization name %q", org.Name)
	}
	if org.SeatLimit != config.PersonalSeatLimit {
		t.Errorf("expected seat limit %d, got %d", config.PersonalSeatLimit, org.SeatLimit)
	}
	if org.SeatsUsed != 1 {
		t.Errorf("expected seats_used 1, got %d", org.SeatsUsed)
	}
	if org.PaymentStatus != types.PaymentPending {
		t.Errorf("expected pending payment, got %q", org.PaymentStatus)
	}
}

func TestHandleIdentityConfirmedCreatesNamedOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storage.NewInMemory()
	authz := NewMockAuthorizerInterface(ctrl)
	authz.EXPECT().AssignOrgAdmin(gomock.Any(), gomock.Any(), "identity-2").Return(nil)

	svc := newTestService(store, authz)

	err := svc.HandleIdentityConfirmed(context.Background(), "identity-2", "ceo@acme.test", "", "Acme Corp")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	user, err := store.GetUser(context.Background(), "identity-2")
	if err != nil {
		t.Fatalf("expected user to exist, got %v", err)
	}
	org, err := store.GetOrganization(context.Background(), user.OrganizationID)
	if err != nil {
		t.Fatalf("expected organization to exist, got %v", err)
	}
	if org.Type != types.OrgTypeStandard {
		t.Errorf("expected standard organization, got %q", org.Type)
	}
	if org.Name != "Acme Corp" {
		t.Errorf("unexpected organization name %q", org.Name)
	}
	if org.SeatLimit != config.DefaultOrgSeatLimit {
		t.Errorf("expected seat limit %d, got %d", config.DefaultOrgSeatLimit, org.SeatLimit)
	}
	if user.DisplayName != "ceo@acme.test" {
		t.Errorf("expected email fallback display name, got %q", user.DisplayName)
	}
}

func TestHandleIdentityConfirmedIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storage.NewInMemory()
	authz := NewMockAuthorizerInterface(ctrl)
	// The grant happens once, replays short circuit on the user row.
	authz.EXPECT().AssignOrgAdmin(gomock.Any(), gomock.Any(), "identity-3").Return(nil).Times(1)

	svc := newTestService(store, authz)

	for i := 0; i < 3; i++ {
		err := svc.HandleIdentityConfirmed(context.Background(), "identity-3", "rep@example.com", "Rep", "")
		if err != nil {
			t.Fatalf("delivery %d: expected no error, got %v", i, err)
		}
	}

	user, err := store.GetUser(context.Background(), "identity-3")
	if err != nil {
		t.Fatalf("expected user to exist, got %v", err)
	}
	org, err := store.GetOrganization(context.Background(), user.OrganizationID)
	if err != nil {
		t.Fatalf("expected organization to exist, got %v", err)
	}
	if org.SeatsUsed != 1 {
		t.Errorf("expected seats_used to stay 1 across replays, got %d", org.SeatsUsed)
	}
}

func TestHandleIdentityConfirmedAcceptsInvite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storage.NewInMemory()
	seedOrg(t, store, &types.Organization{
		ID:            "org-1",
		Name:          "Acme Corp",
		Type:          types.OrgTypeStandard,
		SeatLimit:     5,
		SeatsUsed:     2,
		Plan:          "standard",
		PaymentStatus: types.PaymentActive,
	})
	seedInvite(t, store, &types.Invite{
		ID:             "guest@example.com",
		Email:          "guest@example.com",
		OrganizationID: "org-1",
		Role:           types.RoleEditor,
		Status:         types.InvitePending,
		ExpiresAt:      time.Now().Add(24 * time.Hour),
	})

	authz := NewMockAuthorizerInterface(ctrl)
	authz.EXPECT().AssignOrgMember(gomock.Any(), "org-1", "identity-4").Return(nil)

	svc := newTestService(store, authz)

	err := svc.HandleIdentityConfirmed(context.Background(), "identity-4", "Guest@Example.com", "Guest", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	user, err := store.GetUser(context.Background(), "identity-4")
	if err != nil {
		t.Fatalf("expected user to exist, got %v", err)
	}
	if user.OrganizationID != "org-1" {
		t.Errorf("expected user in org-1, got %q", user.OrganizationID)
	}
	if user.Role != types.RoleEditor {
		t.Errorf("expected invite role to carry over, got %q", user.Role)
	}
	if user.AccessSuspended {
		t.Error("expected user in entitled organization to be active")
	}

	invite, err := store.GetInvite(context.Background(), "guest@example.com")
	if err != nil {
		t.Fatalf("expected invite to exist, got %v", err)
	}
	if invite.Status != types.InviteAccepted {
		t.Errorf("expected invite ACCEPTED, got %q", invite.Status)
	}
	if invite.AcceptedUserID != "identity-4" {
		t.Errorf("expected accepted user identity-4, got %q", invite.AcceptedUserID)
	}

	org, err := store.GetOrganization(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("expected organization to exist, got %v", err)
	}
	if org.SeatsUsed != 3 {
		t.Errorf("expected seats_used 3 after acceptance, got %d", org.SeatsUsed)
	}
}

func TestHandleIdentityConfirmedInviteRaceLost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invite := &types.Invite{
		ID:             "late@example.com",
		Email:          "late@example.com",
		OrganizationID: "org-1",
		Role:           types.RoleViewer,
		Status:         types.InvitePending,
		ExpiresAt:      time.Now().Add(24 * time.Hour),
	}
	org := &types.Organization{ID: "org-1", PaymentStatus: types.PaymentActive}

	mockStore := NewMockStorageInterface(ctrl)
	mockInvites := NewMockInvitesInterface(ctrl)
	authz := NewMockAuthorizerInterface(ctrl)

	mockStore.EXPECT().GetUser(gomock.Any(), "identity-5").Return(nil, storage.ErrNotFound)
	mockInvites.EXPECT().FindUsableInvite(gomock.Any(), "late@example.com").Return(invite, nil)
	mockStore.EXPECT().GetOrganization(gomock.Any(), "org-1").Return(org, nil)
	mockStore.EXPECT().AcceptInvite(gomock.Any(), "late@example.com", "identity-5").Return(storage.ErrConditionFailed)
	mockStore.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
	// No seats_used bump when the acceptance was lost.
	authz.EXPECT().AssignOrgMember(gomock.Any(), "org-1", "identity-5").Return(nil)

	logger := logging.NewNoopLogger()
	svc := NewService(mockStore, mockInvites, authz, config.NewPlanCatalog(), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("onboarding-service", logger), logger)

	err := svc.HandleIdentityConfirmed(context.Background(), "identity-5", "late@example.com", "", "")
	if err != nil {
		t.Fatalf("expected lost race to be swallowed, got %v", err)
	}
}

func TestHandleIdentityConfirmedDanglingInvite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storage.NewInMemory()
	seedInvite(t, store, &types.Invite{
		ID:             "orphan@example.com",
		Email:          "orphan@example.com",
		OrganizationID: "org-gone",
		Role:           types.RoleViewer,
		Status:         types.InvitePending,
		ExpiresAt:      time.Now().Add(24 * time.Hour),
	})

	svc := newTestService(store, NewMockAuthorizerInterface(ctrl))

	err := svc.HandleIdentityConfirmed(context.Background(), "identity-6", "orphan@example.com", "", "")
	if err == nil {
		t.Fatal("expected error for invite referencing a missing organization")
	}
}

func TestHandleIdentityConfirmedUserLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockStore.EXPECT().GetUser(gomock.Any(), "identity-7").Return(nil, fmt.Errorf("connection refused"))

	logger := logging.NewNoopLogger()
	svc := NewService(mockStore, NewMockInvitesInterface(ctrl), NewMockAuthorizerInterface(ctrl), config.NewPlanCatalog(), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("onboarding-service", logger), logger)

	err := svc.HandleIdentityConfirmed(context.Background(), "identity-7", "x@example.com", "", "")
	if err == nil {
		t.Fatal("expected lookup failure to propagate, the trigger must be redelivered")
	}
}
