// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/seats"
)

//go:generate mockgen -build_flags=--mod=mod -package invites -destination ./mock_interfaces.go -source=./interfaces.go

func newTestService(store StorageInterface, kratos KratosInterface) *Service {
	logger := logging.NewNoopLogger()
	return NewService(store, kratos, 168*time.Hour, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("invites", logger), logger)
}

func pendingInvite(email, orgID string, role types.Role) *types.Invite {
	return &types.Invite{
		ID:             email,
		Email:          email,
		OrganizationID: orgID,
		Role:           role,
		Status:         types.InvitePending,
		CreatedAt:      time.Now(),
		ExpiresAt:      time.Now().Add(time.Hour),
	}
}

func TestService_Reconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts matching pending invite", func(t *testing.T) {
		store := storage.NewInMemory()
		if err := store.CreateInvite(ctx, pendingInvite("b@x.com", "O1", types.RoleEditor)); err != nil {
			t.Fatal(err)
		}

		s := newTestService(store, nil)

		accepted, err := s.Reconcile(ctx, "user-1", "B@x.com ", "O1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !accepted {
			t.Fatal("expected accepted=true")
		}

		inv, err := store.GetInvite(ctx, "b@x.com")
		if err != nil {
			t.Fatal(err)
		}
		if inv.Status != types.InviteAccepted {
			t.Errorf("expected status ACCEPTED, got %s", inv.Status)
		}
		if inv.AcceptedUserID != "user-1" {
			t.Errorf("expected acceptedUserId user-1, got %q", inv.AcceptedUserID)
		}
	})

	t.Run("idempotent for the same user", func(t *testing.T) {
		store := storage.NewInMemory()
		if err := store.CreateInvite(ctx, pendingInvite("b@x.com", "O1", types.RoleEditor)); err != nil {
			t.Fatal(err)
		}

		s := newTestService(store, nil)

		for i := 0; i < 3; i++ {
			if _, err := s.Reconcile(ctx, "user-1", "b@x.com", "O1"); err != nil {
				t.Fatalf("call %d: unexpected error: %v", i, err)
			}
		}

		inv, _ := store.GetInvite(ctx, "b@x.com")
		if inv.AcceptedUserID != "user-1" {
			t.Errorf("expected acceptedUserId user-1, got %q", inv.AcceptedUserID)
		}
	})

	t.Run("at most one of two racing users wins", func(t *testing.T) {
		store := storage.NewInMemory()
		if err := store.CreateInvite(ctx, pendingInvite("b@x.com", "O1", types.RoleEditor)); err != nil {
			t.Fatal(err)
		}

		s := newTestService(store, nil)

		results := make([]bool, 2)
		var wg sync.WaitGroup
		for i, userID := range []string{"user-1", "user-2"} {
			wg.Add(1)
			go func(i int, userID string) {
				defer wg.Done()
				accepted, err := s.Reconcile(ctx, userID, "b@x.com", "O1")
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				results[i] = accepted
			}(i, userID)
		}
		wg.Wait()

		if results[0] == results[1] {
			t.Errorf("expected exactly one winner, got %v", results)
		}

		inv, _ := store.GetInvite(ctx, "b@x.com")
		if inv.Status != types.InviteAccepted {
			t.Errorf("expected status ACCEPTED, got %s", inv.Status)
		}
		if inv.AcceptedUserID != "user-1" && inv.AcceptedUserID != "user-2" {
			t.Errorf("unexpected acceptedUserId %q", inv.AcceptedUserID)
		}
	})

	t.Run("ignores invites for other organizations", func(t *testing.T) {
		store := storage.NewInMemory()
		if err := store.CreateInvite(ctx, pendingInvite("b@x.com", "O2", types.RoleEditor)); err != nil {
			t.Fatal(err)
		}

		s := newTestService(store, nil)

		accepted, err := s.Reconcile(ctx, "user-1", "b@x.com", "O1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if accepted {
			t.Error("expected accepted=false for mismatched organization")
		}
	})

	t.Run("ignores expired invites", func(t *testing.T) {
		store := storage.NewInMemory()
		inv := pendingInvite("b@x.com", "O1", types.RoleEditor)
		inv.ExpiresAt = time.Now().Add(-time.Hour)
		if err := store.CreateInvite(ctx, inv); err != nil {
			t.Fatal(err)
		}

		s := newTestService(store, nil)

		accepted, err := s.Reconcile(ctx, "user-1", "b@x.com", "O1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if accepted {
			t.Error("expected accepted=false for expired invite")
		}
	})

	t.Run("no invite is not an error", func(t *testing.T) {
		store := storage.NewInMemory()
		s := newTestService(store, nil)

		accepted, err := s.Reconcile(ctx, "user-1", "nobody@x.com", "O1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if accepted {
			t.Error("expected accepted=false")
		}
	})

	t.Run("finds legacy invite through the scan", func(t *testing.T) {
		store := storage.NewInMemory()
		// Legacy rows predate email-keyed ids; the direct key lookup
		// misses them and only the scan can surface them.
		legacy := pendingInvite("b@x.com", "O1", types.RoleEditor)
		legacy.ID = "8f14e45f-ceea-467f-ab9b-bbfd4f2a1c71"
		if err := store.CreateInvite(ctx, legacy); err != nil {
			t.Fatal(err)
		}

		s := newTestService(store, nil)

		found, err := s.FindUsableInvite(ctx, "B@x.com ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found == nil || found.ID != legacy.ID {
			t.Fatalf("expected legacy invite %s, got %+v", legacy.ID, found)
		}

		accepted, err := s.Reconcile(ctx, "user-1", "b@x.com", "O1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !accepted {
			t.Fatal("expected accepted=true")
		}

		inv, err := store.GetInvite(ctx, legacy.ID)
		if err != nil {
			t.Fatal(err)
		}
		if inv.Status != types.InviteAccepted || inv.AcceptedUserID != "user-1" {
			t.Errorf("expected legacy invite accepted by user-1, got %+v", inv)
		}
	})

	t.Run("accepts key row and legacy row in one call", func(t *testing.T) {
		store := storage.NewInMemory()
		if err := store.CreateInvite(ctx, pendingInvite("b@x.com", "O1", types.RoleEditor)); err != nil {
			t.Fatal(err)
		}
		legacy := pendingInvite("b@x.com", "O1", types.RoleViewer)
		legacy.ID = "4b2d9c0e-0db7-4d2f-9a41-5f6e7c8d9a0b"
		if err := store.CreateInvite(ctx, legacy); err != nil {
			t.Fatal(err)
		}

		s := newTestService(store, nil)

		accepted, err := s.Reconcile(ctx, "user-1", "b@x.com", "O1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !accepted {
			t.Fatal("expected accepted=true")
		}

		for _, id := range []string{"b@x.com", legacy.ID} {
			inv, err := store.GetInvite(ctx, id)
			if err != nil {
				t.Fatal(err)
			}
			if inv.Status != types.InviteAccepted {
				t.Errorf("expected invite %s ACCEPTED, got %s", id, inv.Status)
			}
			if inv.AcceptedUserID != "user-1" {
				t.Errorf("expected invite %s accepted by user-1, got %q", id, inv.AcceptedUserID)
			}
		}
	})
}

func TestService_SendInvites(t *testing.T) {
	ctx := context.Background()

	setupOrg := func(t *testing.T, store *storage.InMemory, seatLimit, users int) *types.Organization {
		t.Helper()
		org := &types.Organization{ID: "O1", Name: "Acme", Type: types.OrgTypeStandard, SeatLimit: seatLimit}
		if err := store.CreateOrganization(ctx, org); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < users; i++ {
			user := &types.User{ID: string(rune('a' + i)), Email: "u@x.com", OrganizationID: "O1", Role: types.RoleAdmin}
			if err := store.CreateUser(ctx, user); err != nil {
				t.Fatal(err)
			}
		}
		return org
	}

	t.Run("rejects batch over the seat limit", func(t *testing.T) {
		store := storage.NewInMemory()
		setupOrg(t, store, 5, 3)
		if err := store.CreateInvite(ctx, pendingInvite("p@x.com", "O1", types.RoleViewer)); err != nil {
			t.Fatal(err)
		}

		s := newTestService(store, nil)

		_, err := s.SendInvites(ctx, "O1", "admin-1", []InviteRequest{
			{Email: "c@x.com", Role: "EDITOR"},
			{Email: "d@x.com", Role: "EDITOR"},
		})

		var seatErr *seats.SeatLimitError
		if !errors.As(err, &seatErr) {
			t.Fatalf("expected SeatLimitError, got %v", err)
		}
		if seatErr.Remaining != 1 {
			t.Errorf("expected 1 seat remaining, got %d", seatErr.Remaining)
		}
	})

	t.Run("invites with per-address results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := storage.NewInMemory()
		setupOrg(t, store, 5, 1)

		mockKratos := NewMockKratosInterface(ctrl)
		mockKratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "new@x.com").Return("", nil)
		mockKratos.EXPECT().CreateIdentity(gomock.Any(), "new@x.com", "").Return("id-1", nil)
		mockKratos.EXPECT().CreateRecoveryLink(gomock.Any(), "id-1", gomock.Any()).Return("https://recover/1", "code", nil)
		mockKratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "existing@x.com").Return("id-2", nil)
		mockKratos.EXPECT().CreateRecoveryLink(gomock.Any(), "id-2", gomock.Any()).Return("https://recover/2", "code", nil)

		s := newTestService(store, mockKratos)

		report, err := s.SendInvites(ctx, "O1", "admin-1", []InviteRequest{
			{Email: "New@X.com", Role: "EDITOR"},
			{Email: "existing@x.com", Role: "VIEWER"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if report.Invited != 2 {
			t.Errorf("expected 2 invited, got %d", report.Invited)
		}
		if len(report.Results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(report.Results))
		}

		inv, err := store.GetInvite(ctx, "new@x.com")
		if err != nil {
			t.Fatalf("expected invite row for new@x.com: %v", err)
		}
		if inv.Role != types.RoleEditor {
			t.Errorf("expected role EDITOR, got %s", inv.Role)
		}
		if inv.ExpiresAt.IsZero() {
			t.Error("expected expiry to be set")
		}
	})

	t.Run("dedupes same address, last role wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := storage.NewInMemory()
		setupOrg(t, store, 5, 1)

		mockKratos := NewMockKratosInterface(ctrl)
		mockKratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "dup@x.com").Return("id-1", nil)
		mockKratos.EXPECT().CreateRecoveryLink(gomock.Any(), "id-1", gomock.Any()).Return("https://recover/1", "code", nil)

		s := newTestService(store, mockKratos)

		report, err := s.SendInvites(ctx, "O1", "admin-1", []InviteRequest{
			{Email: "dup@x.com", Role: "VIEWER"},
			{Email: "DUP@x.com", Role: "EDITOR"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Invited != 1 {
			t.Errorf("expected 1 invited, got %d", report.Invited)
		}

		inv, _ := store.GetInvite(ctx, "dup@x.com")
		if inv.Role != types.RoleEditor {
			t.Errorf("expected last role EDITOR to win, got %s", inv.Role)
		}
	})

	t.Run("duplicate pending invite reported per address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := storage.NewInMemory()
		setupOrg(t, store, 5, 1)
		if err := store.CreateInvite(ctx, pendingInvite("taken@x.com", "O1", types.RoleViewer)); err != nil {
			t.Fatal(err)
		}

		mockKratos := NewMockKratosInterface(ctrl)
		mockKratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "taken@x.com").Return("id-1", nil)
		mockKratos.EXPECT().CreateRecoveryLink(gomock.Any(), "id-1", gomock.Any()).Return("https://recover/1", "code", nil)

		s := newTestService(store, mockKratos)

		report, err := s.SendInvites(ctx, "O1", "admin-1", []InviteRequest{
			{Email: "taken@x.com", Role: "EDITOR"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Invited != 0 {
			t.Errorf("expected 0 invited, got %d", report.Invited)
		}
		if report.Results[0].Error == "" {
			t.Error("expected per-address error for duplicate invite")
		}
	})

	t.Run("identity failure reported per address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := storage.NewInMemory()
		setupOrg(t, store, 5, 1)

		mockKratos := NewMockKratosInterface(ctrl)
		mockKratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "bad@x.com").Return("", errors.New("kratos down"))
		mockKratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "good@x.com").Return("id-2", nil)
		mockKratos.EXPECT().CreateRecoveryLink(gomock.Any(), "id-2", gomock.Any()).Return("https://recover/2", "code", nil)

		s := newTestService(store, mockKratos)

		report, err := s.SendInvites(ctx, "O1", "admin-1", []InviteRequest{
			{Email: "bad@x.com", Role: "EDITOR"},
			{Email: "good@x.com", Role: "EDITOR"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Invited != 1 {
			t.Errorf("expected 1 invited, got %d", report.Invited)
		}
		if report.Results[0].Error == "" {
			t.Error("expected per-address error for identity failure")
		}
	})
}

func TestService_RevokeInvite(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes a pending invite", func(t *testing.T) {
		store := storage.NewInMemory()
		if err := store.CreateInvite(ctx, pendingInvite("b@x.com", "O1", types.RoleEditor)); err != nil {
			t.Fatal(err)
		}

		s := newTestService(store, nil)

		if err := s.RevokeInvite(ctx, "O1", "b@x.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		inv, err := store.GetInvite(ctx, "b@x.com")
		if err != nil {
			t.Fatal(err)
		}
		if inv.Status != types.InviteRevoked {
			t.Errorf("expected status REVOKED, got %s", inv.Status)
		}

		// A revoked invite is invisible to reconciliation.
		accepted, err := s.Reconcile(ctx, "user-1", "b@x.com", "O1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if accepted {
			t.Error("expected accepted=false for revoked invite")
		}
	})

	t.Run("unknown invite reports not found", func(t *testing.T) {
		store := storage.NewInMemory()
		s := newTestService(store, nil)

		err := s.RevokeInvite(ctx, "O1", "nobody@x.com")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("invite of another organization reports not found", func(t *testing.T) {
		store := storage.NewInMemory()
		if err := store.CreateInvite(ctx, pendingInvite("b@x.com", "O2", types.RoleEditor)); err != nil {
			t.Fatal(err)
		}

		s := newTestService(store, nil)

		err := s.RevokeInvite(ctx, "O1", "b@x.com")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}

		inv, _ := store.GetInvite(ctx, "b@x.com")
		if inv.Status != types.InvitePending {
			t.Errorf("expected invite untouched, got %s", inv.Status)
		}
	})

	t.Run("accepted invite reports conflict", func(t *testing.T) {
		store := storage.NewInMemory()
		if err := store.CreateInvite(ctx, pendingInvite("b@x.com", "O1", types.RoleEditor)); err != nil {
			t.Fatal(err)
		}
		if err := store.AcceptInvite(ctx, "b@x.com", "user-1"); err != nil {
			t.Fatal(err)
		}

		s := newTestService(store, nil)

		err := s.RevokeInvite(ctx, "O1", "b@x.com")
		if !errors.Is(err, storage.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", err)
		}
	})
}
