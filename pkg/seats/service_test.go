// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seats

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package seats -destination ./mock_storage.go -source=./interfaces.go

func newTestService(storage StorageInterface) *Service {
	logger := logging.NewNoopLogger()
	return NewService(storage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("seats", logger), logger)
}

func TestService_SeatsUsed(t *testing.T) {
	orgID := "org-1"

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expected    int
		expectedErr bool
	}{
		{
			name: "live count",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().CountUsersByOrganization(gomock.Any(), orgID).Return(3, nil)
				m.EXPECT().CountPendingInvitesByOrganization(gomock.Any(), orgID).Return(2, nil)
			},
			expected: 5,
		},
		{
			name: "user count fails - cache fallback",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().CountUsersByOrganization(gomock.Any(), orgID).Return(0, errors.New("scan failed"))
				m.EXPECT().GetOrganization(gomock.Any(), orgID).Return(&types.Organization{ID: orgID, SeatsUsed: 4}, nil)
			},
			expected: 4,
		},
		{
			name: "invite count fails - cache fallback",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().CountUsersByOrganization(gomock.Any(), orgID).Return(3, nil)
				m.EXPECT().CountPendingInvitesByOrganization(gomock.Any(), orgID).Return(0, errors.New("scan failed"))
				m.EXPECT().GetOrganization(gomock.Any(), orgID).Return(&types.Organization{ID: orgID, SeatsUsed: 7}, nil)
			},
			expected: 7,
		},
		{
			name: "count and fallback both fail",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().CountUsersByOrganization(gomock.Any(), orgID).Return(0, errors.New("scan failed"))
				m.EXPECT().GetOrganization(gomock.Any(), orgID).Return(nil, errors.New("get failed"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			s := newTestService(mockStorage)

			used, err := s.SeatsUsed(context.Background(), orgID)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if used != tc.expected {
				t.Errorf("expected %d seats used, got %d", tc.expected, used)
			}
		})
	}
}

func TestService_SeatsRemaining(t *testing.T) {
	org := &types.Organization{ID: "org-1", SeatLimit: 5}

	testCases := []struct {
		name     string
		users    int
		pending  int
		expected int
	}{
		{name: "seats left", users: 2, pending: 1, expected: 2},
		{name: "exactly full", users: 4, pending: 1, expected: 0},
		{name: "overcommitted clamps to zero", users: 5, pending: 2, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().CountUsersByOrganization(gomock.Any(), org.ID).Return(tc.users, nil)
			mockStorage.EXPECT().CountPendingInvitesByOrganization(gomock.Any(), org.ID).Return(tc.pending, nil)

			s := newTestService(mockStorage)

			remaining, err := s.SeatsRemaining(context.Background(), org)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if remaining != tc.expected {
				t.Errorf("expected %d seats remaining, got %d", tc.expected, remaining)
			}
		})
	}
}

func TestCanSendInvites(t *testing.T) {
	org := &types.Organization{ID: "org-1", SeatLimit: 5}

	testCases := []struct {
		name      string
		users     int
		pending   int
		requested int
		expected  bool
	}{
		{name: "one seat left allows one", users: 3, pending: 1, requested: 1, expected: true},
		{name: "one seat left rejects two", users: 3, pending: 1, requested: 2, expected: false},
		{name: "full rejects one", users: 4, pending: 1, requested: 1, expected: false},
		{name: "overcommitted rejects", users: 6, pending: 0, requested: 1, expected: false},
		{name: "zero requested always fits", users: 5, pending: 0, requested: 0, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanSendInvites(org, tc.users, tc.pending, tc.requested); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestService_RefreshCache(t *testing.T) {
	orgID := "org-1"

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().CountUsersByOrganization(gomock.Any(), orgID).Return(2, nil)
				m.EXPECT().CountPendingInvitesByOrganization(gomock.Any(), orgID).Return(1, nil)
				m.EXPECT().SetSeatsUsed(gomock.Any(), orgID, 3).Return(nil)
			},
		},
		{
			name: "count fails - no write",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().CountUsersByOrganization(gomock.Any(), orgID).Return(0, errors.New("scan failed"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			s := newTestService(mockStorage)

			err := s.RefreshCache(context.Background(), orgID)
			if tc.expectedErr && err == nil {
				t.Error("expected error but got none")
			} else if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
