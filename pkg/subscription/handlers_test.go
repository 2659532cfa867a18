// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package subscription

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/authentication"
	"github.com/canonical/onboarding-service/pkg/provisioner"
)

func TestStatusEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		principal  *authentication.Principal
		setupMocks func(*MockServiceInterface)
		wantStatus int
	}{
		{
			name:       "no principal",
			principal:  nil,
			setupMocks: func(svc *MockServiceInterface) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:      "user not onboarded",
			principal: &authentication.Principal{ID: "user-1"},
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Status(gomock.Any(), "user-1").Return(nil, fmt.Errorf("load user: %w", storage.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:      "provisioning pending",
			principal: &authentication.Principal{ID: "user-1"},
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Status(gomock.Any(), "user-1").Return(nil, provisioner.ErrProvisioningPending)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:      "internal error",
			principal: &authentication.Principal{ID: "user-1"},
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Status(gomock.Any(), "user-1").Return(nil, fmt.Errorf("store unavailable"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:      "success",
			principal: &authentication.Principal{ID: "user-1"},
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Status(gomock.Any(), "user-1").Return(&Status{
					DisplayName:    "Admin",
					OrganizationID: "org-1",
					OrgName:        "Acme Corp",
					Subscribed:     true,
					Plan:           "standard",
					SeatLimit:      10,
					SeatsUsed:      3,
					PaymentStatus:  types.PaymentActive,
					Role:           types.RoleAdmin,
					CanInviteUsers: true,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			test.setupMocks(svc)

			mux := chi.NewMux()
			NewAPI(svc, logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/subscription", nil)
			if test.principal != nil {
				req = req.WithContext(authentication.WithPrincipal(req.Context(), test.principal))
			}
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != test.wantStatus {
				t.Fatalf("expected status %d, got %d", test.wantStatus, rec.Code)
			}

			switch test.wantStatus {
			case http.StatusServiceUnavailable:
				if rec.Header().Get("Retry-After") == "" {
					t.Error("expected Retry-After header")
				}
				var body map[string]interface{}
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode body: %v", err)
				}
				if body["code"] != "provisioning_pending" {
					t.Errorf("expected provisioning_pending code, got %v", body["code"])
				}
				if _, ok := body["retry_after_seconds"]; !ok {
					t.Error("expected retry_after_seconds in body")
				}
			case http.StatusOK:
				var body Status
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode body: %v", err)
				}
				if body.OrgName != "Acme Corp" || !body.Subscribed || body.SeatsUsed != 3 {
					t.Errorf("unexpected status body %+v", body)
				}
			}
		})
	}
}
