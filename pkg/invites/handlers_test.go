// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/authentication"
	"github.com/canonical/onboarding-service/pkg/seats"
)

func TestSendInvitesEndpoint(t *testing.T) {
	admin := &types.User{
		ID:             "user-admin",
		Email:          "admin@example.com",
		OrganizationID: "org-1",
		Role:           types.RoleAdmin,
	}
	viewer := &types.User{
		ID:             "user-viewer",
		Email:          "viewer@example.com",
		OrganizationID: "org-1",
		Role:           types.RoleViewer,
	}

	tests := []struct {
		name       string
		principal  *authentication.Principal
		body       string
		setupMocks func(*MockServiceInterface, *MockStorageInterface)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "no principal",
			principal:  nil,
			body:       `{"invites":[{"email":"a@example.com","role":"EDITOR"}]}`,
			setupMocks: func(svc *MockServiceInterface, store *MockStorageInterface) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "unauthorized",
		},
		{
			name:      "caller not onboarded",
			principal: &authentication.Principal{ID: "user-ghost"},
			body:      `{"invites":[{"email":"a@example.com","role":"EDITOR"}]}`,
			setupMocks: func(svc *MockServiceInterface, store *MockStorageInterface) {
				store.EXPECT().GetUser(gomock.Any(), "user-ghost").Return(nil, storage.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:      "caller lookup fails",
			principal: &authentication.Principal{ID: admin.ID},
			body:      `{"invites":[{"email":"a@example.com","role":"EDITOR"}]}`,
			setupMocks: func(svc *MockServiceInterface, store *MockStorageInterface) {
				store.EXPECT().GetUser(gomock.Any(), admin.ID).Return(nil, fmt.Errorf("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal",
		},
		{
			name:      "non admin is rejected",
			principal: &authentication.Principal{ID: viewer.ID},
			body:      `{"invites":[{"email":"a@example.com","role":"EDITOR"}]}`,
			setupMocks: func(svc *MockServiceInterface, store *MockStorageInterface) {
				store.EXPECT().GetUser(gomock.Any(), viewer.ID).Return(viewer, nil)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "forbidden",
		},
		{
			name:      "malformed body",
			principal: &authentication.Principal{ID: admin.ID},
			body:      `{"invites":`,
			setupMocks: func(svc *MockServiceInterface, store *MockStorageInterface) {
				store.EXPECT().GetUser(gomock.Any(), admin.ID).Return(admin, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:      "empty invite list",
			principal: &authentication.Principal{ID: admin.ID},
			body:      `{"invites":[]}`,
			setupMocks: func(svc *MockServiceInterface, store *MockStorageInterface) {
				store.EXPECT().GetUser(gomock.Any(), admin.ID).Return(admin, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:      "unknown role",
			principal: &authentication.Principal{ID: admin.ID},
			body:      `{"invites":[{"email":"a@example.com","role":"OWNER"}]}`,
			setupMocks: func(svc *MockServiceInterface, store *MockStorageInterface) {
				store.EXPECT().GetUser(gomock.Any(), admin.ID).Return(admin, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:      "seat limit exceeded",
			principal: &authentication.Principal{ID: admin.ID},
			body:      `{"invites":[{"email":"a@example.com","role":"EDITOR"},{"email":"b@example.com","role":"VIEWER"}]}`,
			setupMocks: func(svc *MockServiceInterface, store *MockStorageInterface) {
				store.EXPECT().GetUser(gomock.Any(), admin.ID).Return(admin, nil)
				svc.EXPECT().
					SendInvites(gomock.Any(), "org-1", admin.ID, gomock.Any()).
					Return(nil, &seats.SeatLimitError{Remaining: 1})
			},
			wantStatus: http.StatusConflict,
			wantCode:   "seat_limit_exceeded",
		},
		{
			name:      "service failure",
			principal: &authentication.Principal{ID: admin.ID},
			body:      `{"invites":[{"email":"a@example.com","role":"EDITOR"}]}`,
			setupMocks: func(svc *MockServiceInterface, store *MockStorageInterface) {
				store.EXPECT().GetUser(gomock.Any(), admin.ID).Return(admin, nil)
				svc.EXPECT().
					SendInvites(gomock.Any(), "org-1", admin.ID, gomock.Any()).
					Return(nil, fmt.Errorf("directory unavailable"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal",
		},
		{
			name:      "success",
			principal: &authentication.Principal{ID: admin.ID},
			body:      `{"invites":[{"email":"a@example.com","role":"EDITOR"}]}`,
			setupMocks: func(svc *MockServiceInterface, store *MockStorageInterface) {
				store.EXPECT().GetUser(gomock.Any(), admin.ID).Return(admin, nil)
				svc.EXPECT().
					SendInvites(gomock.Any(), "org-1", admin.ID, []InviteRequest{{Email: "a@example.com", Role: "EDITOR"}}).
					Return(&Report{
						Invited: 1,
						Results: []InviteResult{{Email: "a@example.com", Invited: true, RecoveryLink: "https://kratos.local/recovery"}},
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
			store := NewMockStorageInterface(ctrl)
			test.setupMocks(svc, store)

			logger := logging.NewNoopLogger()
			mux := chi.NewMux()
			NewAPI(svc, store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("onboarding-service", logger), logger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/invites", strings.NewReader(test.body))
			if test.principal != nil {
				req = req.WithContext(authentication.WithPrincipal(req.Context(), test.principal))
			}
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != test.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", test.wantStatus, rec.Code, rec.Body.String())
			}

			switch test.wantStatus {
			case http.StatusOK:
				var report Report
				if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
					t.Fatalf("failed to decode report: %v", err)
				}
				if report.Invited != 1 || len(report.Results) != 1 {
					t.Errorf("unexpected report %+v", report)
				}
				if !report.Results[0].Invited || report.Results[0].RecoveryLink == "" {
					t.Errorf("unexpected result %+v", report.Results[0])
				}
			case http.StatusConflict:
				var body map[string]interface{}
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode body: %v", err)
				}
				if body["code"] != test.wantCode {
					t.Errorf("expected code %q, got %v", test.wantCode, body["code"])
				}
				if body["seats_available"] != float64(1) {
					t.Errorf("expected 1 seat available, got %v", body["seats_available"])
				}
			default:
				var body map[string]interface{}
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode body: %v", err)
				}
				if body["code"] != test.wantCode {
					t.Errorf("expected code %q, got %v", test.wantCode, body["code"])
				}
			}
		})
	}
}

func TestRevokeInviteEndpoint(t *testing.T) {
	admin := &types.User{
		ID:             "user-admin",
		Email:          "admin@example.com",
		OrganizationID: "org-1",
		Role:           types.RoleAdmin,
	}
	editor := &types.User{
		ID:             "user-editor",
		Email:          "editor@example.com",
		OrganizationID: "org-1",
		Role:           types.RoleEditor,
	}

	tests := []struct {
		name       string
		principal  *authentication.Principal
		setupMocks func(*MockServiceInterface, *MockStorageInterface)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "no principal",
			principal:  nil,
			setupMocks: func(svc *MockServiceInterface, store *MockStorageInterface) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "unauthorized",
		},
		{
			name:      "non admin is rejected",
			principal: &authentication.Principal{ID: editor.ID},
			setupMocks: func(svc *MockServiceInterface, store *MockStorageInterface) {
				store.EXPECT().GetUser(gomock.Any(), editor.ID).Return(editor, nil)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "forbidden",
		},
		{
			name:      "unknown invite",
			principal: &authentication.Principal{ID: admin.ID},
			setupMocks: func(svc *MockServiceInterface, store *MockStorageInterface) {
				store.EXPECT().GetUser(gomock.Any(), admin.ID).Return(admin, nil)
				svc.EXPECT().
					RevokeInvite(gomock.Any(), "org-1", "ghost@example.com").
					Return(fmt.Errorf("failed to load invite: %w", storage.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:      "invite no longer pending",
			principal: &authentication.Principal{ID: admin.ID},
			setupMocks: func(svc *MockServiceInterface, store *MockStorageInterface) {
				store.EXPECT().GetUser(gomock.Any(), admin.ID).Return(admin, nil)
				svc.EXPECT().
					RevokeInvite(gomock.Any(), "org-1", "ghost@example.com").
					Return(fmt.Errorf("failed to revoke invite: %w", storage.ErrConditionFailed))
			},
			wantStatus: http.StatusConflict,
			wantCode:   "invite_not_pending",
		},
		{
			name:      "service failure",
			principal: &authentication.Principal{ID: admin.ID},
			setupMocks: func(svc *MockServiceInterface, store *MockStorageInterface) {
				store.EXPECT().GetUser(gomock.Any(), admin.ID).Return(admin, nil)
				svc.EXPECT().
					RevokeInvite(gomock.Any(), "org-1", "ghost@example.com").
					Return(fmt.Errorf("store unavailable"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal",
		},
		{
			name:      "success",
			principal: &authentication.Principal{ID: admin.ID},
			setupMocks: func(svc *MockServiceInterface, store *MockStorageInterface) {
				store.EXPECT().GetUser(gomock.Any(), admin.ID).Return(admin, nil)
				svc.EXPECT().RevokeInvite(gomock.Any(), "org-1", "ghost@example.com").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			store := NewMockStorageInterface(ctrl)
			test.setupMocks(svc, store)

			logger := logging.NewNoopLogger()
			mux := chi.NewMux()
			NewAPI(svc, store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("onboarding-service", logger), logger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodDelete, "/api/v0/invites/ghost@example.com", nil)
			if test.principal != nil {
				req = req.WithContext(authentication.WithPrincipal(req.Context(), test.principal))
			}
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != test.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", test.wantStatus, rec.Code, rec.Body.String())
			}
			if test.wantStatus == http.StatusNoContent {
				return
			}

			var body map[string]interface{}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body["code"] != test.wantCode {
				t.Errorf("expected code %q, got %v", test.wantCode, body["code"])
			}
		})
	}
}
