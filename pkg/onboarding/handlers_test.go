// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/storage"
)

func TestRegistrationWebhook(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"id":"identity-1","traits":{"email":"a@example.com","name":"A","organization":"Acme"}}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().HandleIdentityConfirmed(gomock.Any(), "identity-1", "a@example.com", "A", "Acme").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed json",
			body:       `{"id":`,
			setupMocks: func(svc *MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing identity id",
			body:       `{"traits":{"email":"a@example.com"}}`,
			setupMocks: func(svc *MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing email",
			body:       `{"id":"identity-1","traits":{"name":"A"}}`,
			setupMocks: func(svc *MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "dangling invite returns 4xx to stop redelivery",
			body: `{"id":"identity-1","traits":{"email":"ghost@example.com"}}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().
					HandleIdentityConfirmed(gomock.Any(), "identity-1", "ghost@example.com", "", "").
					Return(fmt.Errorf("invite ghost@example.com references missing organization org-gone: %w", storage.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "service failure returns 5xx for redelivery",
			body: `{"id":"identity-1","traits":{"email":"a@example.com"}}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().HandleIdentityConfirmed(gomock.Any(), "identity-1", "a@example.com", "", "").Return(fmt.Errorf("storage unavailable"))
			},
			wantStatus: http.StatusInternalServerError,
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

			req := httptest.NewRequest(http.MethodPost, "/webhooks/registration", strings.NewReader(test.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != test.wantStatus {
				t.Errorf("expected status %d, got %d", test.wantStatus, rec.Code)
			}
		})
	}
}
