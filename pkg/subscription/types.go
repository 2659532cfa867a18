// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package subscription

import "github.com/canonical/onboarding-service/internal/types"

// Status is the authenticated subscription view returned to clients.
type Status struct {
	DisplayName     string              `json:"displayName"`
	OrganizationID  string              `json:"organizationId"`
	OrgName         string              `json:"orgName"`
	Subscribed      bool                `json:"subscribed"`
	AccessSuspended bool                `json:"accessSuspended"`
	Plan            string              `json:"plan"`
	SeatLimit       int                 `json:"seatLimit"`
	SeatsUsed       int                 `json:"seatsUsed"`
	PaymentStatus   types.PaymentStatus `json:"paymentStatus"`
	Role            types.Role          `json:"role"`
	CanInviteUsers  bool                `json:"canInviteUsers"`
}
