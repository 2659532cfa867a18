// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"strings"
	"time"
)

type OrgType string

const (
	OrgTypePersonal OrgType = "personal"
	OrgTypeStandard OrgType = "org"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentActive  PaymentStatus = "active"
	PaymentPaid    PaymentStatus = "paid"
	PaymentUnpaid  PaymentStatus = "unpaid"
)

// Entitled reports whether the status grants paid access. Matching is
// case-insensitive, the upstream payment provider is not consistent about
// casing.
func (p PaymentStatus) Entitled() bool {
	switch strings.ToLower(string(p)) {
	case string(PaymentActive), string(PaymentPaid):
		return true
	}
	return false
}

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleViewer Role = "VIEWER"
	// RoleMember is a legacy role still present in old rows.
	RoleMember Role = "MEMBER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer, RoleMember:
		return true
	}
	return false
}

type InviteStatus string

const (
	InvitePending  InviteStatus = "PENDING"
	InviteAccepted InviteStatus = "ACCEPTED"
	InviteRevoked  InviteStatus = "REVOKED"
)

type Organization struct {
	ID               string        `db:"id"`
	Name             string        `db:"name"`
	Type             OrgType       `db:"type"`
	SeatLimit        int           `db:"seat_limit"`
	SeatsUsed        int           `db:"seats_used"`
	Plan             string        `db:"plan"`
	PaymentStatus    PaymentStatus `db:"payment_status"`
	StripeCustomerID string        `db:"stripe_customer_id"`
	CreatedAt        time.Time     `db:"created_at"`
}

// User id is the identity provider's stable username, never the email,
// emails are mutable.
type User struct {
	ID              string    `db:"id"`
	Email           string    `db:"email"`
	DisplayName     string    `db:"display_name"`
	OrganizationID  string    `db:"organization_id"`
	Role            Role      `db:"role"`
	AccessSuspended bool      `db:"access_suspended"`
	CreatedAt       time.Time `db:"created_at"`
}

// Invite id is the normalized invitee email, the natural dedup key.
type Invite struct {
	ID             string       `db:"id"`
	Email          string       `db:"email"`
	OrganizationID string       `db:"organization_id"`
	Role           Role         `db:"role"`
	Status         InviteStatus `db:"status"`
	InvitedBy      string       `db:"invited_by"`
	CreatedAt      time.Time    `db:"created_at"`
	ExpiresAt      time.Time    `db:"expires_at"`
	AcceptedAt     *time.Time   `db:"accepted_at"`
	AcceptedUserID string       `db:"accepted_user_id"`
}

// Expired reports whether the invite is past its expiry. A zero ExpiresAt
// never expires, legacy rows predate the column.
func (i *Invite) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// NormalizeEmail canonicalizes an email for use as a lookup key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
